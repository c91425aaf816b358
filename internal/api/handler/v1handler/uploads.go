package v1handler

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// saveUpload stores a multipart file through the upload store and returns
// its public URI.
func (h *Handler) saveUpload(c *fiber.Ctx, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("could not open uploaded file: %w", err)
	}
	defer func() { _ = file.Close() }()

	uri, err := h.deps.Uploads.Save(c.UserContext(), header.Filename, file)
	if err != nil {
		return "", err
	}

	return uri, nil
}
