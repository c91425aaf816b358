package v1handler

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"

	"jobboard/internal/posting"
)

func postingInput(req postJobRequest) posting.Input {
	return posting.Input{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Salary:       req.Salary,
	}
}

func (h *Handler) listPostings(c *fiber.Ctx) error {
	page := storage.JobPostingPage{
		Page:     uint(c.QueryInt("page", 1)),     //nolint: gosec
		Limit:    uint(c.QueryInt("limit", 10)),   //nolint: gosec
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortDesc: strings.EqualFold(c.Query("sortType"), "desc"),
	}

	result, err := h.deps.Postings.List(c.UserContext(), page)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, result, "Job postings fetched successfully")
}

func (h *Handler) getPosting(c *fiber.Ctx) error {
	id, err := pathID(c, "jobPostingId")
	if err != nil {
		return err
	}

	result, err := h.deps.Postings.ByID(c.UserContext(), domain.JobPostingID(id))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, result, "Job posting fetched successfully")
}

type updatePostingRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Location     *string `json:"location"`
	Salary       *string `json:"salary"`
}

func (h *Handler) updatePosting(c *fiber.Ctx) error {
	id, err := pathID(c, "jobPostingId")
	if err != nil {
		return err
	}

	var req updatePostingRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	record := currentEmployer(c)
	updated, err := h.deps.Postings.Update(c.UserContext(), record.ID, domain.JobPostingID(id),
		storage.JobPostingUpdates{
			Title:        req.Title,
			Description:  req.Description,
			Requirements: req.Requirements,
			Location:     req.Location,
			Salary:       req.Salary,
		})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, updated, "Job posting updated successfully")
}

func (h *Handler) deletePosting(c *fiber.Ctx) error {
	id, err := pathID(c, "jobPostingId")
	if err != nil {
		return err
	}

	record := currentEmployer(c)
	if err := h.deps.Postings.Delete(c.UserContext(), record.ID, domain.JobPostingID(id)); err != nil {
		return err
	}

	return respond(c, http.StatusOK, fiber.Map{}, "Job posting deleted successfully")
}
