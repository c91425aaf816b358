package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"jobboard/pkg/serrors"
)

// localStore stores files in a directory on the local filesystem and serves
// them under a base URL.
type localStore struct {
	directory string
	baseURL   string
	maxSize   int64
}

// NewLocalStore creates a Store writing into the given directory, creating
// it if needed. Files larger than maxSize bytes are rejected.
func NewLocalStore(directory, baseURL string, maxSize int64) (Store, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}

	return localStore{
		directory: directory,
		baseURL:   strings.TrimRight(baseURL, "/"),
		maxSize:   maxSize,
	}, nil
}

func (l localStore) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	name := uuid.NewString() + sanitizeExt(filename)
	path := filepath.Join(l.directory, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// read one byte past the cap to distinguish "exactly at the limit"
	// from "over it"
	written, err := io.Copy(file, io.LimitReader(content, l.maxSize+1))
	if err != nil {
		_ = os.Remove(path)

		return "", fmt.Errorf("could not write file: %w", err)
	}
	if written > l.maxSize {
		_ = os.Remove(path)

		return "", serrors.With(serrors.ErrBadRequest, "file exceeds maximum size of %d bytes", l.maxSize)
	}

	return l.baseURL + "/" + name, nil
}

// sanitizeExt extracts a safe file extension from the client-supplied
// filename. Anything suspicious is dropped rather than escaped.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" || len(ext) > 10 {
		return ""
	}

	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}
