// Package upload abstracts file uploads behind a Store interface and ships a
// local filesystem implementation. Stored files get random names and are
// addressed by a public URI, so callers never learn filesystem paths.
package upload

import (
	"context"
	"io"
)

// Store persists uploaded files and returns their public URI.
type Store interface {
	// Save writes the file content and returns a public URI for it. The
	// original filename is only consulted for its extension. Content larger
	// than the implementation's size cap yields serrors.ErrBadRequest.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
