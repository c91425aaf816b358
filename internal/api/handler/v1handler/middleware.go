package v1handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
)

const (
	employerLocal  = "employer"
	jobSeekerLocal = "jobSeeker"
)

// bearerToken extracts the access token from the accessToken cookie or, when
// absent, from the Authorization header. The cookie wins when both are set.
func bearerToken(c *fiber.Ctx) string {
	if token := c.Cookies(accessTokenCookie); token != "" {
		return token
	}

	header := c.Get(fiber.HeaderAuthorization)
	if after, found := strings.CutPrefix(header, "Bearer "); found {
		return after
	}

	return ""
}

// RequireEmployer authenticates the request as an employer and stores the
// loaded record in the request locals. Requests are authenticated on every
// call; nothing is cached between them.
func (h *Handler) RequireEmployer(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return serrors.With(serrors.ErrUnauthorized, "unauthorized request")
	}

	claims, err := h.deps.Tokens.VerifyAccessToken(token)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnauthorized, err, "invalid access token")
	}

	record, err := h.deps.Employers.Profile(c.UserContext(), domain.EmployerID(id))
	if err != nil {
		return serrors.Wrap(serrors.ErrUnauthorized, err, "invalid access token")
	}
	record.PasswordHash = ""
	record.RefreshToken = ""

	c.Locals(employerLocal, record)

	return c.Next()
}

// RequireJobSeeker authenticates the request as a job seeker and stores the
// loaded record in the request locals.
func (h *Handler) RequireJobSeeker(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return serrors.With(serrors.ErrUnauthorized, "unauthorized request")
	}

	claims, err := h.deps.Tokens.VerifyAccessToken(token)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnauthorized, err, "invalid access token")
	}

	record, err := h.deps.JobSeekers.Profile(c.UserContext(), domain.JobSeekerID(id))
	if err != nil {
		return serrors.Wrap(serrors.ErrUnauthorized, err, "invalid access token")
	}
	record.PasswordHash = ""
	record.RefreshToken = ""

	c.Locals(jobSeekerLocal, record)

	return c.Next()
}

func currentEmployer(c *fiber.Ctx) *domain.Employer {
	record, _ := c.Locals(employerLocal).(*domain.Employer)

	return record
}

func currentJobSeeker(c *fiber.Ctx) *domain.JobSeeker {
	record, _ := c.Locals(jobSeekerLocal).(*domain.JobSeeker)

	return record
}

// pathID parses a UUID route parameter, rejecting malformed values before
// they reach storage.
func pathID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.UUID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}
