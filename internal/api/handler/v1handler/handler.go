// Package v1handler implements the fiber handlers for version 1 of the job
// board API. Responses use a uniform envelope: successes carry
// {statusCode, data, message}, failures {statusCode, message, success,
// errors}.
package v1handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"jobboard/pkg/logger"
	"jobboard/pkg/serrors"
	"jobboard/pkg/upload"

	"jobboard/internal/application"
	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/employer"
	"jobboard/internal/jobseeker"
	"jobboard/internal/notification"
	"jobboard/internal/posting"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// Deps groups the services the v1 handlers depend on.
type Deps struct {
	Employers     employer.Employers
	JobSeekers    jobseeker.JobSeekers
	Postings      posting.Postings
	Applications  application.Applications
	Notifications notification.Notifications
	Tokens        *auth.TokenManager
	Uploads       upload.Store
}

// Options configures cookie lifetimes and security attributes.
type Options struct {
	// AccessTokenTTL bounds the accessToken cookie lifetime.
	AccessTokenTTL time.Duration
	// RefreshTokenTTL bounds the refreshToken cookie lifetime.
	RefreshTokenTTL time.Duration
	// SecureCookies controls the Secure attribute on auth cookies. Disabled
	// only for plain-http development setups.
	SecureCookies bool
}

// NewOptions constructs an Options value from the provided application
// configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		SecureCookies:   cfg.Environment != "development",
	}
}

// Handler carries the dependencies of all v1 endpoints.
type Handler struct {
	deps    Deps
	options Options
}

// New creates a v1 Handler.
func New(deps Deps, options Options) *Handler {
	return &Handler{deps: deps, options: options}
}

// Register mounts all v1 routes on the given router.
func (h *Handler) Register(router fiber.Router) {
	employers := router.Group("/employers")
	employers.Post("/register", h.registerEmployer)
	employers.Post("/login", h.loginEmployer)
	employers.Post("/refresh-token", h.refreshEmployerToken)
	employers.Post("/change-password", h.RequireEmployer, h.changeEmployerPassword)
	employers.Get("/profile", h.RequireEmployer, h.employerProfile)
	employers.Patch("/profile", h.RequireEmployer, h.updateEmployerProfile)
	employers.Post("/post-job", h.RequireEmployer, h.postJob)
	employers.Get("/applications/:jobPostingId", h.RequireEmployer, h.applicants)
	employers.Get("/job-seeker/:jobSeekerId", h.RequireEmployer, h.jobSeekerDetails)
	employers.Patch("/update-job-seeker-status/:jobPostingId/:jobSeekerId",
		h.RequireEmployer, h.updateJobSeekerStatus)
	employers.Post("/logout", h.RequireEmployer, h.logoutEmployer)

	jobSeekers := router.Group("/jobseekers")
	jobSeekers.Post("/register", h.registerJobSeeker)
	jobSeekers.Post("/login", h.loginJobSeeker)
	jobSeekers.Post("/refresh-token", h.refreshJobSeekerToken)
	jobSeekers.Post("/change-password", h.RequireJobSeeker, h.changeJobSeekerPassword)
	jobSeekers.Get("/profile", h.RequireJobSeeker, h.jobSeekerProfile)
	jobSeekers.Patch("/profile", h.RequireJobSeeker, h.updateJobSeekerProfile)
	jobSeekers.Post("/logout", h.RequireJobSeeker, h.logoutJobSeeker)

	postings := router.Group("/jobposting", h.RequireEmployer)
	postings.Post("/", h.postJob)
	postings.Get("/", h.listPostings)
	postings.Get("/:jobPostingId", h.getPosting)
	postings.Patch("/:jobPostingId", h.updatePosting)
	postings.Delete("/:jobPostingId", h.deletePosting)

	applications := router.Group("/applications")
	applications.Get("/search", h.searchJobs)
	applications.Get("/details/:jobPostingId", h.jobDetails)
	applications.Post("/apply/:jobPostingId", h.RequireJobSeeker, h.apply)
	applications.Get("/status/:jobPostingId", h.RequireJobSeeker, h.applicationStatus)

	notifications := router.Group("/notifications", h.RequireEmployer)
	notifications.Get("/stream", h.streamNotifications)
	notifications.Post("/:employerId", h.createNotification)
	notifications.Get("/:employerId", h.listNotifications)
}

// response is the success envelope of every v1 endpoint.
type response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// errorResponse is the failure envelope of every v1 endpoint.
type errorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func respond(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(response{
		StatusCode: status,
		Data:       data,
		Message:    message,
	})
}

// StatusOf maps an error to its HTTP status code, honoring explicit fiber
// errors before falling back to the semantic error taxonomy.
func StatusOf(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	return serrors.HTTPStatus(err)
}

// ErrorHandler renders every handler error into the error envelope. Only the
// semantic message crosses the wire; wrapped causes stay out of responses.
// Internal errors are logged and their details withheld entirely.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := StatusOf(err)
	message := err.Error()
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		message = serr.Message()
	}
	if status == http.StatusInternalServerError {
		logger.Error(c.UserContext(), "request failed: "+err.Error())
		message = "internal server error"
	}

	return c.Status(status).JSON(errorResponse{
		StatusCode: status,
		Message:    message,
		Success:    false,
		Errors:     []string{},
	})
}

// setAuthCookies attaches the token pair as httpOnly cookies.
func (h *Handler) setAuthCookies(c *fiber.Ctx, pair auth.TokenPair) {
	now := time.Now()
	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    pair.AccessToken,
		Expires:  now.Add(h.options.AccessTokenTTL),
		HTTPOnly: true,
		Secure:   h.options.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     refreshTokenCookie,
		Value:    pair.RefreshToken,
		Expires:  now.Add(h.options.RefreshTokenTTL),
		HTTPOnly: true,
		Secure:   h.options.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearAuthCookies expires both auth cookies.
func (h *Handler) clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   h.options.SecureCookies,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}
