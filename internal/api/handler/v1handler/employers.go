package v1handler

import (
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"

	"jobboard/internal/employer"
)

type registerEmployerRequest struct {
	CompanyName    string `json:"companyName" form:"companyName"`
	Email          string `json:"email" form:"email"`
	Password       string `json:"password" form:"password"`
	CompanyProfile string `json:"companyProfile" form:"companyProfile"`
}

func (r registerEmployerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CompanyName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
	)
}

func (h *Handler) registerEmployer(c *fiber.Ctx) error {
	var req registerEmployerRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "all fields are required")
	}

	// the company profile may arrive as an uploaded file instead of a URI
	if file, err := c.FormFile("companyProfile"); err == nil {
		uri, err := h.saveUpload(c, file)
		if err != nil {
			return err
		}
		req.CompanyProfile = uri
	}

	created, err := h.deps.Employers.Register(c.UserContext(), employer.RegisterInput{
		CompanyName:    req.CompanyName,
		Email:          req.Email,
		Password:       req.Password,
		CompanyProfile: req.CompanyProfile,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, created, "Employer registered successfully")
}

type loginEmployerRequest struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

func (h *Handler) loginEmployer(c *fiber.Ctx) error {
	var req loginEmployerRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	identifier := req.CompanyName
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		return serrors.With(serrors.ErrBadRequest, "companyName or email is required")
	}

	record, pair, err := h.deps.Employers.Login(c.UserContext(), identifier, req.Password)
	if err != nil {
		return err
	}

	h.setAuthCookies(c, pair)

	return respond(c, http.StatusOK, fiber.Map{
		"employer":     record,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "Employer logged in successfully")
}

func (h *Handler) refreshEmployerToken(c *fiber.Ctx) error {
	token := c.Cookies(refreshTokenCookie)
	if token == "" {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.BodyParser(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		return serrors.With(serrors.ErrUnauthorized, "unauthorized request")
	}

	pair, err := h.deps.Employers.Refresh(c.UserContext(), token)
	if err != nil {
		return err
	}

	h.setAuthCookies(c, pair)

	return respond(c, http.StatusOK, pair, "Access token refreshed")
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r changePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OldPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(6, 100)),
	)
}

func (h *Handler) changeEmployerPassword(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "all fields are required")
	}

	record := currentEmployer(c)
	if err := h.deps.Employers.ChangePassword(c.UserContext(),
		record.ID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return respond(c, http.StatusOK, fiber.Map{}, "Password changed successfully")
}

func (h *Handler) employerProfile(c *fiber.Ctx) error {
	return respond(c, http.StatusOK, currentEmployer(c), "Employer profile fetched successfully")
}

type updateEmployerProfileRequest struct {
	CompanyName    *string `json:"companyName" form:"companyName"`
	Email          *string `json:"email" form:"email"`
	CompanyProfile *string `json:"companyProfile" form:"companyProfile"`
}

func (r updateEmployerProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CompanyName, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email),
	)
}

func (h *Handler) updateEmployerProfile(c *fiber.Ctx) error {
	var req updateEmployerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid profile fields")
	}

	if file, err := c.FormFile("companyProfile"); err == nil {
		uri, err := h.saveUpload(c, file)
		if err != nil {
			return err
		}
		req.CompanyProfile = &uri
	}

	record := currentEmployer(c)
	updated, err := h.deps.Employers.UpdateProfile(c.UserContext(), record.ID,
		storage.EmployerProfileUpdates{
			CompanyName:    req.CompanyName,
			Email:          req.Email,
			CompanyProfile: req.CompanyProfile,
		})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, updated, "Employer profile updated successfully")
}

type postJobRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
}

func (r postJobRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Requirements, validation.Required),
		validation.Field(&r.Location, validation.Required),
		validation.Field(&r.Salary, validation.Required),
	)
}

func (h *Handler) postJob(c *fiber.Ctx) error {
	var req postJobRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "all fields are required")
	}

	record := currentEmployer(c)
	created, err := h.deps.Postings.Create(c.UserContext(), record.ID, postingInput(req))
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, created, "Job posted successfully")
}

func (h *Handler) applicants(c *fiber.Ctx) error {
	postingID, err := pathID(c, "jobPostingId")
	if err != nil {
		return err
	}

	record := currentEmployer(c)
	result, err := h.deps.Employers.Applicants(c.UserContext(),
		record.ID, domain.JobPostingID(postingID))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, result, "Applications fetched successfully")
}

func (h *Handler) jobSeekerDetails(c *fiber.Ctx) error {
	seekerID, err := pathID(c, "jobSeekerId")
	if err != nil {
		return err
	}

	details, err := h.deps.Employers.JobSeekerDetails(c.UserContext(), domain.JobSeekerID(seekerID))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, details, "Job seeker details fetched successfully")
}

func (h *Handler) updateJobSeekerStatus(c *fiber.Ctx) error {
	postingID, err := pathID(c, "jobPostingId")
	if err != nil {
		return err
	}
	seekerID, err := pathID(c, "jobSeekerId")
	if err != nil {
		return err
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	record := currentEmployer(c)
	updated, err := h.deps.Employers.UpdateApplicationStatus(c.UserContext(),
		record.ID,
		domain.JobPostingID(postingID),
		domain.JobSeekerID(seekerID),
		domain.ApplicationStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, updated, "Job seeker status updated successfully")
}

func (h *Handler) logoutEmployer(c *fiber.Ctx) error {
	record := currentEmployer(c)
	if err := h.deps.Employers.Logout(c.UserContext(), record.ID); err != nil {
		return err
	}

	h.clearAuthCookies(c)

	return respond(c, http.StatusOK, fiber.Map{}, "Employer logged out")
}
