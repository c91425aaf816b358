package v1handler

import (
	"encoding/json"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"

	"jobboard/internal/jobseeker"
)

type registerJobSeekerRequest struct {
	FullName   string              `json:"fullName" form:"fullName"`
	Email      string              `json:"email" form:"email"`
	Password   string              `json:"password" form:"password"`
	Skills     []string            `json:"skills"`
	Experience []domain.Experience `json:"experience"`
}

func (r registerJobSeekerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
		validation.Field(&r.Skills, validation.Required),
	)
}

// parseSkills reads the skills field from a multipart form, accepting either
// a JSON array or a comma-separated list.
func parseSkills(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var skills []string
		if err := json.Unmarshal([]byte(raw), &skills); err == nil {
			return skills
		}
	}

	var skills []string
	for _, skill := range strings.Split(raw, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}

	return skills
}

func (h *Handler) registerJobSeeker(c *fiber.Ctx) error {
	var req registerJobSeekerRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if len(req.Skills) == 0 {
		req.Skills = parseSkills(c.FormValue("skills"))
	}
	if err := req.Validate(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "all fields are required")
	}

	var resume string
	if file, err := c.FormFile("resume"); err == nil {
		uri, err := h.saveUpload(c, file)
		if err != nil {
			return err
		}
		resume = uri
	}

	created, err := h.deps.JobSeekers.Register(c.UserContext(), jobseeker.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   req.Password,
		Resume:     resume,
		Skills:     req.Skills,
		Experience: req.Experience,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, created, "Job seeker registered successfully")
}

type loginJobSeekerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginJobSeekerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

func (h *Handler) loginJobSeeker(c *fiber.Ctx) error {
	var req loginJobSeekerRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "email and password are required")
	}

	record, pair, err := h.deps.JobSeekers.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setAuthCookies(c, pair)

	return respond(c, http.StatusOK, fiber.Map{
		"jobSeeker":    record,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "Job seeker logged in successfully")
}

func (h *Handler) refreshJobSeekerToken(c *fiber.Ctx) error {
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

	pair, err := h.deps.JobSeekers.Refresh(c.UserContext(), token)
	if err != nil {
		return err
	}

	h.setAuthCookies(c, pair)

	return respond(c, http.StatusOK, pair, "Access token refreshed")
}

func (h *Handler) changeJobSeekerPassword(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "all fields are required")
	}

	record := currentJobSeeker(c)
	if err := h.deps.JobSeekers.ChangePassword(c.UserContext(),
		record.ID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return respond(c, http.StatusOK, fiber.Map{}, "Password changed successfully")
}

func (h *Handler) jobSeekerProfile(c *fiber.Ctx) error {
	return respond(c, http.StatusOK, currentJobSeeker(c), "Job seeker profile fetched successfully")
}

type updateJobSeekerProfileRequest struct {
	FullName   *string              `json:"fullName" form:"fullName"`
	Email      *string              `json:"email" form:"email"`
	Resume     *string              `json:"resume"`
	Skills     *[]string            `json:"skills"`
	Experience *[]domain.Experience `json:"experience"`
}

func (r updateJobSeekerProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email),
	)
}

func (h *Handler) updateJobSeekerProfile(c *fiber.Ctx) error {
	var req updateJobSeekerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid profile fields")
	}

	if file, err := c.FormFile("resume"); err == nil {
		uri, err := h.saveUpload(c, file)
		if err != nil {
			return err
		}
		req.Resume = &uri
	}

	record := currentJobSeeker(c)
	updated, err := h.deps.JobSeekers.UpdateProfile(c.UserContext(), record.ID,
		storage.JobSeekerProfileUpdates{
			FullName:   req.FullName,
			Email:      req.Email,
			Resume:     req.Resume,
			Skills:     req.Skills,
			Experience: req.Experience,
		})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, updated, "Job seeker profile updated successfully")
}

func (h *Handler) logoutJobSeeker(c *fiber.Ctx) error {
	record := currentJobSeeker(c)
	if err := h.deps.JobSeekers.Logout(c.UserContext(), record.ID); err != nil {
		return err
	}

	h.clearAuthCookies(c)

	return respond(c, http.StatusOK, fiber.Map{}, "Job seeker logged out")
}
