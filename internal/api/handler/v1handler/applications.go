package v1handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard/pkg/domain"
	"jobboard/pkg/serrors"
	"jobboard/pkg/storage"
)

func (h *Handler) searchJobs(c *fiber.Ctx) error {
	filter := storage.JobPostingFilter{
		Title:    c.Query("title"),
		Location: c.Query("location"),
		Salary:   c.Query("salary"),
	}
	if raw := c.Query("employerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid employerId")
		}
		employerID := domain.EmployerID(id)
		filter.EmployerID = &employerID
	}

	jobs, err := h.deps.Applications.Search(c.UserContext(), filter)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, jobs, "Jobs retrieved successfully")
}

func (h *Handler) jobDetails(c *fiber.Ctx) error {
	id, err := pathID(c, "jobPostingId")
	if err != nil {
		return err
	}

	job, err := h.deps.Applications.Details(c.UserContext(), domain.JobPostingID(id))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, job, "Job details retrieved successfully")
}

func (h *Handler) apply(c *fiber.Ctx) error {
	id, err := pathID(c, "jobPostingId")
	if err != nil {
		return err
	}

	record := currentJobSeeker(c)
	created, err := h.deps.Applications.Apply(c.UserContext(),
		domain.JobPostingID(id), record.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, created, "Job application submitted successfully")
}

func (h *Handler) applicationStatus(c *fiber.Ctx) error {
	id, err := pathID(c, "jobPostingId")
	if err != nil {
		return err
	}

	record := currentJobSeeker(c)
	status, err := h.deps.Applications.Status(c.UserContext(),
		domain.JobPostingID(id), record.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, status, "Application status retrieved successfully")
}
