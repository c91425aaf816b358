package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"jobboard/pkg/domain"

	"github.com/google/uuid"
)

type PgEmployer struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	CompanyName    string `db:"company_name"`
	Email          string `db:"email"`
	CompanyProfile string `db:"company_profile"`

	PasswordHash string         `db:"password_hash"`
	RefreshToken sql.NullString `db:"refresh_token" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgEmployer) ToDomain() *domain.Employer {
	return &domain.Employer{
		ID:             domain.EmployerID(p.ID),
		CompanyName:    p.CompanyName,
		Email:          p.Email,
		CompanyProfile: p.CompanyProfile,
		PasswordHash:   p.PasswordHash,
		RefreshToken:   p.RefreshToken.String,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}
}

func (p *PgEmployer) FromDomain(e domain.Employer) {
	*p = PgEmployer{
		ID:             uuid.UUID(e.ID),
		CompanyName:    e.CompanyName,
		Email:          e.Email,
		CompanyProfile: e.CompanyProfile,
		PasswordHash:   e.PasswordHash,
		RefreshToken: sql.NullString{
			String: e.RefreshToken,
			Valid:  e.RefreshToken != "",
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  e.UpdatedAt,
			Valid: !e.UpdatedAt.IsZero(),
		},
	}
}

type PgJobSeeker struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Resume   string `db:"resume"`

	// Skills and Experience are JSONB columns.
	Skills     json.RawMessage `db:"skills"`
	Experience json.RawMessage `db:"experience"`

	PasswordHash string         `db:"password_hash"`
	RefreshToken sql.NullString `db:"refresh_token" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgJobSeeker) ToDomain() (*domain.JobSeeker, error) {
	var skills []string
	if len(p.Skills) > 0 {
		if err := json.Unmarshal(p.Skills, &skills); err != nil {
			return nil, fmt.Errorf("could not unmarshal skills: %w", err)
		}
	}

	var experience []domain.Experience
	if len(p.Experience) > 0 {
		if err := json.Unmarshal(p.Experience, &experience); err != nil {
			return nil, fmt.Errorf("could not unmarshal experience: %w", err)
		}
	}

	return &domain.JobSeeker{
		ID:           domain.JobSeekerID(p.ID),
		FullName:     p.FullName,
		Email:        p.Email,
		Resume:       p.Resume,
		Skills:       skills,
		Experience:   experience,
		PasswordHash: p.PasswordHash,
		RefreshToken: p.RefreshToken.String,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}, nil
}

func (p *PgJobSeeker) FromDomain(s domain.JobSeeker) error {
	skills, err := marshalJSONList(s.Skills)
	if err != nil {
		return fmt.Errorf("could not marshal skills: %w", err)
	}

	experience, err := marshalJSONList(s.Experience)
	if err != nil {
		return fmt.Errorf("could not marshal experience: %w", err)
	}

	*p = PgJobSeeker{
		ID:           uuid.UUID(s.ID),
		FullName:     s.FullName,
		Email:        s.Email,
		Resume:       s.Resume,
		Skills:       skills,
		Experience:   experience,
		PasswordHash: s.PasswordHash,
		RefreshToken: sql.NullString{
			String: s.RefreshToken,
			Valid:  s.RefreshToken != "",
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  s.UpdatedAt,
			Valid: !s.UpdatedAt.IsZero(),
		},
	}

	return nil
}

// marshalJSONList marshals a slice to JSON, mapping nil to the empty array so
// the JSONB columns never hold SQL NULL.
func marshalJSONList[T any](list []T) (json.RawMessage, error) {
	if list == nil {
		list = []T{}
	}

	return json.Marshal(list)
}

type PgJobPosting struct {
	ID         uuid.UUID `db:"id" goqu:"skipinsert"`
	EmployerID uuid.UUID `db:"employer_id"`

	Title        string `db:"title"`
	Description  string `db:"description"`
	Requirements string `db:"requirements"`
	Location     string `db:"location"`
	Salary       string `db:"salary"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgJobPosting) ToDomain() *domain.JobPosting {
	return &domain.JobPosting{
		ID:           domain.JobPostingID(p.ID),
		EmployerID:   domain.EmployerID(p.EmployerID),
		Title:        p.Title,
		Description:  p.Description,
		Requirements: p.Requirements,
		Location:     p.Location,
		Salary:       p.Salary,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgJobPosting) FromDomain(jp domain.JobPosting) {
	*p = PgJobPosting{
		ID:           uuid.UUID(jp.ID),
		EmployerID:   uuid.UUID(jp.EmployerID),
		Title:        jp.Title,
		Description:  jp.Description,
		Requirements: jp.Requirements,
		Location:     jp.Location,
		Salary:       jp.Salary,
		CreatedAt:    jp.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  jp.UpdatedAt,
			Valid: !jp.UpdatedAt.IsZero(),
		},
	}
}

func pgJobPostingsToDomain(rows []PgJobPosting) []domain.JobPosting {
	out := make([]domain.JobPosting, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgApplication struct {
	ID           uuid.UUID `db:"id" goqu:"skipinsert"`
	JobPostingID uuid.UUID `db:"job_posting_id"`
	JobSeekerID  uuid.UUID `db:"job_seeker_id"`

	Status string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgApplication) ToDomain() *domain.Application {
	return &domain.Application{
		ID:           domain.ApplicationID(p.ID),
		JobPostingID: domain.JobPostingID(p.JobPostingID),
		JobSeekerID:  domain.JobSeekerID(p.JobSeekerID),
		Status:       domain.ApplicationStatus(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

type PgNotification struct {
	ID         uuid.UUID `db:"id" goqu:"skipinsert"`
	EmployerID uuid.UUID `db:"employer_id"`

	Content string `db:"content"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgNotification) ToDomain() *domain.Notification {
	return &domain.Notification{
		ID:         domain.NotificationID(p.ID),
		EmployerID: domain.EmployerID(p.EmployerID),
		Content:    p.Content,
		CreatedAt:  p.CreatedAt,
	}
}
