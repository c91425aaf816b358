// Package storagetest provides an in-memory storage.Storage implementation
// for service tests. It mirrors the behavior the Postgres layer guarantees:
// unique constraints surface storage.ErrDuplicate, lookups return nil when
// absent, and applicants come back with credential fields blanked.
package storagetest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobboard/pkg/domain"
	"jobboard/pkg/storage"
)

type applicationKey struct {
	postingID domain.JobPostingID
	seekerID  domain.JobSeekerID
}

// Fake is an in-memory storage.Storage. The zero value is not usable; create
// instances with New.
type Fake struct {
	mu sync.Mutex

	employers     map[domain.EmployerID]domain.Employer
	jobSeekers    map[domain.JobSeekerID]domain.JobSeeker
	postings      map[domain.JobPostingID]domain.JobPosting
	applications  map[applicationKey]domain.Application
	notifications []domain.Notification
}

var _ storage.Storage = (*Fake)(nil)

// New creates an empty in-memory storage.
func New() *Fake {
	return &Fake{
		employers:    map[domain.EmployerID]domain.Employer{},
		jobSeekers:   map[domain.JobSeekerID]domain.JobSeeker{},
		postings:     map[domain.JobPostingID]domain.JobPosting{},
		applications: map[applicationKey]domain.Application{},
	}
}

func (f *Fake) Close() error { return nil }

// Begin returns a handle backed by the same maps. Tests exercise service
// logic, not transaction isolation.
func (f *Fake) Begin(_ context.Context) (storage.TxStorage, error) {
	return fakeTx{f}, nil
}

func (f *Fake) WithTx(_ context.Context, cb func(storage storage.AllStorage) error) error {
	return cb(f)
}

type fakeTx struct{ *Fake }

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func (f *Fake) CreateEmployer(_ context.Context, employer domain.Employer) (*domain.Employer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.employers {
		if existing.CompanyName == employer.CompanyName || existing.Email == employer.Email {
			return nil, storage.ErrDuplicate
		}
	}

	employer.ID = domain.EmployerID(uuid.New())
	employer.CreatedAt = time.Now()
	employer.UpdatedAt = employer.CreatedAt
	f.employers[employer.ID] = employer

	return &employer, nil
}

func (f *Fake) EmployerByID(_ context.Context, id domain.EmployerID) (*domain.Employer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	employer, ok := f.employers[id]
	if !ok {
		return nil, nil
	}

	return &employer, nil
}

func (f *Fake) EmployerByLogin(_ context.Context, identifier string) (*domain.Employer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, employer := range f.employers {
		if employer.CompanyName == identifier || employer.Email == identifier {
			employer := employer

			return &employer, nil
		}
	}

	return nil, nil
}

func (f *Fake) UpdateEmployerProfile(_ context.Context,
	id domain.EmployerID,
	updates storage.EmployerProfileUpdates) (*domain.Employer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	employer, ok := f.employers[id]
	if !ok {
		return nil, nil
	}

	for otherID, other := range f.employers {
		if otherID == id {
			continue
		}
		if (updates.CompanyName != nil && other.CompanyName == *updates.CompanyName) ||
			(updates.Email != nil && other.Email == *updates.Email) {
			return nil, storage.ErrDuplicate
		}
	}

	if updates.CompanyName != nil {
		employer.CompanyName = *updates.CompanyName
	}
	if updates.Email != nil {
		employer.Email = *updates.Email
	}
	if updates.CompanyProfile != nil {
		employer.CompanyProfile = *updates.CompanyProfile
	}
	employer.UpdatedAt = time.Now()
	f.employers[id] = employer

	return &employer, nil
}

func (f *Fake) SetEmployerRefreshToken(_ context.Context, id domain.EmployerID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	employer, ok := f.employers[id]
	if !ok {
		return nil
	}
	employer.RefreshToken = token
	f.employers[id] = employer

	return nil
}

func (f *Fake) SetEmployerPassword(_ context.Context, id domain.EmployerID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	employer, ok := f.employers[id]
	if !ok {
		return nil
	}
	employer.PasswordHash = passwordHash
	f.employers[id] = employer

	return nil
}

func (f *Fake) CreateJobSeeker(_ context.Context, seeker domain.JobSeeker) (*domain.JobSeeker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.jobSeekers {
		if existing.Email == seeker.Email {
			return nil, storage.ErrDuplicate
		}
	}

	seeker.ID = domain.JobSeekerID(uuid.New())
	seeker.CreatedAt = time.Now()
	seeker.UpdatedAt = seeker.CreatedAt
	f.jobSeekers[seeker.ID] = seeker

	return &seeker, nil
}

func (f *Fake) JobSeekerByID(_ context.Context, id domain.JobSeekerID) (*domain.JobSeeker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seeker, ok := f.jobSeekers[id]
	if !ok {
		return nil, nil
	}

	return &seeker, nil
}

func (f *Fake) JobSeekerByEmail(_ context.Context, email string) (*domain.JobSeeker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, seeker := range f.jobSeekers {
		if seeker.Email == email {
			seeker := seeker

			return &seeker, nil
		}
	}

	return nil, nil
}

func (f *Fake) UpdateJobSeekerProfile(_ context.Context,
	id domain.JobSeekerID,
	updates storage.JobSeekerProfileUpdates) (*domain.JobSeeker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seeker, ok := f.jobSeekers[id]
	if !ok {
		return nil, nil
	}

	for otherID, other := range f.jobSeekers {
		if otherID != id && updates.Email != nil && other.Email == *updates.Email {
			return nil, storage.ErrDuplicate
		}
	}

	if updates.FullName != nil {
		seeker.FullName = *updates.FullName
	}
	if updates.Email != nil {
		seeker.Email = *updates.Email
	}
	if updates.Resume != nil {
		seeker.Resume = *updates.Resume
	}
	if updates.Skills != nil {
		seeker.Skills = *updates.Skills
	}
	if updates.Experience != nil {
		seeker.Experience = *updates.Experience
	}
	seeker.UpdatedAt = time.Now()
	f.jobSeekers[id] = seeker

	return &seeker, nil
}

func (f *Fake) SetJobSeekerRefreshToken(_ context.Context, id domain.JobSeekerID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	seeker, ok := f.jobSeekers[id]
	if !ok {
		return nil
	}
	seeker.RefreshToken = token
	f.jobSeekers[id] = seeker

	return nil
}

func (f *Fake) SetJobSeekerPassword(_ context.Context, id domain.JobSeekerID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	seeker, ok := f.jobSeekers[id]
	if !ok {
		return nil
	}
	seeker.PasswordHash = passwordHash
	f.jobSeekers[id] = seeker

	return nil
}

func (f *Fake) CreateJobPosting(_ context.Context, posting domain.JobPosting) (*domain.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	posting.ID = domain.JobPostingID(uuid.New())
	posting.CreatedAt = time.Now()
	posting.UpdatedAt = posting.CreatedAt
	f.postings[posting.ID] = posting

	return &posting, nil
}

func (f *Fake) JobPostingByID(_ context.Context, id domain.JobPostingID) (*domain.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	posting, ok := f.postings[id]
	if !ok {
		return nil, nil
	}

	return &posting, nil
}

func (f *Fake) UpdateJobPosting(_ context.Context,
	id domain.JobPostingID,
	updates storage.JobPostingUpdates) (*domain.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	posting, ok := f.postings[id]
	if !ok {
		return nil, nil
	}

	if updates.Title != nil {
		posting.Title = *updates.Title
	}
	if updates.Description != nil {
		posting.Description = *updates.Description
	}
	if updates.Requirements != nil {
		posting.Requirements = *updates.Requirements
	}
	if updates.Location != nil {
		posting.Location = *updates.Location
	}
	if updates.Salary != nil {
		posting.Salary = *updates.Salary
	}
	posting.UpdatedAt = time.Now()
	f.postings[id] = posting

	return &posting, nil
}

func (f *Fake) DeleteJobPosting(_ context.Context, id domain.JobPostingID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.postings[id]; !ok {
		return false, nil
	}
	delete(f.postings, id)

	return true, nil
}

func (f *Fake) ListJobPostings(_ context.Context,
	page storage.JobPostingPage) (storage.JobPostingList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []domain.JobPosting
	for _, posting := range f.postings {
		if page.Query != "" &&
			!strings.Contains(strings.ToLower(posting.Title), strings.ToLower(page.Query)) {
			continue
		}
		matched = append(matched, posting)
	}

	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch page.SortBy {
		case "title":
			less = matched[i].Title < matched[j].Title
		case "location":
			less = matched[i].Location < matched[j].Location
		case "salary":
			less = matched[i].Salary < matched[j].Salary
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if page.SortDesc {
			return !less
		}

		return less
	})

	total := int64(len(matched))
	offset := int(page.Page-1) * int(page.Limit)
	if offset >= len(matched) {
		return storage.JobPostingList{Total: total}, nil
	}
	end := offset + int(page.Limit)
	if end > len(matched) {
		end = len(matched)
	}

	return storage.JobPostingList{Postings: matched[offset:end], Total: total}, nil
}

func (f *Fake) SearchJobPostings(_ context.Context,
	filter storage.JobPostingFilter) ([]domain.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []domain.JobPosting
	for _, posting := range f.postings {
		if filter.Title != "" &&
			!strings.Contains(strings.ToLower(posting.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if filter.Location != "" && posting.Location != filter.Location {
			continue
		}
		if filter.Salary != "" && posting.Salary != filter.Salary {
			continue
		}
		if filter.EmployerID != nil && posting.EmployerID != *filter.EmployerID {
			continue
		}
		matched = append(matched, posting)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	return matched, nil
}

func (f *Fake) CreateApplication(_ context.Context,
	postingID domain.JobPostingID,
	seekerID domain.JobSeekerID) (*domain.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := applicationKey{postingID: postingID, seekerID: seekerID}
	if _, ok := f.applications[key]; ok {
		return nil, storage.ErrDuplicate
	}

	application := domain.Application{
		ID:           domain.ApplicationID(uuid.New()),
		JobPostingID: postingID,
		JobSeekerID:  seekerID,
		Status:       domain.ApplicationStatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.applications[key] = application

	return &application, nil
}

func (f *Fake) ApplicationByPostingAndSeeker(_ context.Context,
	postingID domain.JobPostingID,
	seekerID domain.JobSeekerID) (*domain.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	application, ok := f.applications[applicationKey{postingID: postingID, seekerID: seekerID}]
	if !ok {
		return nil, nil
	}

	return &application, nil
}

func (f *Fake) UpdateApplicationStatus(_ context.Context,
	postingID domain.JobPostingID,
	seekerID domain.JobSeekerID,
	status domain.ApplicationStatus) (*domain.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := applicationKey{postingID: postingID, seekerID: seekerID}
	application, ok := f.applications[key]
	if !ok {
		return nil, nil
	}
	application.Status = status
	application.UpdatedAt = time.Now()
	f.applications[key] = application

	return &application, nil
}

func (f *Fake) ApplicantsByPosting(_ context.Context,
	postingID domain.JobPostingID) ([]domain.JobSeeker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var applicants []domain.JobSeeker
	for key, application := range f.applications {
		if key.postingID != postingID {
			continue
		}
		seeker, ok := f.jobSeekers[application.JobSeekerID]
		if !ok {
			continue
		}
		seeker.PasswordHash = ""
		seeker.RefreshToken = ""
		applicants = append(applicants, seeker)
	}

	sort.Slice(applicants, func(i, j int) bool {
		return applicants[i].CreatedAt.Before(applicants[j].CreatedAt)
	})

	return applicants, nil
}

func (f *Fake) CreateNotification(_ context.Context,
	employerID domain.EmployerID,
	content string) (*domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	notification := domain.Notification{
		ID:         domain.NotificationID(uuid.New()),
		EmployerID: employerID,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	f.notifications = append(f.notifications, notification)

	return &notification, nil
}

func (f *Fake) NotificationsByEmployer(_ context.Context,
	employerID domain.EmployerID) ([]domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Notification
	for _, notification := range f.notifications {
		if notification.EmployerID == employerID {
			result = append(result, notification)
		}
	}

	return result, nil
}
