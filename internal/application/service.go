package application

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/core/events"
	"github.com/frahmantamala/homecare-staffing/internal/employee"
	"gorm.io/gorm"
)

// TxRunner abstracts gorm's transaction entry point so the workflow can be
// unit tested without a live database. *gorm.DB satisfies it.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// CredentialSource produces and hashes temporary credentials for new hires.
type CredentialSource interface {
	Generate() (string, error)
	Hash(plaintext string) (string, error)
}

// usernameAttempts caps disambiguation; past this the hire fails with
// DuplicateUsername rather than scanning forever.
const usernameAttempts = 100

type Service struct {
	txRunner    TxRunner
	repo        Repository
	employees   employee.Repository
	credentials CredentialSource
	bus         *events.EventBus
	logger      *slog.Logger
}

func NewService(txRunner TxRunner, repo Repository, employees employee.Repository, credentials CredentialSource, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		txRunner:    txRunner,
		repo:        repo,
		employees:   employees,
		credentials: credentials,
		bus:         bus,
		logger:      logger,
	}
}

// Submit records a new application from the public careers form.
func (s *Service) Submit(dto CreateApplicationDTO) (*EmploymentApplication, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	app := &EmploymentApplication{
		FirstName:             dto.FirstName,
		LastName:              dto.LastName,
		Email:                 dto.Email,
		ContactNumber:         dto.ContactNumber,
		HomeAddress1:          dto.HomeAddress1,
		HomeAddress2:          dto.HomeAddress2,
		City:                  dto.City,
		State:                 dto.State,
		Zipcode:               dto.Zipcode,
		Mobility:              dto.Mobility,
		PriorExperience:       dto.PriorExperience,
		IPDHRegistered:        dto.IPDHRegistered,
		AvailabilityMonday:    dto.AvailabilityMonday,
		AvailabilityTuesday:   dto.AvailabilityTuesday,
		AvailabilityWednesday: dto.AvailabilityWednesday,
		AvailabilityThursday:  dto.AvailabilityThursday,
		AvailabilityFriday:    dto.AvailabilityFriday,
		AvailabilitySaturday:  dto.AvailabilitySaturday,
		AvailabilitySunday:    dto.AvailabilitySunday,
		DateSubmitted:         time.Now(),
	}

	if err := s.repo.Create(app); err != nil {
		s.logger.Error("failed to store application", "error", err)
		return nil, err
	}

	s.logger.Info("application submitted", "application_id", app.ID, "last_name", app.LastName)
	return app, nil
}

func (s *Service) GetByID(id int64) (*EmploymentApplication, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List(limit, offset int) ([]*EmploymentApplication, error) {
	return s.repo.List(limit, offset)
}

func (s *Service) ListPending(limit, offset int) ([]*EmploymentApplication, error) {
	return s.repo.ListPending(limit, offset)
}

// Reject marks the application as reviewed and not hired. The row lock plus
// the terminal check inside the transaction guarantee that of two concurrent
// reviewers exactly one wins; the other gets AlreadyReviewed.
func (s *Service) Reject(ctx context.Context, applicationID, reviewerID int64) error {
	var app *EmploymentApplication

	err := s.txRunner.Transaction(func(tx *gorm.DB) error {
		apps := s.repo.WithTx(tx)

		var err error
		app, err = apps.GetByIDForUpdate(applicationID)
		if err != nil {
			return err
		}
		if app.Reviewed {
			return internal.ErrAlreadyReviewed
		}

		hired := false
		app.Hired = &hired
		app.Reviewed = true
		app.ReviewedBy = &reviewerID
		return apps.Update(app)
	})
	if err != nil {
		s.logger.Error("reject failed", "error", err, "application_id", applicationID, "reviewer_id", reviewerID)
		return err
	}

	s.logger.Info("application rejected",
		"application_id", applicationID,
		"reviewer_id", reviewerID,
		"last_name", app.LastName)

	s.bus.Publish(ctx, events.NewApplicantRejectedEvent(app.ID, app.Email, app.FirstName, app.LastName))
	return nil
}

// Hire converts an applicant into an employee inside a single transaction:
// terminal check, username derivation, credential generation and hashing,
// employee creation (which runs the account provisioning hook), then the
// application mutation. Any failure rolls everything back and the generated
// plaintext is discarded. On success the plaintext is returned to the caller
// for one-time transmission and handed to the onboarding mailer; it is never
// persisted or logged.
func (s *Service) Hire(ctx context.Context, applicationID, reviewerID int64) (*HireResult, error) {
	var (
		result *HireResult
		app    *EmploymentApplication
	)

	err := s.txRunner.Transaction(func(tx *gorm.DB) error {
		apps := s.repo.WithTx(tx)
		emps := s.employees.WithTx(tx)

		var err error
		app, err = apps.GetByIDForUpdate(applicationID)
		if err != nil {
			return err
		}
		if app.Reviewed {
			return internal.ErrAlreadyReviewed
		}

		username, err := s.uniqueUsername(emps, app.FirstName, app.LastName)
		if err != nil {
			return err
		}

		plaintext, err := s.credentials.Generate()
		if err != nil {
			return fmt.Errorf("credential generation: %w", err)
		}
		hash, err := s.credentials.Hash(plaintext)
		if err != nil {
			return fmt.Errorf("credential hashing: %w", err)
		}

		emp := &employee.Employee{
			Username:       username,
			PasswordHash:   hash,
			FirstName:      app.FirstName,
			LastName:       app.LastName,
			Email:          app.Email,
			Phone:          app.ContactNumber,
			StreetAddress1: app.HomeAddress1,
			StreetAddress2: app.HomeAddress2,
			City:           app.City,
			State:          app.State,
			Zipcode:        app.Zipcode,
			IsActive:       true,
			IsSuperuser:    false,
			HiredAt:        time.Now(),
		}
		if err := emps.Create(emp); err != nil {
			return fmt.Errorf("employee creation: %w", err)
		}

		hired := true
		app.Hired = &hired
		app.Reviewed = true
		app.ReviewedBy = &reviewerID
		if err := apps.Update(app); err != nil {
			return fmt.Errorf("application update: %w", err)
		}

		result = &HireResult{
			EmployeeID:        emp.ID,
			Username:          username,
			PlaintextPassword: plaintext,
		}
		return nil
	})
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			return nil, appErr
		}
		s.logger.Error("hire transaction rolled back", "error", err, "application_id", applicationID)
		return nil, internal.ErrHireFailed.WithCause(err)
	}

	s.logger.Info("applicant hired",
		"application_id", applicationID,
		"employee_id", result.EmployeeID,
		"username", result.Username,
		"reviewer_id", reviewerID)

	// Credential delivery is best effort: a mail failure is logged by the
	// bus, the completed hire stands.
	s.bus.Publish(ctx, events.NewApplicantHiredEvent(
		app.ID, result.EmployeeID, result.Username, app.Email, app.FirstName, result.PlaintextPassword))

	return result, nil
}

// uniqueUsername disambiguates the derived username with a numeric suffix
// before any row is written, so uniqueness is never discovered via a
// constraint violation.
func (s *Service) uniqueUsername(emps employee.Repository, firstName, lastName string) (string, error) {
	base := employee.DeriveUsername(firstName, lastName)

	for i := 1; i <= usernameAttempts; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s%d", base, i)
		}
		exists, err := emps.UsernameExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", internal.ErrDuplicateUsername
}
