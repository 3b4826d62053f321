package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/compliance"
	"github.com/frahmantamala/homecare-staffing/internal/core/events"
)

type Service struct {
	repo       Repository
	compliance compliance.Repository
	bus        *events.EventBus
	logger     *slog.Logger
}

func NewService(repo Repository, complianceRepo compliance.Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		compliance: complianceRepo,
		bus:        bus,
		logger:     logger,
	}
}

// Roster lists employees ordered by last name.
func (s *Service) Roster(limit, offset int) ([]*Employee, error) {
	employees, err := s.repo.List(limit, offset)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

// Detail returns one employee together with their compliance record.
func (s *Service) Detail(id int64) (*EmployeeDetail, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}

	record, err := s.compliance.GetByEmployeeID(id)
	if err != nil && err != compliance.ErrRecordNotFound {
		s.logger.Error("failed to load compliance record", "error", err, "employee_id", id)
		return nil, err
	}

	return &EmployeeDetail{Employee: emp, Compliance: record}, nil
}

// Terminate deactivates the account and stamps the termination time. The
// row itself is never deleted.
func (s *Service) Terminate(ctx context.Context, id int64) error {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return internal.ErrEmployeeNotFound
		}
		return err
	}

	now := time.Now()
	emp.IsActive = false
	emp.TerminatedAt = &now
	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to terminate employee", "error", err, "employee_id", id)
		return err
	}

	s.logger.Info("employee terminated", "employee_id", id, "username", emp.Username)
	s.bus.Publish(ctx, events.NewEmployeeTerminatedEvent(emp.ID, emp.Username))
	return nil
}

// Promote grants superuser (administrator) rights.
func (s *Service) Promote(id int64) error {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return internal.ErrEmployeeNotFound
		}
		return err
	}

	emp.IsSuperuser = true
	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to promote employee", "error", err, "employee_id", id)
		return err
	}

	s.logger.Info("employee promoted to administrator", "employee_id", id, "username", emp.Username)
	return nil
}
