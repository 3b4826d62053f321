package intake

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/homecare-staffing/internal"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Submit records a new service inquiry from the public interest form.
func (s *Service) Submit(dto CreateSubmissionDTO) (*ClientInterestSubmission, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	sub := &ClientInterestSubmission{
		FirstName:        dto.FirstName,
		LastName:         dto.LastName,
		Email:            dto.Email,
		ContactNumber:    dto.ContactNumber,
		HomeAddress1:     dto.HomeAddress1,
		HomeAddress2:     dto.HomeAddress2,
		City:             dto.City,
		State:            dto.State,
		Zipcode:          dto.Zipcode,
		InsuranceCarrier: dto.InsuranceCarrier,
		DesiredService:   dto.DesiredService,
		DateSubmitted:    time.Now(),
	}

	if err := s.repo.Create(sub); err != nil {
		s.logger.Error("failed to store client interest submission", "error", err)
		return nil, err
	}

	s.logger.Info("client interest submitted", "submission_id", sub.ID, "desired_service", sub.DesiredService)
	return sub, nil
}

func (s *Service) GetByID(id int64) (*ClientInterestSubmission, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List(limit, offset int) ([]*ClientInterestSubmission, error) {
	return s.repo.List(limit, offset)
}

func (s *Service) ListUnreviewed(limit, offset int) ([]*ClientInterestSubmission, error) {
	return s.repo.ListUnreviewed(limit, offset)
}

// MarkReviewed flags a submission as handled. Unlike the hiring workflow this
// is idempotent: reviewing twice just records the latest reviewer.
func (s *Service) MarkReviewed(id, reviewerID int64) (*ClientInterestSubmission, error) {
	sub, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	sub.Reviewed = true
	sub.ReviewedBy = &reviewerID
	if err := s.repo.Update(sub); err != nil {
		s.logger.Error("failed to mark submission reviewed", "error", err, "submission_id", id)
		return nil, err
	}

	s.logger.Info("client interest submission reviewed", "submission_id", id, "reviewer_id", reviewerID)
	return sub, nil
}
