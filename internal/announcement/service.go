package announcement

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/core/events"
)

type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{repo: repo, bus: bus, logger: logger}
}

// Create stores a new announcement. Unless the DTO asks for a draft it is
// posted immediately.
func (s *Service) Create(ctx context.Context, dto CreateAnnouncementDTO, authorID int64) (*Announcement, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	a := &Announcement{
		Title:       dto.Title,
		Message:     dto.Message,
		MessageType: dto.MessageType,
		Status:      StatusDraft,
		PostedBy:    &authorID,
	}
	if !dto.Draft {
		now := time.Now()
		a.Status = StatusActive
		a.DatePosted = &now
	}

	if err := s.repo.Create(a); err != nil {
		s.logger.Error("failed to store announcement", "error", err)
		return nil, err
	}

	if a.Status == StatusActive {
		s.bus.Publish(ctx, events.NewAnnouncementPostedEvent(a.ID, a.Title, a.MessageType))
	}

	s.logger.Info("announcement created", "announcement_id", a.ID, "status", a.Status)
	return a, nil
}

func (s *Service) GetByID(id int64) (*Announcement, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List(limit, offset int) ([]*Announcement, error) {
	return s.repo.List(limit, offset)
}

func (s *Service) ListActive(limit, offset int) ([]*Announcement, error) {
	return s.repo.ListActive(limit, offset)
}

// Post activates a draft or archived announcement and re-stamps the posting
// time. Posting an already active announcement is a no-op.
func (s *Service) Post(ctx context.Context, id, posterID int64) (*Announcement, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a.Status == StatusActive {
		return a, nil
	}

	now := time.Now()
	a.Status = StatusActive
	a.DatePosted = &now
	a.PostedBy = &posterID
	if err := s.repo.Update(a); err != nil {
		s.logger.Error("failed to post announcement", "error", err, "announcement_id", id)
		return nil, err
	}

	s.bus.Publish(ctx, events.NewAnnouncementPostedEvent(a.ID, a.Title, a.MessageType))
	s.logger.Info("announcement posted", "announcement_id", id, "poster_id", posterID)
	return a, nil
}

// Repost is posting an archived announcement again; semantics are identical
// to Post and exposed separately only for route clarity.
func (s *Service) Repost(ctx context.Context, id, posterID int64) (*Announcement, error) {
	return s.Post(ctx, id, posterID)
}

func (s *Service) Archive(id int64) (*Announcement, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a.Status == StatusArchive {
		return a, nil
	}

	a.Status = StatusArchive
	if err := s.repo.Update(a); err != nil {
		s.logger.Error("failed to archive announcement", "error", err, "announcement_id", id)
		return nil, err
	}

	s.logger.Info("announcement archived", "announcement_id", id)
	return a, nil
}
