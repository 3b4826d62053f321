package announcement

import (
	"errors"
	"strings"
)

type CreateAnnouncementDTO struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	MessageType string `json:"message_type"`

	// Draft defers posting; the default is to post immediately.
	Draft bool `json:"draft"`
}

var validTypes = map[string]bool{
	TypeSafety: true, TypeTraining: true, TypeCompliance: true, TypeGeneral: true,
}

func (dto CreateAnnouncementDTO) Validate() error {
	if strings.TrimSpace(dto.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(dto.Message) == "" {
		return errors.New("message is required")
	}
	if !validTypes[dto.MessageType] {
		return errors.New("message type must be one of C, T, X, G")
	}
	return nil
}

type ListResponse struct {
	Announcements []*Announcement `json:"announcements"`
	Limit         int             `json:"limit"`
	Offset        int             `json:"offset"`
}
