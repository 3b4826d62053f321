package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeApplicantHired     = "applicant.hired"
	EventTypeApplicantRejected  = "applicant.rejected"
	EventTypeAnnouncementPosted = "announcement.posted"
	EventTypeEmployeeTerminated = "employee.terminated"
)

// ApplicantHiredEvent is published after the hire transaction commits.
// TemporaryPassword is intentionally excluded from serialization: it exists
// only to be handed to the onboarding mailer, never persisted or logged.
type ApplicantHiredEvent struct {
	BaseEvent
	ApplicationID     int64  `json:"application_id"`
	EmployeeID        int64  `json:"employee_id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	FirstName         string `json:"first_name"`
	TemporaryPassword string `json:"-"`
}

func NewApplicantHiredEvent(applicationID, employeeID int64, username, email, firstName, temporaryPassword string) *ApplicantHiredEvent {
	return &ApplicantHiredEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeApplicantHired,
			Timestamp: time.Now(),
		},
		ApplicationID:     applicationID,
		EmployeeID:        employeeID,
		Username:          username,
		Email:             email,
		FirstName:         firstName,
		TemporaryPassword: temporaryPassword,
	}
}

type ApplicantRejectedEvent struct {
	BaseEvent
	ApplicationID int64  `json:"application_id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
}

func NewApplicantRejectedEvent(applicationID int64, email, firstName, lastName string) *ApplicantRejectedEvent {
	return &ApplicantRejectedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeApplicantRejected,
			Timestamp: time.Now(),
		},
		ApplicationID: applicationID,
		Email:         email,
		FirstName:     firstName,
		LastName:      lastName,
	}
}

type AnnouncementPostedEvent struct {
	BaseEvent
	AnnouncementID int64  `json:"announcement_id"`
	Title          string `json:"title"`
	MessageType    string `json:"message_type"`
}

func NewAnnouncementPostedEvent(announcementID int64, title, messageType string) *AnnouncementPostedEvent {
	return &AnnouncementPostedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeAnnouncementPosted,
			Timestamp: time.Now(),
		},
		AnnouncementID: announcementID,
		Title:          title,
		MessageType:    messageType,
	}
}

type EmployeeTerminatedEvent struct {
	BaseEvent
	EmployeeID int64  `json:"employee_id"`
	Username   string `json:"username"`
}

func NewEmployeeTerminatedEvent(employeeID int64, username string) *EmployeeTerminatedEvent {
	return &EmployeeTerminatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeEmployeeTerminated,
			Timestamp: time.Now(),
		},
		EmployeeID: employeeID,
		Username:   username,
	}
}
