package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/homecare-staffing/internal"
	"github.com/frahmantamala/homecare-staffing/internal/core/events"
)

// EventHandler turns staffing events into applicant email. It runs on the
// async side of the bus: a send failure is returned to the bus for logging
// and never affects the workflow that published the event.
type EventHandler struct {
	mailer     Mailer
	portalURL  string
	agencyName string
	logger     *slog.Logger
}

func NewEventHandler(mailer Mailer, cfg internal.MailConfig, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		mailer:     mailer,
		portalURL:  cfg.PortalURL,
		agencyName: cfg.AgencyName,
		logger:     logger,
	}
}

// RegisterHandlers wires the notification handlers onto the bus at startup.
func (h *EventHandler) RegisterHandlers(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeApplicantHired, h.HandleApplicantHired)
	bus.Subscribe(events.EventTypeApplicantRejected, h.HandleApplicantRejected)
}

// HandleApplicantHired sends the onboarding email carrying the one-time
// credentials. The event payload is the only place the plaintext lives after
// commit; it is never logged here.
func (h *EventHandler) HandleApplicantHired(ctx context.Context, event events.Event) error {
	hired, ok := event.(*events.ApplicantHiredEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	subject := fmt.Sprintf("Welcome to %s", h.agencyName)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Congratulations, your application has been accepted and your employee account is ready.\n\n"+
			"Username: %s\n"+
			"Temporary password: %s\n\n"+
			"Sign in at %s and change your password on first login.\n\n"+
			"%s",
		hired.FirstName, hired.Username, hired.TemporaryPassword, h.portalURL, h.agencyName)

	if err := h.mailer.Send(hired.Email, subject, body); err != nil {
		return err
	}

	h.logger.Info("onboarding email sent",
		"event_id", event.EventID(),
		"employee_id", hired.EmployeeID,
		"username", hired.Username)
	return nil
}

func (h *EventHandler) HandleApplicantRejected(ctx context.Context, event events.Event) error {
	rejected, ok := event.(*events.ApplicantRejectedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	subject := fmt.Sprintf("Your application to %s", h.agencyName)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thank you for your interest in joining %s. After careful review we will not be moving "+
			"forward with your application at this time.\n\n"+
			"We encourage you to apply again in the future.\n\n"+
			"%s",
		rejected.FirstName, h.agencyName, h.agencyName)

	if err := h.mailer.Send(rejected.Email, subject, body); err != nil {
		return err
	}

	h.logger.Info("rejection email sent",
		"event_id", event.EventID(),
		"application_id", rejected.ApplicationID)
	return nil
}
