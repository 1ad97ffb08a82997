package mailer

import (
	"context"
	"log/slog"

	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/service"
)

// LogMailer writes the messages it would send to the log instead of sending
// them. Used when no SMTP host is configured, so local development works
// without a mail relay. The logged confirmation links are real and clickable.
type LogMailer struct {
	logger     *slog.Logger
	apiBaseURL string
}

var _ service.Mailer = (*LogMailer)(nil)

func NewLog(logger *slog.Logger, apiBaseURL string) *LogMailer {
	return &LogMailer{logger: logger, apiBaseURL: apiBaseURL}
}

func (m *LogMailer) SendTripCreated(ctx context.Context, trip domain.Trip, owner domain.Participant) error {
	subject, _, err := tripCreatedBody(trip, owner, confirmTripURL(m.apiBaseURL, trip))
	if err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "mail (not sent, no smtp host configured)",
		slog.String("to", owner.Email),
		slog.String("subject", subject),
		slog.String("confirm_url", confirmTripURL(m.apiBaseURL, trip)),
	)
	return nil
}

func (m *LogMailer) SendParticipantConfirmation(ctx context.Context, trip domain.Trip, participant domain.Participant) error {
	subject, _, err := participantConfirmationBody(trip, confirmParticipantURL(m.apiBaseURL, participant))
	if err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "mail (not sent, no smtp host configured)",
		slog.String("to", participant.Email),
		slog.String("subject", subject),
		slog.String("confirm_url", confirmParticipantURL(m.apiBaseURL, participant)),
	)
	return nil
}
