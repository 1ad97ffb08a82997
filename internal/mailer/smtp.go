package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/voyageplanner/backend/internal/config"
	"github.com/voyageplanner/backend/internal/domain"
	"github.com/voyageplanner/backend/internal/service"
)

// SMTPMailer sends notification mail through an SMTP relay.
type SMTPMailer struct {
	client     *mail.Client
	from       string
	apiBaseURL string
}

var _ service.Mailer = (*SMTPMailer)(nil)

// NewSMTP builds an SMTPMailer from the given settings. apiBaseURL is the
// public base URL of this server; confirmation links in outgoing mail are
// built from it.
func NewSMTP(cfg config.SMTPConfig, apiBaseURL string) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: create smtp client: %w", err)
	}

	return &SMTPMailer{
		client:     client,
		from:       cfg.From,
		apiBaseURL: apiBaseURL,
	}, nil
}

// SendTripCreated mails the trip owner a link to confirm the new trip.
func (m *SMTPMailer) SendTripCreated(ctx context.Context, trip domain.Trip, owner domain.Participant) error {
	subject, body, err := tripCreatedBody(trip, owner, confirmTripURL(m.apiBaseURL, trip))
	if err != nil {
		return err
	}
	return m.send(ctx, owner.Email, subject, body)
}

// SendParticipantConfirmation mails a guest a link to confirm their presence.
func (m *SMTPMailer) SendParticipantConfirmation(ctx context.Context, trip domain.Trip, participant domain.Participant) error {
	subject, body, err := participantConfirmationBody(trip, confirmParticipantURL(m.apiBaseURL, participant))
	if err != nil {
		return err
	}
	return m.send(ctx, participant.Email, subject, body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mailer: set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mailer: set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}
