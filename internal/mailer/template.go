// Package mailer implements the notification gateway used by the service
// layer. The SMTP mailer sends real mail through a configured relay; the log
// mailer is a development fallback that writes the would-be messages to the
// log instead.
package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/voyageplanner/backend/internal/domain"
)

// displayDateLayout matches the short human form shown in mail bodies,
// e.g. "January 2, 2026".
const displayDateLayout = "January 2, 2006"

var tripCreatedTmpl = template.Must(template.New("trip_created").Parse(`<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
  <p>Hello, {{.OwnerName}}!</p>
  <p>You requested a trip to <strong>{{.Destination}}</strong> from <strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
  <p>To confirm your trip, click the link below:</p>
  <p><a href="{{.ConfirmURL}}">Confirm trip</a></p>
  <p>If you don't know what this email is about, just ignore it.</p>
</div>`))

var participantConfirmationTmpl = template.Must(template.New("participant_confirmation").Parse(`<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
  <p>Hello!</p>
  <p>You have been invited to join a trip to <strong>{{.Destination}}</strong> from <strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
  <p>To confirm your presence on the trip, click the link below:</p>
  <p><a href="{{.ConfirmURL}}">Confirm my presence</a></p>
  <p>If you don't know what this email is about, just ignore it.</p>
</div>`))

type mailData struct {
	OwnerName   string
	Destination string
	StartsAt    string
	EndsAt      string
	ConfirmURL  string
}

func tripCreatedBody(trip domain.Trip, owner domain.Participant, confirmURL string) (subject, body string, err error) {
	data := mailData{
		OwnerName:   owner.Name,
		Destination: trip.Destination,
		StartsAt:    trip.StartsAt.Format(displayDateLayout),
		EndsAt:      trip.EndsAt.Format(displayDateLayout),
		ConfirmURL:  confirmURL,
	}
	var b strings.Builder
	if err := tripCreatedTmpl.Execute(&b, data); err != nil {
		return "", "", fmt.Errorf("mailer: render trip created mail: %w", err)
	}
	subject = fmt.Sprintf("Confirm your trip to %s on %s", trip.Destination, trip.StartsAt.Format(displayDateLayout))
	return subject, b.String(), nil
}

func participantConfirmationBody(trip domain.Trip, confirmURL string) (subject, body string, err error) {
	data := mailData{
		Destination: trip.Destination,
		StartsAt:    trip.StartsAt.Format(displayDateLayout),
		EndsAt:      trip.EndsAt.Format(displayDateLayout),
		ConfirmURL:  confirmURL,
	}
	var b strings.Builder
	if err := participantConfirmationTmpl.Execute(&b, data); err != nil {
		return "", "", fmt.Errorf("mailer: render participant confirmation mail: %w", err)
	}
	subject = fmt.Sprintf("Confirm your presence on the trip to %s on %s", trip.Destination, trip.StartsAt.Format(displayDateLayout))
	return subject, b.String(), nil
}

// confirmTripURL builds the link the owner follows to confirm the trip.
func confirmTripURL(apiBaseURL string, trip domain.Trip) string {
	return fmt.Sprintf("%s/trips/%s/confirm", strings.TrimSuffix(apiBaseURL, "/"), trip.ID)
}

// confirmParticipantURL builds the link a guest follows to confirm presence.
func confirmParticipantURL(apiBaseURL string, p domain.Participant) string {
	return fmt.Sprintf("%s/participants/%s/confirm", strings.TrimSuffix(apiBaseURL, "/"), p.ID)
}
