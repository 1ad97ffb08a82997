package domain

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Minimum lengths for user-supplied text fields.
const (
	MinDestinationLen = 4
	MinTitleLen       = 4
)

// ValidateDestination checks that a trip destination is at least
// MinDestinationLen characters long after trimming whitespace.
func ValidateDestination(destination string) error {
	if utf8.RuneCountInString(strings.TrimSpace(destination)) < MinDestinationLen {
		return fmt.Errorf("%w: destination must be at least %d characters", ErrValidation, MinDestinationLen)
	}
	return nil
}

// ValidateTitle checks that an activity title is at least MinTitleLen
// characters long after trimming whitespace.
func ValidateTitle(title string) error {
	if utf8.RuneCountInString(strings.TrimSpace(title)) < MinTitleLen {
		return fmt.Errorf("%w: title must be at least %d characters", ErrValidation, MinTitleLen)
	}
	return nil
}

// ValidateDateRange checks that endsAt does not precede startsAt.
// Equal timestamps are valid — a single-day trip.
func ValidateDateRange(startsAt, endsAt time.Time) error {
	if endsAt.Before(startsAt) {
		return fmt.Errorf("%w: ends_at must not be before starts_at", ErrValidation)
	}
	return nil
}

// ValidateEmail checks that an address parses as a bare RFC 5322 address.
// Display names ("Ana <ana@example.com>") are rejected: participants are
// stored as plain addresses.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	return nil
}

// ValidateURL checks that a link target is an absolute http or https URL with
// a host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: invalid url", ErrValidation)
	}
	return nil
}
