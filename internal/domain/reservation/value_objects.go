package reservation

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"studio-calendar/internal/domain/bizday"

	"github.com/google/uuid"
)

const (
	MinHours           = 1
	MaxHours           = 24
	MaxNameLength      = 100
	MaxNoteLength      = 1000
	MaxPhoneLength     = 30
	DefaultCurrencyKRW = "KRW"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Slot is an hour-aligned booking window of whole hours.
type Slot struct {
	start time.Time
	hours int
}

// ParseHours accepts an integral number of hours in [MinHours, MaxHours].
func ParseHours(h float64) (int, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) || h != math.Trunc(h) {
		return 0, ErrInvalidDuration
	}
	if h < MinHours || h > MaxHours {
		return 0, ErrInvalidDuration
	}
	return int(h), nil
}

func NewSlot(start time.Time, hours int, zone bizday.Zone) (Slot, error) {
	if hours < MinHours || hours > MaxHours {
		return Slot{}, ErrInvalidDuration
	}
	p := zone.Parts(start)
	if p.Minute != 0 || p.Second != 0 || start.Nanosecond() != 0 {
		return Slot{}, ErrStartNotHourAligned
	}
	return Slot{start: start.UTC(), hours: hours}, nil
}

func ReconstructSlot(start time.Time, hours int) Slot {
	return Slot{start: start.UTC(), hours: hours}
}

func (s Slot) Start() time.Time { return s.start }
func (s Slot) End() time.Time   { return s.start.Add(time.Duration(s.hours) * time.Hour) }
func (s Slot) Hours() int       { return s.hours }

type Requester struct {
	AccountID *uuid.UUID
	Name      string
	Phone     string
	Email     string
}

func (r Requester) IsAuthenticated() bool {
	return r.AccountID != nil && *r.AccountID != uuid.Nil
}

// NewRequester picks the input phone first, then the profile phone.
func NewRequester(accountID *uuid.UUID, name, inputPhone, profilePhone, email string) (Requester, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Requester{}, ErrRequesterNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Requester{}, ErrRequesterNameTooLong
	}

	phone := normalizePhone(inputPhone)
	if phone == "" {
		phone = normalizePhone(profilePhone)
	}
	if phone == "" {
		return Requester{}, ErrPhoneRequired
	}
	if len(phone) > MaxPhoneLength {
		return Requester{}, ErrInvalidPhone
	}

	email = strings.TrimSpace(email)
	if email != "" {
		if !emailRegex.MatchString(email) {
			return Requester{}, ErrInvalidEmail
		}
	}
	if accountID == nil && email == "" {
		return Requester{}, ErrEmailRequired
	}

	return Requester{AccountID: accountID, Name: name, Phone: phone, Email: email}, nil
}

func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9', r == '+' && b.Len() == 0:
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '(' || r == ')' || r == '.':
		default:
			return ""
		}
	}
	return b.String()
}

func NewNote(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNoteLength {
		return "", ErrNoteTooLong
	}
	return s, nil
}
