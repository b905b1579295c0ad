package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
)

// Clock supplies the current time for the "today" keyword and the
// future-date check.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Today returns the clock's current calendar date at midnight UTC, which is
// the same representation time.Parse produces for date-only layouts.
func Today(clock Clock) time.Time {
	return DateOnly(clock.Now())
}

// DateOnly drops the time-of-day and location from t
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IDReason explains why an id input was rejected
type IDReason int

const (
	IDValid IDReason = iota
	IDEmpty
	IDNotInteger
	IDNotPositive
)

// Message returns the re-prompt text for the reason
func (r IDReason) Message() string {
	switch r {
	case IDValid:
		return ""
	case IDEmpty:
		return "Enter a valid ID"
	case IDNotInteger:
		return "Enter a non-floating point number"
	case IDNotPositive:
		return "ID must be greater than 0"
	default:
		return "Invalid ID"
	}
}

var (
	ErrEmpty           = errors.New("value cannot be empty")
	ErrInvalidQuantity = errors.New("enter a valid number, e.g. 3.5")
	ErrInvalidDate     = errors.New("use YYYY-MM-DD, DD-MM-YYYY or 'today', and no future dates")
	ErrInvalidColumn   = errors.New("enter a valid column name (" + models.ColumnNames() + ")")
)

// ValidateString reports whether s has at least one non-whitespace character
func ValidateString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ParseQuantity parses a locale-independent decimal number. Hexadecimal
// notation and non-finite values are rejected.
func ParseQuantity(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseDate accepts "today" (any case), YYYY-MM-DD or DD-MM-YYYY. Dates after
// the clock's current date are rejected. The returned date is at midnight UTC.
func ParseDate(s string, clock Clock) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false
	}

	today := Today(clock)
	if strings.ToLower(trimmed) == constants.TodayKeyword {
		return today, true
	}

	for _, layout := range []string{constants.DateFormat, constants.DayFirstDateFormat} {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		if parsed.After(today) {
			return time.Time{}, false
		}
		return parsed, true
	}

	return time.Time{}, false
}

// ParseColumn maps a case-insensitive column identifier to its Column
func ParseColumn(s string) (models.Column, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return models.ColumnName, true
	case "measurement":
		return models.ColumnMeasurement, true
	case "quantity":
		return models.ColumnQuantity, true
	case "date":
		return models.ColumnDate, true
	default:
		return 0, false
	}
}

// ParseID parses a strictly positive integer id
func ParseID(s string) (int64, IDReason) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, IDEmpty
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, IDNotInteger
	}
	if id <= 0 {
		return 0, IDNotPositive
	}
	return id, IDValid
}

// ParseMenuChoice accepts a single digit naming one of the menu actions
func ParseMenuChoice(s string) (models.MenuAction, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	if c < '0' || c > byte('0'+len(models.MenuActions)-1) {
		return 0, false
	}
	return models.MenuAction(c - '0'), true
}

// Error-returning forms of the checks, suitable for form field validation.

func RequireString(s string) error {
	if !ValidateString(s) {
		return ErrEmpty
	}
	return nil
}

func RequireQuantity(s string) error {
	if _, ok := ParseQuantity(s); !ok {
		return ErrInvalidQuantity
	}
	return nil
}

func RequireDate(clock Clock) func(string) error {
	return func(s string) error {
		if _, ok := ParseDate(s, clock); !ok {
			return ErrInvalidDate
		}
		return nil
	}
}

func RequireColumn(s string) error {
	if _, ok := ParseColumn(s); !ok {
		return ErrInvalidColumn
	}
	return nil
}

func RequireID(s string) error {
	if _, reason := ParseID(s); reason != IDValid {
		return errors.New(reason.Message())
	}
	return nil
}
