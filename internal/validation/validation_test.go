package validation

import (
	"testing"
	"time"

	"github.com/julianstephens/habitlog/internal/models"
)

var fixedNow = FixedClock{T: time.Date(2024, 3, 10, 18, 45, 0, 0, time.Local)}

func TestValidateString(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Running", true},
		{" a ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}

	for _, tt := range tests {
		if got := ValidateString(tt.input); got != tt.want {
			t.Errorf("ValidateString(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"3.5", 3.5, true},
		{"-2", -2, true},
		{"+4.25", 4.25, true},
		{"1e3", 1000, true},
		{"0", 0, true},
		{" 7.5 ", 7.5, true},
		{"abc", 0, false},
		{"", 0, false},
		{"3,5", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1e400", 0, false},
		{"0x1p-2", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseQuantity(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseQuantity(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseQuantity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	jan15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"today keyword", "today", today, true},
		{"today uppercase", "TODAY", today, true},
		{"today padded", "  Today ", today, true},
		{"year first", "2024-01-15", jan15, true},
		{"day first", "15-01-2024", jan15, true},
		{"exactly today", "2024-03-10", today, true},
		{"one day in future", "2024-03-11", time.Time{}, false},
		{"future day first", "11-03-2024", time.Time{}, false},
		{"invalid month", "2024-13-01", time.Time{}, false},
		{"invalid day", "2024-02-30", time.Time{}, false},
		{"single digit month", "2024-1-15", time.Time{}, false},
		{"slashes", "2024/01/15", time.Time{}, false},
		{"trailing garbage", "2024-01-15x", time.Time{}, false},
		{"with time", "2024-01-15 10:00", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"whitespace", "   ", time.Time{}, false},
		{"word", "yesterday", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input, fixedNow)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate_ReadsClockAtCallTime(t *testing.T) {
	clock := &steppingClock{t: time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)}

	first, ok := ParseDate("today", clock)
	if !ok {
		t.Fatal("expected today to be accepted")
	}
	clock.t = clock.t.Add(2 * time.Hour)
	second, ok := ParseDate("today", clock)
	if !ok {
		t.Fatal("expected today to be accepted")
	}

	if !second.After(first) {
		t.Errorf("expected second call to resolve to a later date, got %v then %v", first, second)
	}
}

type steppingClock struct{ t time.Time }

func (c *steppingClock) Now() time.Time { return c.t }

func TestParseColumn(t *testing.T) {
	tests := []struct {
		input string
		want  models.Column
		ok    bool
	}{
		{"name", models.ColumnName, true},
		{"Measurement", models.ColumnMeasurement, true},
		{" QUANTITY ", models.ColumnQuantity, true},
		{"date", models.ColumnDate, true},
		{"id_habit", 0, false},
		{"habit_date", 0, false},
		{"name; DROP TABLE habit", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseColumn(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColumn(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input  string
		want   int64
		reason IDReason
	}{
		{"5", 5, IDValid},
		{" 42 ", 42, IDValid},
		{"0", 0, IDNotPositive},
		{"-1", 0, IDNotPositive},
		{"5.0", 0, IDNotInteger},
		{"abc", 0, IDNotInteger},
		{"", 0, IDEmpty},
		{"  ", 0, IDEmpty},
		{"99999999999999999999", 0, IDNotInteger},
	}

	for _, tt := range tests {
		got, reason := ParseID(tt.input)
		if reason != tt.reason || got != tt.want {
			t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", tt.input, got, reason, tt.want, tt.reason)
		}
	}
}

func TestIDReasonMessagesAreDistinct(t *testing.T) {
	seen := map[string]IDReason{}
	for _, r := range []IDReason{IDEmpty, IDNotInteger, IDNotPositive} {
		msg := r.Message()
		if msg == "" {
			t.Errorf("reason %d has empty message", r)
		}
		if prev, ok := seen[msg]; ok {
			t.Errorf("reasons %d and %d share message %q", prev, r, msg)
		}
		seen[msg] = r
	}
}

func TestParseMenuChoice(t *testing.T) {
	for i, want := range models.MenuActions {
		input := string(rune('0' + i))
		got, ok := ParseMenuChoice(input)
		if !ok || got != want {
			t.Errorf("ParseMenuChoice(%q) = (%v, %v), want (%v, true)", input, got, ok, want)
		}
	}

	for _, input := range []string{"5", "9", "01", "", " ", " 1", "a", "-1"} {
		if _, ok := ParseMenuChoice(input); ok {
			t.Errorf("ParseMenuChoice(%q) accepted, want rejected", input)
		}
	}
}

func TestRequireAdapters(t *testing.T) {
	if err := RequireString(""); err != ErrEmpty {
		t.Errorf("RequireString(\"\") = %v, want ErrEmpty", err)
	}
	if err := RequireQuantity("x"); err != ErrInvalidQuantity {
		t.Errorf("RequireQuantity(\"x\") = %v, want ErrInvalidQuantity", err)
	}
	if err := RequireDate(fixedNow)("2099-01-01"); err != ErrInvalidDate {
		t.Errorf("RequireDate(future) = %v, want ErrInvalidDate", err)
	}
	if err := RequireColumn("id"); err != ErrInvalidColumn {
		t.Errorf("RequireColumn(\"id\") = %v, want ErrInvalidColumn", err)
	}
	if err := RequireID("0"); err == nil || err.Error() != IDNotPositive.Message() {
		t.Errorf("RequireID(\"0\") = %v, want %q", err, IDNotPositive.Message())
	}

	if err := RequireString("ok"); err != nil {
		t.Errorf("RequireString(\"ok\") = %v", err)
	}
	if err := RequireQuantity("1.5"); err != nil {
		t.Errorf("RequireQuantity(\"1.5\") = %v", err)
	}
	if err := RequireDate(fixedNow)("today"); err != nil {
		t.Errorf("RequireDate(today) = %v", err)
	}
	if err := RequireColumn("date"); err != nil {
		t.Errorf("RequireColumn(\"date\") = %v", err)
	}
	if err := RequireID("3"); err != nil {
		t.Errorf("RequireID(\"3\") = %v", err)
	}
}
