package timezone_test

import (
	"deportur/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestStartOfDay(t *testing.T) {
	value := time.Date(2025, 3, 14, 18, 45, 10, 0, timezone.GetLocation())
	start := timezone.StartOfDay(value)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("expected midnight, got %s", start)
	}

	if start.Day() != 14 {
		t.Errorf("expected day 14, got %d", start.Day())
	}

	if timezone.Today().After(timezone.Now()) {
		t.Error("Today() is after Now()")
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2025-01-05")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	if parsed.Year() != 2025 || parsed.Month() != time.January || parsed.Day() != 5 {
		t.Errorf("unexpected date %s", parsed)
	}

	if _, err = timezone.ParseDate("05/01/2025"); err == nil {
		t.Error("expected an error for a non ISO date")
	}
}
