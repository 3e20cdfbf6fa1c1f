package shared_test

import (
	"deportur/shared"
	"testing"
	"time"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid t string",
			input:    "t",
			expected: boolPtr(true),
		},
		{
			name:     "valid f string",
			input:    "f",
			expected: boolPtr(false),
		},
		{
			name:     "valid T string",
			input:    "T",
			expected: boolPtr(true),
		},
		{
			name:     "valid F string",
			input:    "F",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "valid FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
		{
			name:     "random string returns nil",
			input:    "random",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single item",
			total:    1,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit equals total",
			total:    10,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
		{
			name:     "large numbers",
			total:    1000000,
			limit:    7,
			expected: 142858,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestInclusiveDays(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	date := func(value string) time.Time {
		parsed, err := time.Parse(time.DateOnly, value)
		if err != nil {
			t.Fatalf("invalid date %s: %v", value, err)
		}

		return parsed
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "five day range",
			start:    date("2025-01-01"),
			end:      date("2025-01-05"),
			expected: 5,
		},
		{
			name:     "same day",
			start:    date("2025-03-10"),
			end:      date("2025-03-10"),
			expected: 1,
		},
		{
			name:     "across month boundary",
			start:    date("2025-01-30"),
			end:      date("2025-02-02"),
			expected: 4,
		},
		{
			name:     "time of day ignored",
			start:    date("2025-01-01").Add(20 * time.Hour),
			end:      date("2025-01-02").Add(time.Hour),
			expected: 2,
		},
		{
			name:     "across daylight saving fall back",
			start:    time.Date(2025, time.November, 1, 0, 0, 0, 0, newYork),
			end:      time.Date(2025, time.November, 3, 0, 0, 0, 0, newYork),
			expected: 3,
		},
		{
			name:     "across daylight saving spring forward",
			start:    time.Date(2025, time.March, 8, 0, 0, 0, 0, newYork),
			end:      time.Date(2025, time.March, 10, 0, 0, 0, 0, newYork),
			expected: 3,
		},
		{
			name:     "end before start",
			start:    date("2025-01-05"),
			end:      date("2025-01-01"),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.InclusiveDays(tt.start, tt.end); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "all parts",
			parts:    []string{"session", "abc", "customers"},
			expected: "session:abc:customers",
		},
		{
			name:     "skips empty parts",
			parts:    []string{"limiter", "", "curl/8"},
			expected: "limiter:curl/8",
		},
		{
			name:     "no parts",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	if !shared.ContainsFold("Ana López", "lóp") {
		t.Errorf("expected case-insensitive match")
	}

	if shared.ContainsFold("Ana", "maria") {
		t.Errorf("expected no match")
	}

	if !shared.ContainsFold("anything", "") {
		t.Errorf("expected empty needle to match")
	}
}

func TestTrimPtr(t *testing.T) {
	if got := shared.TrimPtr("   "); got != nil {
		t.Errorf("expected nil, got %q", *got)
	}

	got := shared.TrimPtr("  ana@example.com ")
	if got == nil || *got != "ana@example.com" {
		t.Errorf("expected trimmed value, got %v", got)
	}
}

func TestConvertStringToInt64(t *testing.T) {
	id, err := shared.ConvertStringToInt64(" 42 ")
	if err != nil || id != 42 {
		t.Errorf("expected 42, got %d (%v)", id, err)
	}

	if _, err := shared.ConvertStringToInt64("abc"); err == nil {
		t.Errorf("expected error for non numeric value")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
