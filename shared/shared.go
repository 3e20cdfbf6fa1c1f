package shared

import (
	"deportur/shared/constant"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt64(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q: %w", value, err)
	}

	return id, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins the non-empty parts with ':'.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// InclusiveDays counts calendar days between start and end, both included. Only the dates
// in each value's own location matter, so clock changes never add or drop a day.
func InclusiveDays(start, end time.Time) int {
	diff := calendarDate(end).Sub(calendarDate(start))
	if diff < 0 {
		return 0
	}

	return int(diff.Hours())/constant.HoursInDay + 1
}

func calendarDate(value time.Time) time.Time {
	year, month, day := value.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// TrimPtr trims value and returns nil when nothing is left.
func TrimPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == constant.Empty {
		return nil
	}

	return &trimmed
}
