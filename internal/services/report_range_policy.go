package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/helenmarch/vita/internal/models"
)

var (
	ErrDateKeyInvalid     = errors.New("invalid date key")
	ErrReportRangeInvalid = errors.New("invalid report range")
)

const dateKeyLayout = "2006-01-02"

// DateKey formats a moment as the zero-padded YYYY-MM-DD key used for
// record identity and range comparison.
func DateKey(value time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return value.In(location).Format(dateKeyLayout)
}

// ParseDateKey validates a raw date key and returns its canonical form.
func ParseDateKey(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	parsed, err := time.Parse(dateKeyLayout, trimmed)
	if err != nil {
		return "", ErrDateKeyInvalid
	}
	return parsed.Format(dateKeyLayout), nil
}

// ParseReportRange validates optional from/to keys. Empty sides mean an
// open end; a to earlier than from is rejected.
func ParseReportRange(rawFrom string, rawTo string) (string, string, error) {
	fromKey := ""
	if strings.TrimSpace(rawFrom) != "" {
		parsed, err := ParseDateKey(rawFrom)
		if err != nil {
			return "", "", ErrDateKeyInvalid
		}
		fromKey = parsed
	}

	toKey := ""
	if strings.TrimSpace(rawTo) != "" {
		parsed, err := ParseDateKey(rawTo)
		if err != nil {
			return "", "", ErrDateKeyInvalid
		}
		toKey = parsed
	}

	if fromKey != "" && toKey != "" && toKey < fromKey {
		return "", "", ErrReportRangeInvalid
	}

	return fromKey, toKey, nil
}

// FilterRecordsInRange keeps records whose date key lies in the inclusive
// [fromKey, toKey] range and returns them ascending by date key. Zero-padded
// keys make lexicographic comparison equivalent to date comparison. An empty
// result is a normal state, not an error.
func FilterRecordsInRange(records []models.HealthRecord, fromKey string, toKey string) []models.HealthRecord {
	filtered := make([]models.HealthRecord, 0, len(records))
	for _, record := range records {
		if fromKey != "" && record.DateKey < fromKey {
			continue
		}
		if toKey != "" && record.DateKey > toKey {
			continue
		}
		filtered = append(filtered, record)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].DateKey < filtered[j].DateKey
	})
	return filtered
}
