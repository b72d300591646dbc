package v1

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseID returns a positive int64 from a path or query parameter.
func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// parseDate parses an ISO-8601 date (2006-01-02).
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

// parseOptionalDate returns nil for an empty value.
func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseWeeks returns the number of weeks to render, clamped to 1..26.
func parseWeeks(value string, def int) int {
	if strings.TrimSpace(value) == "" {
		return def
	}
	weeks, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || weeks < 1 {
		return def
	}
	if weeks > 26 {
		return 26
	}
	return weeks
}
