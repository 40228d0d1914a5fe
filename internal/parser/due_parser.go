package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/myday/internal/models"
)

var (
	dateRegex     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoDateRegex  = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	relativeRegex = regexp.MustCompile(`^(?:in\s+)?(\d+)\s*(m|min|mins|minute|minutes|h|hour|hours|d|day|days|w|week|weeks)$`)
)

// ParseWhen parses a due date or reminder time relative to now.
// Supported formats:
// - today, tomorrow (end of that day)
// - dd/mm/yyyy or yyyy-mm-dd (end of that day)
// - X minutes, X hours (e.g., "90 minutes", "2h", "in 3 hours")
// - X days, X weeks (end of the target day, e.g., "3 days", "1w")
func ParseWhen(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required: %w", models.ErrValidation)
	}

	switch input {
	case "today":
		return endOfDay(now, 0), nil
	case "tomorrow":
		return endOfDay(now, 1), nil
	}

	if t, err := parseDateFormat(input, now.Location()); err == nil {
		return t, nil
	} else if dateRegex.MatchString(input) || isoDateRegex.MatchString(input) {
		return time.Time{}, err
	}

	if t, err := parseRelativeTime(input, now); err == nil {
		return t, nil
	} else if relativeRegex.MatchString(input) {
		return time.Time{}, err
	}

	return time.Time{}, fmt.Errorf("invalid date %q, use: today, tomorrow, dd/mm/yyyy, X hours, X days or X weeks: %w",
		input, models.ErrValidation)
}

// endOfDay returns 23:59:59 of the day offset days after now
func endOfDay(now time.Time, offset int) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, offset).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// parseDateFormat parses dd/mm/yyyy and yyyy-mm-dd
func parseDateFormat(input string, loc *time.Location) (time.Time, error) {
	var day, month, year int
	if m := dateRegex.FindStringSubmatch(input); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else if m := isoDateRegex.FindStringSubmatch(input); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else {
		return time.Time{}, fmt.Errorf("invalid date format: %w", models.ErrValidation)
	}

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12: %w", models.ErrValidation)
	}
	if year < 2000 || year > 2100 {
		return time.Time{}, fmt.Errorf("year must be between 2000 and 2100: %w", models.ErrValidation)
	}

	due := time.Date(year, time.Month(month), day, 23, 59, 59, 0, loc)

	// Check if date is valid (handles leap years, etc.)
	if due.Day() != day || due.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", input, models.ErrValidation)
	}
	return due, nil
}

// parseRelativeTime parses relative formats like "3 days" or "2h"
func parseRelativeTime(input string, now time.Time) (time.Time, error) {
	m := relativeRegex.FindStringSubmatch(input)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid relative time format: %w", models.ErrValidation)
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil || amount < 1 {
		return time.Time{}, fmt.Errorf("amount must be a positive number: %w", models.ErrValidation)
	}

	switch m[2] {
	case "m", "min", "mins", "minute", "minutes":
		if amount > 525600 { // Max 1 year in minutes
			return time.Time{}, fmt.Errorf("minutes must be between 1 and 525600: %w", models.ErrValidation)
		}
		return now.Add(time.Duration(amount) * time.Minute), nil
	case "h", "hour", "hours":
		if amount > 8760 { // Max 1 year in hours
			return time.Time{}, fmt.Errorf("hours must be between 1 and 8760: %w", models.ErrValidation)
		}
		return now.Add(time.Duration(amount) * time.Hour), nil
	case "d", "day", "days":
		if amount > 365 {
			return time.Time{}, fmt.Errorf("days must be between 1 and 365: %w", models.ErrValidation)
		}
		return endOfDay(now, amount), nil
	default:
		if amount > 52 {
			return time.Time{}, fmt.Errorf("weeks must be between 1 and 52: %w", models.ErrValidation)
		}
		return endOfDay(now, amount*7), nil
	}
}

// FormatDueDate formats a due date for display
func FormatDueDate(due *time.Time, now time.Time) string {
	if due == nil {
		return ""
	}

	// Calculate calendar days difference
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	local := due.In(now.Location())
	dueDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, now.Location())
	daysDiff := int(dueDay.Sub(today).Hours() / 24)

	// Always show the actual date to avoid confusion
	dateStr := local.Format("02/01/2006")

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("⚠️ OVERDUE (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("🔥 Due today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("📅 Due tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("📅 Due %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("📅 Due %s", dateStr)
	}
}

// FormatReminder formats a reminder time for display
func FormatReminder(at *time.Time, now time.Time) string {
	if at == nil {
		return ""
	}
	local := at.In(now.Location())
	if local.Before(now) {
		return "⏰ " + local.Format("15:04 02/01") + " (past)"
	}
	if local.Year() == now.Year() && local.YearDay() == now.YearDay() {
		return "⏰ today " + local.Format("15:04")
	}
	return "⏰ " + local.Format("15:04 02/01/2006")
}
