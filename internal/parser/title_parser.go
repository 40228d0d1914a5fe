package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/balkashynov/myday/internal/models"
)

var (
	priorityRegex = regexp.MustCompile(`(?:^|\s)\+([a-zA-Z0-9]+)`)
	dueRegex      = regexp.MustCompile(`(?:^|\s)due:(\S+)`)
	remindRegex   = regexp.MustCompile(`(?:^|\s)remind:(\S+)`)
	repeatRegex   = regexp.MustCompile(`(?:^|\s)repeat:(\S+)`)
)

// ParsedTask represents a task parsed from the quick-add syntax
type ParsedTask struct {
	Title    string
	Priority models.Priority // empty when not given
	DueDate  *time.Time
	Reminder *time.Time
	Repeat   *models.Repeat
	Errors   []string
}

// ParseTitle extracts metadata from a task title.
// Syntax: "Buy milk +high due:tomorrow remind:2h repeat:daily"
func ParseTitle(input string, now time.Time) ParsedTask {
	result := ParsedTask{Errors: []string{}}

	// Extract priority (+high, +3, +med)
	if m := priorityRegex.FindStringSubmatch(input); m != nil {
		if p, err := NormalizePriority(m[1]); err == nil {
			result.Priority = p
		} else {
			result.Errors = append(result.Errors, "Invalid priority '"+m[1]+"'. Use: low, medium, high, 1, 2, or 3")
		}
		input = priorityRegex.ReplaceAllString(input, " ")
	}

	// Extract due date (due:tomorrow, due:15/12/2026, due:3days)
	if m := dueRegex.FindStringSubmatch(input); m != nil {
		if due, err := ParseWhen(m[1], now); err == nil {
			result.DueDate = &due
		} else {
			result.Errors = append(result.Errors, "Invalid due date '"+m[1]+"': "+err.Error())
		}
		input = dueRegex.ReplaceAllString(input, " ")
	}

	// Extract reminder (remind:2h, remind:tomorrow)
	if m := remindRegex.FindStringSubmatch(input); m != nil {
		if at, err := ParseWhen(m[1], now); err == nil {
			result.Reminder = &at
		} else {
			result.Errors = append(result.Errors, "Invalid reminder '"+m[1]+"': "+err.Error())
		}
		input = remindRegex.ReplaceAllString(input, " ")
	}

	// Extract repeat rule (repeat:daily)
	if m := repeatRegex.FindStringSubmatch(input); m != nil {
		if r, err := NormalizeRepeat(m[1]); err == nil {
			result.Repeat = &r
		} else {
			result.Errors = append(result.Errors, "Invalid repeat '"+m[1]+"'. Use: none or daily")
		}
		input = repeatRegex.ReplaceAllString(input, " ")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.Join(strings.Fields(input), " ")

	return result
}
