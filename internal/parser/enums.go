package parser

import (
	"fmt"
	"strings"

	"github.com/balkashynov/myday/internal/models"
)

// NormalizePriority accepts low/medium/med/high or 1/2/3
func NormalizePriority(input string) (models.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "low":
		return models.PriorityLow, nil
	case "2", "medium", "med":
		return models.PriorityMedium, nil
	case "3", "high":
		return models.PriorityHigh, nil
	}
	return "", fmt.Errorf("invalid priority %q, use low, medium or high: %w", input, models.ErrValidation)
}

// NormalizeStatus accepts todo, in-progress (or doing, wip) and done
func NormalizeStatus(input string) (models.Status, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "todo", "to-do":
		return models.StatusTodo, nil
	case "in-progress", "inprogress", "in_progress", "progress", "doing", "wip":
		return models.StatusInProgress, nil
	case "done":
		return models.StatusDone, nil
	}
	return "", fmt.Errorf("invalid status %q, use todo, in-progress or done: %w", input, models.ErrValidation)
}

// NormalizeRepeat accepts none and daily
func NormalizeRepeat(input string) (models.Repeat, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "none", "no", "off":
		return models.RepeatNone, nil
	case "daily", "day", "everyday":
		return models.RepeatDaily, nil
	}
	return "", fmt.Errorf("invalid repeat %q, use none or daily: %w", input, models.ErrValidation)
}

// NormalizeView accepts a view name or its sidebar number (1-5)
func NormalizeView(input string) (models.View, error) {
	in := strings.ToLower(strings.TrimSpace(input))
	for i, v := range models.Views {
		if in == string(v) || in == fmt.Sprint(i+1) {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid view %q, use today, important, planned, assigned or all: %w", input, models.ErrValidation)
}
