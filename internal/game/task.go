package game

import (
	"strconv"
	"strings"
)

// Priority is a task's reward tier.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority normalizes user input, defaulting to medium.
func ParsePriority(input string) Priority {
	p := Priority(strings.TrimSpace(strings.ToLower(input)))
	if p.IsValid() {
		return p
	}
	return PriorityMedium
}

// XPForPriority returns the XP value frozen onto a task at creation time.
func XPForPriority(p Priority) int {
	switch p {
	case PriorityLow:
		return 10
	case PriorityHigh:
		return 50
	case PriorityMedium:
		return 25
	default:
		return 25
	}
}

// Task is one entry of the ordered task list. Completed tasks are removed
// from the list rather than archived.
type Task struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
	XP        int      `json:"xp"`
}

// NewTask validates and builds a task. The id derives from creation time,
// matching the persisted record format.
func NewTask(text string, priority Priority) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyTaskText
	}
	if !priority.IsValid() {
		priority = PriorityMedium
	}
	return Task{
		ID:       strconv.FormatInt(TimeNow().UnixNano(), 10),
		Text:     text,
		Priority: priority,
		XP:       XPForPriority(priority),
	}, nil
}
