package models

// Priority represents a task priority level
type Priority string

// Priority levels, most severe first
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is assigned when a task is created without one
const DefaultPriority = PriorityMedium

// Priorities returns every priority, most severe first
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

// Rank orders priorities by severity: high sorts before medium before low.
// Unknown values rank -1.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return -1
	}
}

// Label is the human-readable card badge for the priority
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High Priority"
	case PriorityMedium:
		return "Medium Priority"
	case PriorityLow:
		return "Low Priority"
	default:
		return string(p)
	}
}

// Color returns the badge color for the priority
func (p Priority) Color() string {
	switch p {
	case PriorityHigh:
		return "#EF4444"
	case PriorityMedium:
		return "#EAB308"
	default:
		return "#22C55E"
	}
}
