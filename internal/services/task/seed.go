package task

import (
	"time"

	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/types"
)

// DefaultTasks returns the starter board used when the slot holds nothing
func DefaultTasks(now time.Time, newID func() types.TaskID) []models.Task {
	created := models.FormatTimestamp(now)
	return []models.Task{
		{
			ID:          newID(),
			Title:       "Plan sprint goals",
			Description: "Outline key deliverables with the product team.",
			Status:      models.StatusBacklog,
			Priority:    models.PriorityMedium,
			CreatedAt:   created,
			Tags:        []string{"product", "sprint"},
		},
		{
			ID:          newID(),
			Title:       "Set up analytics dashboard",
			Description: "Integrate new funnel report into the dashboard.",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			CreatedAt:   created,
			Tags:        []string{"analytics"},
		},
		{
			ID:          newID(),
			Title:       "QA regression suite",
			Description: "Run regression tests before release freeze.",
			Status:      models.StatusReview,
			Priority:    models.PriorityMedium,
			CreatedAt:   created,
			DueDate:     models.FormatTimestamp(now.Add(48 * time.Hour)),
			Tags:        []string{"qa", "release"},
		},
		{
			ID:          newID(),
			Title:       "Publish changelog",
			Description: "Write and publish changelog blog post.",
			Status:      models.StatusDone,
			Priority:    models.PriorityLow,
			CreatedAt:   created,
			Tags:        []string{"marketing"},
		},
	}
}
