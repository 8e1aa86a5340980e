// Package views contains the list views for the browse UI.
package views

import (
	"strings"

	"github.com/tgienger/ideavault/internal/models"
)

// errMsg carries a load or save failure into the update loop
type errMsg struct {
	err error
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return strings.Join(parts, " ")
}

func nextIdeaStatus(s models.IdeaStatus) models.IdeaStatus {
	switch s {
	case models.IdeaBrainstorming:
		return models.IdeaActive
	case models.IdeaActive:
		return models.IdeaCompleted
	case models.IdeaCompleted:
		return models.IdeaArchived
	default:
		return models.IdeaBrainstorming
	}
}

func nextProjectStatus(s models.ProjectStatus) models.ProjectStatus {
	switch s {
	case models.ProjectPlanning:
		return models.ProjectInProgress
	case models.ProjectInProgress:
		return models.ProjectCompleted
	case models.ProjectCompleted:
		return models.ProjectOnHold
	default:
		return models.ProjectPlanning
	}
}

func nextTaskStatus(s models.TaskStatus) models.TaskStatus {
	switch s {
	case models.TaskTodo:
		return models.TaskInProgress
	case models.TaskInProgress:
		return models.TaskBlocked
	case models.TaskBlocked:
		return models.TaskDone
	case models.TaskDone:
		return models.TaskCancelled
	default:
		return models.TaskTodo
	}
}
