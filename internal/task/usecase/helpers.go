package usecase

import (
	"sort"

	"smart-task-tracker/internal/model"
	"smart-task-tracker/internal/task"
)

// coalesce returns the new value when provided, otherwise the existing one.
func (uc *implUseCase) coalesce(newVal *string, existing string) string {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func (uc *implUseCase) coalesceBool(newVal *bool, existing bool) bool {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func (uc *implUseCase) coalesceAny(newVal any, existing any) any {
	if newVal != nil {
		return newVal
	}
	return existing
}

func contentChanged(input task.UpdateInput) bool {
	return input.Text != nil || input.Keywords != nil || input.EffortHours != nil || input.IsUrgent != nil
}

// sortByUrgency orders critical→low, newest first within a priority.
func sortByUrgency(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := tasks[i].Classification.Priority.Rank(), tasks[j].Classification.Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
}
