package usecase

import (
	"context"

	"smart-task-tracker/internal/priority"
	"smart-task-tracker/internal/task"
	repo "smart-task-tracker/internal/task/repository"
)

// List returns the tasks selected by the filter, most urgent first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	all, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	counts := make(map[priority.Priority]int, len(priority.Priorities))
	for _, p := range priority.Priorities {
		counts[p] = 0
	}
	for _, t := range all {
		counts[t.Classification.Priority]++
	}

	filtered, err := uc.repo.ListTasks(ctx, uc.listOptions(input.Filter))
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	sortByUrgency(filtered)

	return task.ListOutput{
		Tasks:  filtered,
		Total:  len(filtered),
		Counts: counts,
	}, nil
}

// listOptions maps a filter to store options. Priority filters only show
// open tasks, the same as the UI's priority tabs.
func (uc *implUseCase) listOptions(f task.Filter) repo.ListTasksOptions {
	completed := true
	open := false

	switch f {
	case task.FilterCompleted:
		return repo.ListTasksOptions{Completed: &completed}
	case task.FilterActive:
		return repo.ListTasksOptions{Completed: &open}
	case task.FilterCritical, task.FilterHigh, task.FilterMedium, task.FilterLow:
		return repo.ListTasksOptions{Completed: &open, Priority: priority.Priority(f)}
	default:
		return repo.ListTasksOptions{}
	}
}
