package memory

import (
	"context"
	"fmt"
	"slices"

	"smart-task-tracker/internal/model"
	"smart-task-tracker/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	if _, exists := r.tasks[id]; exists {
		return model.Task{}, fmt.Errorf("%w: %s", repository.ErrDuplicated, id)
	}

	now := r.now()
	t := model.Task{
		ID:             id,
		Text:           opt.Text,
		Keywords:       opt.Keywords,
		EffortHours:    opt.EffortHours,
		IsUrgent:       opt.IsUrgent,
		Classification: opt.Classification,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.tasks[id] = t
	r.order = append(r.order, id)

	r.l.Debugf(ctx, "task/repository/memory.CreateTask: %s", id)
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %s", repository.ErrNotFound, id)
	}
	return t, nil
}

// ListTasks returns matching tasks in insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		t := r.tasks[id]
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.Priority != "" && t.Classification.Priority != opt.Priority {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %s", repository.ErrNotFound, opt.ID)
	}

	t.Text = opt.Text
	t.Keywords = opt.Keywords
	t.EffortHours = opt.EffortHours
	t.IsUrgent = opt.IsUrgent
	t.Completed = opt.Completed
	t.Classification = opt.Classification
	t.UpdatedAt = r.now()
	r.tasks[opt.ID] = t

	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return fmt.Errorf("%w: %s", repository.ErrNotFound, id)
	}
	delete(r.tasks, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })

	r.l.Debugf(ctx, "task/repository/memory.DeleteTask: %s", id)
	return nil
}
