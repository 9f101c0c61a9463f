package usecase

import (
	"context"
	"errors"

	"smart-task-tracker/internal/model"
	"smart-task-tracker/internal/priority"
	"smart-task-tracker/internal/task"
	repo "smart-task-tracker/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update. Content changes go through the classifier
// again; toggling completion keeps the stored classification.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	if input.Text == nil && input.Keywords == nil && input.EffortHours == nil &&
		input.IsUrgent == nil && input.Completed == nil {
		return task.UpdateOutput{}, task.ErrEmptyUpdate
	}

	existing, err := uc.get(ctx, input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	opt := repo.UpdateTaskOptions{
		ID:             existing.ID,
		Text:           existing.Text,
		Keywords:       existing.Keywords,
		EffortHours:    existing.EffortHours,
		IsUrgent:       existing.IsUrgent,
		Completed:      uc.coalesceBool(input.Completed, existing.Completed),
		Classification: existing.Classification,
	}

	if contentChanged(input) {
		in, err := uc.classifier.Normalize(ctx, priority.RawInput{
			Text:        uc.coalesce(input.Text, existing.Text),
			Keywords:    uc.coalesce(input.Keywords, existing.Keywords),
			EffortHours: uc.coalesceAny(input.EffortHours, existing.EffortHours),
			IsUrgent:    uc.coalesceAny(input.IsUrgent, existing.IsUrgent),
		})
		if err != nil {
			return task.UpdateOutput{}, err
		}

		opt.Text = in.Text
		opt.Keywords = in.Keywords
		opt.EffortHours = in.EffortHours
		opt.IsUrgent = in.IsUrgent
		opt.Classification = uc.classifier.Classify(ctx, in)
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return task.UpdateOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: t}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) get(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.get GetTask: %v", err)
		return model.Task{}, err
	}
	return t, nil
}
