package usecase

import (
	"context"

	"smart-task-tracker/internal/priority"
	"smart-task-tracker/internal/task"
	repo "smart-task-tracker/internal/task/repository"
)

// Create classifies the input and stores the task with its classification.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	in, err := uc.classifier.Normalize(ctx, priority.RawInput{
		Text:        input.Text,
		Keywords:    input.Keywords,
		EffortHours: input.EffortHours,
		IsUrgent:    input.IsUrgent,
	})
	if err != nil {
		return task.CreateOutput{}, err
	}

	result := uc.classifier.Classify(ctx, in)

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Text:           in.Text,
		Keywords:       in.Keywords,
		EffortHours:    in.EffortHours,
		IsUrgent:       in.IsUrgent,
		Classification: result,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "task created: id=%s priority=%s source=%s", t.ID, result.Priority, result.Source)
	return task.CreateOutput{Task: t}, nil
}
