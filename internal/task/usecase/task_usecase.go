package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/clock"
	"lifeops-backend/internal/reference"
	"lifeops-backend/internal/task/domain"
	"lifeops-backend/internal/task/repository"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
	marker   repository.SeedMarker
	clock    clock.Clock
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, marker repository.SeedMarker, clk clock.Clock) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		marker:   marker,
		clock:    clk,
	}
}

func (u *taskUsecase) Today(ctx context.Context, userID string, refresh bool) ([]domain.Task, error) {
	tasks, err := u.taskRepo.List(ctx, userID, refresh)
	if err != nil {
		return nil, err
	}
	return domain.TodayView(tasks, u.clock.Today()), nil
}

func (u *taskUsecase) All(ctx context.Context, userID string, refresh bool) ([]domain.Task, error) {
	return u.taskRepo.List(ctx, userID, refresh)
}

func (u *taskUsecase) CreateTask(ctx context.Context, userID, title, due string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Invalid("title is required")
	}
	if due == "" {
		due = u.clock.Today()
	} else if _, err := time.Parse(clock.DateLayout, due); err != nil {
		return nil, apperr.Invalid("due must be YYYY-MM-DD, got %q", due)
	}

	task := u.newTask(title, due, 0)
	if err := u.taskRepo.Create(ctx, userID, task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (u *taskUsecase) ToggleTask(ctx context.Context, userID, taskID string, completed bool) (*domain.Task, error) {
	task, err := u.taskRepo.Find(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	task.Completed = completed
	if err := u.taskRepo.Update(ctx, userID, taskID, task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (u *taskUsecase) PostponeTask(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.Find(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	task.Due = u.clock.Tomorrow()
	if err := u.taskRepo.Update(ctx, userID, taskID, task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (u *taskUsecase) DeleteTask(ctx context.Context, userID, taskID string) error {
	return u.taskRepo.Delete(ctx, userID, taskID)
}

func (u *taskUsecase) SeedDaily(ctx context.Context, userID string) (int, error) {
	today := u.clock.Today()
	last, err := u.marker.LastSeeded(ctx, userID)
	if err != nil {
		return 0, err
	}
	if last == today {
		return 0, nil
	}

	tasks, err := u.taskRepo.List(ctx, userID, true)
	if err != nil {
		return 0, err
	}
	present := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.Due == today {
			present[t.Title] = true
		}
	}

	added := 0
	for i, r := range reference.DailyTasks {
		if present[r.Label] {
			continue
		}
		if err := u.taskRepo.Create(ctx, userID, u.newTask(r.Label, today, i)); err != nil {
			return added, err
		}
		added++
	}

	if err := u.marker.MarkSeeded(ctx, userID, today); err != nil {
		log.Printf("[TaskUsecase] Failed to record seed date for user %s: %v", userID, err)
	}
	if added > 0 {
		log.Printf("[TaskUsecase] Seeded %d daily tasks for user %s", added, userID)
	}
	return added, nil
}

// newTask stamps a task; offset keeps ids distinct within one millisecond
func (u *taskUsecase) newTask(title, due string, offset int) domain.Task {
	return domain.Task{
		ID:        "task_" + strconv.FormatInt(u.clock.UnixMilli()+int64(offset), 10),
		Title:     title,
		Completed: false,
		Due:       due,
		CreatedAt: u.clock.Timestamp(),
	}
}
