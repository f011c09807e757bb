package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

// TaskService implements task CRUD and the one-way completion transition.
type TaskService struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, logger: logger}
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

// ListByUser returns the user's tasks. Zero rows is reported as not-found;
// an empty array is the contract of the bulk List only.
func (s *TaskService) ListByUser(ctx context.Context, userID uint) ([]domain.Task, error) {
	rows, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return rows, nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (*domain.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

// Create verifies the owning user exists before inserting. The check and the
// insert are two separate statements; a user deleted in between is caught by
// the storage-level foreign key instead.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.UserID == 0 || input.Description == "" || input.Status == "" {
		return nil, domain.ValidationError("All fields (user_id, tasks, status) are required")
	}

	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("checking user %d: %w", input.UserID, err)
	}

	task := &domain.Task{
		UserID:      input.UserID,
		Description: input.Description,
		Status:      domain.TaskStatus(input.Status),
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("task_id", created.ID).Uint("user_id", created.UserID).Msg("task created")
	return created, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("task_id", id).Msg("task deleted")
	return nil
}

// Complete marks the task completed without checking its current status, so
// completing twice succeeds both times.
func (s *TaskService) Complete(ctx context.Context, id uint) error {
	if err := s.tasks.Complete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("task_id", id).Msg("task completed")
	return nil
}
