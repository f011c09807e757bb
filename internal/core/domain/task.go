package domain

import (
	"errors"
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusActive    TaskStatus = "active"
	TaskStatusCompleted TaskStatus = "completed"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is a to-do item owned by a user. The JSON field "tasks" mirrors the
// persisted column name and is part of the wire contract.
type Task struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	Description string     `json:"tasks"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}
