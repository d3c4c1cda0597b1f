package model

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	StatusOpen       TaskStatus = "OPEN"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusOnHold     TaskStatus = "ON_HOLD"
	StatusBlocked    TaskStatus = "BLOCKED"
	StatusPending    TaskStatus = "PENDING"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusCancelled  TaskStatus = "CANCELLED"
	StatusArchived   TaskStatus = "ARCHIVED"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusOnHold, StatusBlocked,
		StatusPending, StatusCompleted, StatusCancelled, StatusArchived:
		return true
	}
	return false
}

// ParseTaskStatus normalizes input; empty => OPEN.
// Returns (value, true) if valid; otherwise (OPEN, false).
func ParseTaskStatus(s string) (TaskStatus, bool) {
	normalized := TaskStatus(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_")))
	if normalized == "" {
		return StatusOpen, true
	}
	if normalized.Valid() {
		return normalized, true
	}
	return StatusOpen, false
}

// Task mirrors the platform API's task resource. CustomerID is nil for
// unassigned tasks; reminder, due date and completion are optional instants.
type Task struct {
	ID          string     `json:"id"`
	CustomerID  *string    `json:"customerId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Reminder    *time.Time `json:"reminder,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type TaskRequest struct {
	CustomerID  *string    `json:"customerId" mapstructure:"customerId"`
	Title       string     `json:"title" mapstructure:"title"`
	Description string     `json:"description,omitempty" mapstructure:"description"`
	Status      TaskStatus `json:"status" mapstructure:"status"`
	Reminder    *time.Time `json:"reminder,omitempty" mapstructure:"reminder"`
	DueDate     *time.Time `json:"dueDate,omitempty" mapstructure:"dueDate"`
}

type TaskUpdateRequest struct {
	ID          string     `json:"id" mapstructure:"id"`
	CustomerID  *string    `json:"customerId" mapstructure:"customerId"`
	Title       string     `json:"title" mapstructure:"title"`
	Description string     `json:"description,omitempty" mapstructure:"description"`
	Status      TaskStatus `json:"status" mapstructure:"status"`
	Reminder    *time.Time `json:"reminder,omitempty" mapstructure:"reminder"`
	DueDate     *time.Time `json:"dueDate,omitempty" mapstructure:"dueDate"`
	CompletedAt *time.Time `json:"completedAt,omitempty" mapstructure:"completedAt"`
}
