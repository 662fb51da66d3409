package models

import "time"

const (
	TaskTypeSimple = "simple"
	TaskTypePhone  = "phone"
)

const (
	StatusAssigned  = "assigned"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

type Task struct {
	ID          int64     `json:"id" db:"id"`
	Type        string    `json:"type" db:"type"`
	AvitoURL    string    `json:"avito_url" db:"avito_url"`
	MessageText string    `json:"message_text" db:"message_text"`
	Price       int64     `json:"price" db:"price"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Assignment struct {
	ID          int64      `json:"id" db:"id"`
	TaskID      int64      `json:"task_id" db:"task_id"`
	UserID      int64      `json:"user_id" db:"user_id"`
	Status      string     `json:"status" db:"status"`
	Deadline    time.Time  `json:"deadline" db:"deadline"`
	PhoneNumber *string    `json:"phone_number" db:"phone_number"`
	AssignedAt  time.Time  `json:"assigned_at" db:"assigned_at"`
	SubmittedAt *time.Time `json:"submitted_at" db:"submitted_at"`

	Task *Task `json:"task,omitempty" db:"-"`
}

type Screenshot struct {
	ID           int64     `json:"id" db:"id"`
	AssignmentID int64     `json:"assignment_id" db:"assignment_id"`
	FilePath     string    `json:"file_path" db:"file_path"`
	UploadedAt   time.Time `json:"uploaded_at" db:"uploaded_at"`
}

func ValidTaskType(taskType string) bool {
	return taskType == TaskTypeSimple || taskType == TaskTypePhone
}
