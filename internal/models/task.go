package models

// Task is a to-do item owned by one user.
type Task struct {
	// ID is the unique identifier for the task (UUID format).
	ID string `json:"id"`

	// UserID is the owner of the task.
	UserID string `json:"-"`

	// Text is the task description.
	Text string `json:"text"`

	// Completed marks the task as done. Toggleable.
	Completed bool `json:"completed"`

	// Reminder is an optional reminder time as a Unix timestamp.
	// Zero means no reminder is set.
	Reminder int64 `json:"reminder,omitempty"`

	// CreatedAt is the Unix timestamp when the task was created.
	CreatedAt int64 `json:"created_at"`
}
