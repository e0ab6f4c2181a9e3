// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/campuscompass/compass/internal/models"
)

// ErrNotFound is returned when a record, or a participant within a record,
// does not exist. Callers branch on it with errors.Is.
var ErrNotFound = errors.New("record not found")

// Store defines the persistence operations used by the service layer.
// This abstraction allows swapping storage backends without changing
// handlers or the ledger core.
type Store interface {
	// Users

	// CreateUser persists a new user. The user must already carry an ID.
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByID retrieves a user by ID. Returns nil, nil when absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// GetUserByUsername retrieves a user by username. Returns nil, nil when absent.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// ListUsers returns every registered user, ordered by username.
	ListUsers(ctx context.Context) ([]models.User, error)
	// GetUsersByIDs returns the users matching ids, keyed by ID.
	// Missing ids are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// Bill splits

	// CreateSplit appends a new split record and assigns a unique ID.
	// The record is immutable afterwards except for participant paid flags.
	CreateSplit(ctx context.Context, split *models.BillSplit) error
	// GetSplit retrieves a split by ID; ErrNotFound when absent.
	GetSplit(ctx context.Context, id string) (*models.BillSplit, error)
	// ListSplitsByParticipant returns every split whose participant set
	// contains uid, newest first.
	ListSplitsByParticipant(ctx context.Context, uid string) ([]models.BillSplit, error)
	// SettleParticipant marks one participant's share as paid. It updates
	// only the targeted participant row, never the whole list, so two
	// concurrent settlements on the same split cannot lose each other.
	// Idempotent; ErrNotFound when the split or participant does not exist.
	SettleParticipant(ctx context.Context, splitID, uid string) error
	// SubscribeSplits returns a live stream of the full set of splits
	// visible to uid. The first element is the current set; a new snapshot
	// follows every change that touches one of the user's splits. Each
	// snapshot reflects a single committed state. The channel is closed
	// when ctx is cancelled, which also releases the listener.
	SubscribeSplits(ctx context.Context, uid string) (<-chan []models.BillSplit, error)

	// Personal expenses

	CreateExpense(ctx context.Context, expense *models.Expense) error
	// ListExpenses returns the user's expenses within [from, to]
	// (YYYY-MM-DD, empty bound means unbounded), newest first.
	ListExpenses(ctx context.Context, userID, from, to string) ([]models.Expense, error)
	// DeleteExpense removes one of the user's expenses; ErrNotFound when absent.
	DeleteExpense(ctx context.Context, userID, id string) error

	// Tasks

	CreateTask(ctx context.Context, task *models.Task) error
	GetTask(ctx context.Context, userID, id string) (*models.Task, error)
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	// UpdateTask rewrites a task owned by task.UserID; ErrNotFound when absent.
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, userID, id string) error

	// Timetable

	// SaveTimetable replaces the user's whole weekly timetable.
	SaveTimetable(ctx context.Context, userID string, timetable models.Timetable) error
	GetTimetable(ctx context.Context, userID string) (models.Timetable, error)

	// Attendance

	// MarkAttendance records or overwrites one (date, subject) mark.
	MarkAttendance(ctx context.Context, record *models.AttendanceRecord) error
	// ListAttendance returns the user's records within [from, to]
	// (YYYY-MM-DD, empty bound means unbounded), oldest first.
	ListAttendance(ctx context.Context, userID, from, to string) ([]models.AttendanceRecord, error)

	// Close releases any resources held by the store.
	Close() error
}
