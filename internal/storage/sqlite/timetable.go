package sqlite

import (
	"context"
	"fmt"

	"github.com/campuscompass/compass/internal/models"
)

// SaveTimetable replaces the user's entire weekly timetable in one transaction.
// The whole-week replace matches the editing model: the client always submits
// the full grid.
func (s *SQLiteStore) SaveTimetable(ctx context.Context, userID string, timetable models.Timetable) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM timetable_slots WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to clear timetable: %w", err)
	}

	for _, day := range models.Weekdays {
		for i, slot := range timetable[day] {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO timetable_slots (user_id, day, position, subject, time, room) VALUES (?, ?, ?, ?, ?, ?)",
				userID, day, i, slot.Subject, slot.Time, slot.Room,
			)
			if err != nil {
				return fmt.Errorf("failed to insert timetable slot: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTimetable reconstructs the user's weekly timetable. Days with no classes
// are absent from the map.
func (s *SQLiteStore) GetTimetable(ctx context.Context, userID string) (models.Timetable, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT day, subject, time, room FROM timetable_slots WHERE user_id = ? ORDER BY day, position",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get timetable: %w", err)
	}
	defer rows.Close()

	timetable := make(models.Timetable)
	for rows.Next() {
		var day string
		var slot models.ClassSlot
		if err := rows.Scan(&day, &slot.Subject, &slot.Time, &slot.Room); err != nil {
			return nil, fmt.Errorf("failed to scan timetable slot: %w", err)
		}
		timetable[day] = append(timetable[day], slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timetable slots: %w", err)
	}
	return timetable, nil
}
