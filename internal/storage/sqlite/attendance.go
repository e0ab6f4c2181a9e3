package sqlite

import (
	"context"
	"fmt"

	"github.com/campuscompass/compass/internal/models"
)

// MarkAttendance records one (date, subject) mark, overwriting any previous
// value for the same class day.
func (s *SQLiteStore) MarkAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attendance (user_id, date, subject, present) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, date, subject) DO UPDATE SET present = excluded.present`,
		record.UserID, record.Date, record.Subject, record.Present,
	)
	if err != nil {
		return fmt.Errorf("failed to mark attendance: %w", err)
	}
	return nil
}

// ListAttendance returns a user's records within the optional date range, oldest first.
func (s *SQLiteStore) ListAttendance(ctx context.Context, userID, from, to string) ([]models.AttendanceRecord, error) {
	query := "SELECT user_id, date, subject, present FROM attendance WHERE user_id = ?"
	args := []interface{}{userID}
	if from != "" {
		query += " AND date >= ?"
		args = append(args, from)
	}
	if to != "" {
		query += " AND date <= ?"
		args = append(args, to)
	}
	query += " ORDER BY date, subject"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var r models.AttendanceRecord
		if err := rows.Scan(&r.UserID, &r.Date, &r.Subject, &r.Present); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}
