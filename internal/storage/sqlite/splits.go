package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campuscompass/compass/internal/models"
	"github.com/campuscompass/compass/internal/storage"
)

// CreateSplit persists a new split and its participants atomically.
func (s *SQLiteStore) CreateSplit(ctx context.Context, split *models.BillSplit) error {
	if split.ID == "" {
		split.ID = uuid.New().String()
	}
	if split.CreatedAt == 0 {
		split.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO splits (id, payer_id, payer_name, total_amount, description, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		split.ID, split.PayerID, split.PayerName, split.TotalAmount, split.Description, split.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert split: %w", err)
	}

	for i, p := range split.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO split_participants (split_id, uid, username, amount_owed, has_paid, position) VALUES (?, ?, ?, ?, ?, ?)",
			split.ID, p.UID, p.Username, p.AmountOwed, p.HasPaid, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.splits.notify(split.ParticipantIDs())
	return nil
}

// GetSplit retrieves a split by ID, including its participants in order.
func (s *SQLiteStore) GetSplit(ctx context.Context, id string) (*models.BillSplit, error) {
	split := &models.BillSplit{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, payer_id, payer_name, total_amount, description, created_at FROM splits WHERE id = ?",
		id,
	).Scan(&split.ID, &split.PayerID, &split.PayerName, &split.TotalAmount, &split.Description, &split.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("split %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get split: %w", err)
	}

	participants, err := s.splitParticipants(ctx, split.ID)
	if err != nil {
		return nil, err
	}
	split.Participants = participants
	return split, nil
}

// ListSplitsByParticipant returns every split containing uid, newest first.
func (s *SQLiteStore) ListSplitsByParticipant(ctx context.Context, uid string) ([]models.BillSplit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.payer_id, s.payer_name, s.total_amount, s.description, s.created_at
		 FROM splits s
		 JOIN split_participants sp ON sp.split_id = s.id
		 WHERE sp.uid = ?
		 ORDER BY s.created_at DESC, s.id`,
		uid,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	var splits []models.BillSplit
	for rows.Next() {
		var split models.BillSplit
		if err := rows.Scan(&split.ID, &split.PayerID, &split.PayerName, &split.TotalAmount, &split.Description, &split.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	for i := range splits {
		participants, err := s.splitParticipants(ctx, splits[i].ID)
		if err != nil {
			return nil, err
		}
		splits[i].Participants = participants
	}
	return splits, nil
}

// SettleParticipant flips one participant's paid flag with a targeted
// single-row update. Rewriting the whole participant list here would let two
// concurrent settlements overwrite each other; the keyed UPDATE cannot.
func (s *SQLiteStore) SettleParticipant(ctx context.Context, splitID, uid string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE split_participants SET has_paid = 1 WHERE split_id = ? AND uid = ?",
		splitID, uid,
	)
	if err != nil {
		return fmt.Errorf("failed to settle participant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read settle result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("settle %s/%s: %w", splitID, uid, storage.ErrNotFound)
	}

	ids, err := s.participantIDs(ctx, splitID)
	if err != nil {
		return err
	}
	s.splits.notify(ids)
	return nil
}

// SubscribeSplits streams snapshots of the splits visible to uid until ctx is
// cancelled. The first snapshot is sent immediately; later ones follow each
// change affecting the user. Every snapshot is the result of a single query,
// so it reflects one committed state.
func (s *SQLiteStore) SubscribeSplits(ctx context.Context, uid string) (<-chan []models.BillSplit, error) {
	out := make(chan []models.BillSplit, 1)
	id, kick := s.splits.subscribe(uid)

	go func() {
		defer close(out)
		defer s.splits.unsubscribe(id)

		for {
			snapshot, err := s.ListSplitsByParticipant(ctx, uid)
			if err != nil {
				// context cancelled or store closed; the stream just ends
				return
			}
			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
			select {
			case <-kick:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (s *SQLiteStore) splitParticipants(ctx context.Context, splitID string) ([]models.BillParticipant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT uid, username, amount_owed, has_paid FROM split_participants WHERE split_id = ? ORDER BY position",
		splitID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.BillParticipant
	for rows.Next() {
		var p models.BillParticipant
		if err := rows.Scan(&p.UID, &p.Username, &p.AmountOwed, &p.HasPaid); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}

func (s *SQLiteStore) participantIDs(ctx context.Context, splitID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT uid FROM split_participants WHERE split_id = ?", splitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participant ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("failed to scan participant id: %w", err)
		}
		ids = append(ids, uid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participant ids: %w", err)
	}
	return ids, nil
}
