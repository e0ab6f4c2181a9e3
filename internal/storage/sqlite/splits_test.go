package sqlite

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/campuscompass/compass/internal/ledger"
	"github.com/campuscompass/compass/internal/models"
	"github.com/campuscompass/compass/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func composeSplit(t *testing.T, payer models.User, description string, total float64, others ...models.User) *models.BillSplit {
	t.Helper()
	split, err := ledger.NewSplit(payer, description, total, others)
	if err != nil {
		t.Fatalf("NewSplit failed: %v", err)
	}
	return split
}

func TestSplitStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := models.User{ID: "u-alice", Username: "alice"}
	bob := models.User{ID: "u-bob", Username: "bob"}
	carol := models.User{ID: "u-carol", Username: "carol"}

	t.Run("CreateSplit assigns ID and round-trips", func(t *testing.T) {
		split := composeSplit(t, alice, "Pizza", 30.0, bob, carol)
		if err := store.CreateSplit(ctx, split); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}
		if split.ID == "" {
			t.Fatal("expected split ID to be assigned")
		}

		got, err := store.GetSplit(ctx, split.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}
		if got.Description != "Pizza" || got.PayerID != alice.ID {
			t.Errorf("split = %+v, want Pizza paid by alice", got)
		}
		if len(got.Participants) != 3 {
			t.Fatalf("participants = %d, want 3", len(got.Participants))
		}
		var sum float64
		for _, p := range got.Participants {
			sum += p.AmountOwed
			wantPaid := p.UID == alice.ID
			if p.HasPaid != wantPaid {
				t.Errorf("%s hasPaid = %v, want %v", p.Username, p.HasPaid, wantPaid)
			}
		}
		if math.Abs(sum-30.0) > 1e-9 {
			t.Errorf("sum of shares = %v, want 30.0", sum)
		}
		// order preserved: others first, payer last (composer order)
		if got.Participants[len(got.Participants)-1].UID != alice.ID {
			t.Errorf("payer not last: %v", got.Participants)
		}
	})

	t.Run("GetSplit returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := store.GetSplit(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListSplitsByParticipant filters by membership", func(t *testing.T) {
		solo := composeSplit(t, bob, "Taxi", 20.0, carol)
		if err := store.CreateSplit(ctx, solo); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		splits, err := store.ListSplitsByParticipant(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListSplitsByParticipant failed: %v", err)
		}
		for _, s := range splits {
			if _, ok := s.Participant(alice.ID); !ok {
				t.Errorf("split %q does not contain alice", s.Description)
			}
			if s.Description == "Taxi" {
				t.Error("alice sees a split she is not part of")
			}
		}

		carolSplits, err := store.ListSplitsByParticipant(ctx, carol.ID)
		if err != nil {
			t.Fatalf("ListSplitsByParticipant failed: %v", err)
		}
		found := false
		for _, s := range carolSplits {
			if s.Description == "Taxi" {
				found = true
			}
		}
		if !found {
			t.Error("carol does not see the Taxi split")
		}
	})

	t.Run("SettleParticipant is idempotent and targeted", func(t *testing.T) {
		split := composeSplit(t, alice, "Dinner", 90.0, bob, carol)
		if err := store.CreateSplit(ctx, split); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		if err := store.SettleParticipant(ctx, split.ID, bob.ID); err != nil {
			t.Fatalf("SettleParticipant failed: %v", err)
		}
		first, err := store.GetSplit(ctx, split.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}

		// settle the same debt again: must succeed and change nothing
		if err := store.SettleParticipant(ctx, split.ID, bob.ID); err != nil {
			t.Fatalf("second SettleParticipant failed: %v", err)
		}
		second, err := store.GetSplit(ctx, split.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}

		for i, p := range second.Participants {
			if p != first.Participants[i] {
				t.Errorf("participant %d changed on repeat settle: %+v != %+v", i, p, first.Participants[i])
			}
			switch p.UID {
			case bob.ID, alice.ID:
				if !p.HasPaid {
					t.Errorf("%s should be paid", p.Username)
				}
			case carol.ID:
				if p.HasPaid {
					t.Error("carol should still be unpaid")
				}
			}
		}
	})

	t.Run("SettleParticipant rejects unknown split and participant", func(t *testing.T) {
		split := composeSplit(t, alice, "Books", 40.0, bob)
		if err := store.CreateSplit(ctx, split); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		if err := store.SettleParticipant(ctx, "nonexistent-id", bob.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("unknown split: error = %v, want ErrNotFound", err)
		}
		if err := store.SettleParticipant(ctx, split.ID, "u-stranger"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("unknown participant: error = %v, want ErrNotFound", err)
		}

		// the failed settles must not have touched anything
		got, err := store.GetSplit(ctx, split.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}
		for _, p := range got.Participants {
			if p.UID == bob.ID && p.HasPaid {
				t.Error("bob's flag changed despite failed settles")
			}
		}
	})

	t.Run("concurrent settles of different participants both land", func(t *testing.T) {
		split := composeSplit(t, alice, "Road trip", 120.0, bob, carol)
		if err := store.CreateSplit(ctx, split); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, uid := range []string{bob.ID, carol.ID} {
			wg.Add(1)
			go func(i int, uid string) {
				defer wg.Done()
				errs[i] = store.SettleParticipant(ctx, split.ID, uid)
			}(i, uid)
		}
		wg.Wait()
		for i, err := range errs {
			if err != nil {
				t.Fatalf("settle %d failed: %v", i, err)
			}
		}

		got, err := store.GetSplit(ctx, split.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}
		for _, p := range got.Participants {
			if !p.HasPaid {
				t.Errorf("%s unpaid after concurrent settles (lost update)", p.Username)
			}
		}
	})
}

func TestSubscribeSplits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := models.User{ID: "u-alice", Username: "alice"}
	bob := models.User{ID: "u-bob", Username: "bob"}

	recv := func(t *testing.T, ch <-chan []models.BillSplit) []models.BillSplit {
		t.Helper()
		select {
		case snapshot, ok := <-ch:
			if !ok {
				t.Fatal("stream closed unexpectedly")
			}
			return snapshot
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for snapshot")
			return nil
		}
	}

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch, err := store.SubscribeSplits(subCtx, bob.ID)
	if err != nil {
		t.Fatalf("SubscribeSplits failed: %v", err)
	}

	// initial snapshot replays the (empty) current set
	if snapshot := recv(t, ch); len(snapshot) != 0 {
		t.Errorf("initial snapshot = %v, want empty", snapshot)
	}

	split := composeSplit(t, alice, "Pizza", 30.0, bob)
	if err := store.CreateSplit(ctx, split); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}

	snapshot := recv(t, ch)
	if len(snapshot) != 1 || snapshot[0].ID != split.ID {
		t.Fatalf("snapshot after create = %v, want the new split", snapshot)
	}

	if err := store.SettleParticipant(ctx, split.ID, bob.ID); err != nil {
		t.Fatalf("SettleParticipant failed: %v", err)
	}
	snapshot = recv(t, ch)
	if p, ok := snapshot[0].Participant(bob.ID); !ok || !p.HasPaid {
		t.Errorf("snapshot after settle = %+v, want bob paid", snapshot[0])
	}

	// resubscribing replays the full current set
	ch2, err := store.SubscribeSplits(subCtx, bob.ID)
	if err != nil {
		t.Fatalf("resubscribe failed: %v", err)
	}
	if snapshot := recv(t, ch2); len(snapshot) != 1 {
		t.Errorf("replayed snapshot = %v, want 1 split", snapshot)
	}

	// cancellation closes the stream and releases the listener
	cancel()
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-time.After(5 * time.Second):
			t.Fatal("stream not closed after cancel")
		}
	}
}
