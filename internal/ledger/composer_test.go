package ledger

import (
	"errors"
	"math"
	"testing"

	"github.com/campuscompass/compass/internal/models"
)

func user(id, username string) models.User {
	return models.User{ID: id, Name: username, Username: username}
}

func TestNewSplit(t *testing.T) {
	alice := user("u-alice", "alice")
	bob := user("u-bob", "bob")
	carol := user("u-carol", "carol")

	tests := []struct {
		name         string
		payer        models.User
		description  string
		total        float64
		others       []models.User
		wantErr      bool
		errFields    []string
		validateFunc func(t *testing.T, s *models.BillSplit)
	}{
		{
			name:        "even three-way split",
			payer:       alice,
			description: "Pizza",
			total:       30.0,
			others:      []models.User{bob, carol},
			validateFunc: func(t *testing.T, s *models.BillSplit) {
				if len(s.Participants) != 3 {
					t.Fatalf("participants = %d, want 3", len(s.Participants))
				}
				for _, p := range s.Participants {
					if math.Abs(p.AmountOwed-10.0) > 1e-9 {
						t.Errorf("%s owes %v, want 10.0", p.Username, p.AmountOwed)
					}
					wantPaid := p.UID == alice.ID
					if p.HasPaid != wantPaid {
						t.Errorf("%s hasPaid = %v, want %v", p.Username, p.HasPaid, wantPaid)
					}
				}
				if s.PayerID != alice.ID || s.PayerName != "alice" {
					t.Errorf("payer = %s/%s, want %s/alice", s.PayerID, s.PayerName, alice.ID)
				}
			},
		},
		{
			name:        "shares sum to total for non-divisible amounts",
			payer:       alice,
			description: "Groceries",
			total:       100.0,
			others:      []models.User{bob, carol},
			validateFunc: func(t *testing.T, s *models.BillSplit) {
				var sum float64
				for _, p := range s.Participants {
					sum += p.AmountOwed
				}
				if math.Abs(sum-100.0) > 1e-9 {
					t.Errorf("sum of shares = %v, want 100.0", sum)
				}
			},
		},
		{
			name:        "payer included exactly once even if listed in others",
			payer:       alice,
			description: "Taxi",
			total:       20.0,
			others:      []models.User{bob, alice, bob},
			validateFunc: func(t *testing.T, s *models.BillSplit) {
				ids := s.ParticipantIDs()
				if len(ids) != 2 {
					t.Fatalf("participantIds = %v, want exactly [bob alice]", ids)
				}
				seen := make(map[string]int)
				for _, id := range ids {
					seen[id]++
				}
				if seen[alice.ID] != 1 || seen[bob.ID] != 1 {
					t.Errorf("duplicate uids in %v", ids)
				}
				for _, p := range s.Participants {
					if math.Abs(p.AmountOwed-10.0) > 1e-9 {
						t.Errorf("%s owes %v, want 10.0", p.Username, p.AmountOwed)
					}
				}
			},
		},
		{
			name:        "empty description rejected",
			payer:       alice,
			description: "",
			total:       10.0,
			others:      []models.User{bob},
			wantErr:     true,
			errFields:   []string{"description"},
		},
		{
			name:        "non-positive amount rejected",
			payer:       alice,
			description: "Coffee",
			total:       0,
			others:      []models.User{bob},
			wantErr:     true,
			errFields:   []string{"total_amount"},
		},
		{
			name:        "no other participants rejected",
			payer:       alice,
			description: "Solo dinner",
			total:       15.0,
			others:      nil,
			wantErr:     true,
			errFields:   []string{"participants"},
		},
		{
			name:        "others containing only the payer rejected",
			payer:       alice,
			description: "Mirror split",
			total:       15.0,
			others:      []models.User{alice},
			wantErr:     true,
			errFields:   []string{"participants"},
		},
		{
			name:        "all failures reported together",
			payer:       alice,
			description: "",
			total:       -5.0,
			others:      nil,
			wantErr:     true,
			errFields:   []string{"description", "total_amount", "participants"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := NewSplit(tt.payer, tt.description, tt.total, tt.others)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSplit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
				got := make(map[string]bool)
				for _, f := range verr.Fields {
					got[f.Field] = true
				}
				for _, field := range tt.errFields {
					if !got[field] {
						t.Errorf("missing field error for %q in %v", field, verr.Fields)
					}
				}
				if len(got) != len(tt.errFields) {
					t.Errorf("field errors = %v, want exactly %v", verr.Fields, tt.errFields)
				}
				return
			}
			if split.ID != "" {
				t.Errorf("composer must not assign an ID, got %q", split.ID)
			}
			if split.CreatedAt == 0 {
				t.Error("expected CreatedAt to be set")
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, split)
			}
		})
	}
}

func TestNewSplitParticipantIDsLockstep(t *testing.T) {
	split, err := NewSplit(user("a", "a"), "Dinner", 90.0, []models.User{user("b", "b"), user("c", "c")})
	if err != nil {
		t.Fatalf("NewSplit failed: %v", err)
	}
	ids := split.ParticipantIDs()
	if len(ids) != len(split.Participants) {
		t.Fatalf("ids len = %d, participants len = %d", len(ids), len(split.Participants))
	}
	for i, p := range split.Participants {
		if ids[i] != p.UID {
			t.Errorf("ids[%d] = %s, want %s", i, ids[i], p.UID)
		}
	}
}
