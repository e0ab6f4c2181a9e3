package models

// BillSplit represents one shared-expense event: a single payment by one
// person, split evenly across a set of participants that includes the payer.
type BillSplit struct {
	// ID is the unique identifier for the split (UUID format).
	// Assigned by the store on creation.
	ID string `json:"id"`

	// PayerID and PayerName identify the user who paid the total up front.
	PayerID   string `json:"payer_id"`
	PayerName string `json:"payer_name"`

	// TotalAmount is the full amount paid. Always positive.
	TotalAmount float64 `json:"total_amount"`

	// Description is a free-text label (e.g. "Pizza Night").
	Description string `json:"description"`

	// Participants is the ordered list of people sharing the expense,
	// including the payer exactly once. Each entry snapshots identity at
	// creation time.
	Participants []BillParticipant `json:"participants"`

	// CreatedAt is the Unix timestamp when the split was created. Immutable.
	CreatedAt int64 `json:"created_at"`
}

// BillParticipant is one person's share within a BillSplit.
type BillParticipant struct {
	// UID and Username are an identity snapshot, not a live user reference.
	UID      string `json:"uid"`
	Username string `json:"username"`

	// AmountOwed is this participant's share of TotalAmount. Stored at full
	// float64 precision; display rounding is the client's concern.
	AmountOwed float64 `json:"amount_owed"`

	// HasPaid is true immediately for the payer and becomes true for other
	// participants when their debt is settled. It never reverts to false.
	HasPaid bool `json:"has_paid"`
}

// ParticipantIDs returns the uid of every participant, in participant order.
// It is maintained in lockstep with Participants by construction: splits are
// only ever built by the ledger composer.
func (s *BillSplit) ParticipantIDs() []string {
	ids := make([]string, len(s.Participants))
	for i, p := range s.Participants {
		ids[i] = p.UID
	}
	return ids
}

// Participant returns the entry for the given uid, or false if the uid is not
// part of the split.
func (s *BillSplit) Participant(uid string) (BillParticipant, bool) {
	for _, p := range s.Participants {
		if p.UID == uid {
			return p, true
		}
	}
	return BillParticipant{}, false
}
