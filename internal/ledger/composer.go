package ledger

import (
	"time"

	"github.com/campuscompass/compass/internal/models"
)

// NewSplit validates and builds a BillSplit from a payer, a description, the
// total amount paid, and the other people sharing the expense.
//
// The full participant set is others plus the payer; the share is
// totalAmount divided evenly across that set. Shares keep full float64
// precision, so the sum of shares equals the total up to floating-point
// error; two-decimal rounding happens only at display time.
//
// The payer's entry is created already paid. Everyone else starts unpaid.
// Duplicate entries in others (and the payer appearing in others) are
// collapsed so each uid occurs exactly once.
func NewSplit(payer models.User, description string, totalAmount float64, others []models.User) (*models.BillSplit, error) {
	var verr ValidationError
	if description == "" {
		verr.Fields = append(verr.Fields, FieldError{Field: "description", Error: "must not be empty"})
	}
	if totalAmount <= 0 {
		verr.Fields = append(verr.Fields, FieldError{Field: "total_amount", Error: "must be greater than zero"})
	}

	seen := map[string]bool{payer.ID: true}
	members := make([]models.User, 0, len(others)+1)
	for _, u := range others {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		members = append(members, u)
	}
	if len(members) == 0 {
		verr.Fields = append(verr.Fields, FieldError{Field: "participants", Error: "must include at least one person besides the payer"})
	}
	if len(verr.Fields) > 0 {
		return nil, &verr
	}

	members = append(members, payer)
	amountPerPerson := totalAmount / float64(len(members))

	participants := make([]models.BillParticipant, len(members))
	for i, u := range members {
		participants[i] = models.BillParticipant{
			UID:        u.ID,
			Username:   u.Username,
			AmountOwed: amountPerPerson,
			HasPaid:    u.ID == payer.ID,
		}
	}

	return &models.BillSplit{
		PayerID:      payer.ID,
		PayerName:    payer.Username,
		TotalAmount:  totalAmount,
		Description:  description,
		Participants: participants,
		CreatedAt:    time.Now().Unix(),
	}, nil
}
