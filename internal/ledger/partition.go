package ledger

import "github.com/campuscompass/compass/internal/models"

// Partition splits a user's visible ledger into the two presentation views:
//
//   - owedBy: splits where uid appears as a participant with an unpaid share.
//     The payer's own entry is always paid, so splits the user paid for never
//     show up here.
//   - owedTo: splits where uid is the payer, regardless of how many
//     participants have settled. The caller filters out the payer's own entry
//     when listing individual debtors.
//
// Pure function; input order is preserved in both results.
func Partition(splits []models.BillSplit, uid string) (owedBy, owedTo []models.BillSplit) {
	for _, s := range splits {
		if p, ok := s.Participant(uid); ok && !p.HasPaid {
			owedBy = append(owedBy, s)
		}
		if s.PayerID == uid {
			owedTo = append(owedTo, s)
		}
	}
	return owedBy, owedTo
}
