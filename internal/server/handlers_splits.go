package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/compass/internal/ledger"
	"github.com/campuscompass/compass/internal/models"
)

type createSplitRequest struct {
	Description string  `json:"description"`
	TotalAmount float64 `json:"total_amount"`
	// ParticipantIDs lists the other people sharing the expense; the
	// authenticated user is always the payer and is added server-side.
	ParticipantIDs []string `json:"participant_ids"`
}

type settleRequest struct {
	ParticipantUID string `json:"participant_uid" validate:"required"`
}

// ledgerViewResponse is the two-way partition of the user's visible splits.
type ledgerViewResponse struct {
	OwedByMe []models.BillSplit `json:"owed_by_me"`
	OwedToMe []models.BillSplit `json:"owed_to_me"`
}

func (s *Server) createSplit(c echo.Context) error {
	req := new(createSplitRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	payer, err := s.store.GetUserByID(ctx, currentUserID(c))
	if err != nil {
		return err
	}
	if payer == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown payer account")
	}

	byID, err := s.store.GetUsersByIDs(ctx, req.ParticipantIDs)
	if err != nil {
		return err
	}
	others := make([]models.User, 0, len(req.ParticipantIDs))
	for _, id := range req.ParticipantIDs {
		u, ok := byID[id]
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown participant: %s", id))
		}
		others = append(others, *u)
	}

	// the composer is the single validation point for split preconditions
	split, err := ledger.NewSplit(*payer, req.Description, req.TotalAmount, others)
	if err != nil {
		return err
	}

	if err := s.store.CreateSplit(ctx, split); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, split)
}

func (s *Server) ledgerView(c echo.Context) error {
	uid := currentUserID(c)
	splits, err := s.store.ListSplitsByParticipant(c.Request().Context(), uid)
	if err != nil {
		return err
	}
	owedBy, owedTo := ledger.Partition(splits, uid)
	return c.JSON(http.StatusOK, ledgerViewResponse{OwedByMe: owedBy, OwedToMe: owedTo})
}

func (s *Server) settleSplit(c echo.Context) error {
	req := new(settleRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	split, err := s.store.GetSplit(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	// only the payer marks debts as settled, matching who is owed the money
	if split.PayerID != currentUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "only the payer can settle debts on this split")
	}
	// the payer's own entry is born settled and is not a target
	if req.ParticipantUID == split.PayerID {
		return echo.NewHTTPError(http.StatusBadRequest, "the payer's share is always settled")
	}

	if err := s.store.SettleParticipant(ctx, split.ID, req.ParticipantUID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// streamLedger pushes the user's ledger view as server-sent events. The first
// event is the current state; one event follows every change to a split the
// user participates in. Closing the connection cancels the subscription.
func (s *Server) streamLedger(c echo.Context) error {
	uid := currentUserID(c)
	ctx := c.Request().Context()

	snapshots, err := s.store.SubscribeSplits(ctx, uid)
	if err != nil {
		return err
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(resp)
	for snapshot := range snapshots {
		owedBy, owedTo := ledger.Partition(snapshot, uid)
		if _, err := io.WriteString(resp, "data: "); err != nil {
			return nil // client went away
		}
		if err := enc.Encode(ledgerViewResponse{OwedByMe: owedBy, OwedToMe: owedTo}); err != nil {
			return nil
		}
		if _, err := io.WriteString(resp, "\n"); err != nil {
			return nil
		}
		resp.Flush()
	}
	return nil
}
