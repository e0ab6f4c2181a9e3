package server

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/compass/internal/models"
)

type createExpenseRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
}

type categoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

func (s *Server) createExpense(c echo.Context) error {
	req := new(createExpenseRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	expense := &models.Expense{
		UserID:      currentUserID(c),
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
	}
	if err := s.store.CreateExpense(c.Request().Context(), expense); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, expense)
}

func (s *Server) listExpenses(c echo.Context) error {
	expenses, err := s.store.ListExpenses(c.Request().Context(),
		currentUserID(c), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return err
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return c.JSON(http.StatusOK, expenses)
}

func (s *Server) deleteExpense(c echo.Context) error {
	if err := s.store.DeleteExpense(c.Request().Context(), currentUserID(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) expenseSummary(c echo.Context) error {
	expenses, err := s.store.ListExpenses(c.Request().Context(),
		currentUserID(c), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return err
	}

	byCategory := make(map[string]*categoryTotal)
	for _, e := range expenses {
		t, ok := byCategory[e.Category]
		if !ok {
			t = &categoryTotal{Category: e.Category}
			byCategory[e.Category] = t
		}
		t.Total += e.Amount
		t.Count++
	}

	totals := make([]categoryTotal, 0, len(byCategory))
	for _, t := range byCategory {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return c.JSON(http.StatusOK, totals)
}
