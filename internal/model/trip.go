// Package model defines the domain types for the viatico ledger:
// trips, their per-day budgets, recorded expenses, and the closed
// enumerations used to classify them.
package model

import "github.com/google/uuid"

// Trip is a bounded date range with a daily spending allowance.
// At most one trip is active at a time; everything except Active and the
// Spent amounts of its daily budgets is immutable after construction.
type Trip struct {
	ID          string        `json:"id"`
	Destination string        `json:"destination"`
	Foreign     bool          `json:"isForeign"`
	StartDate   Date          `json:"startDate"`
	EndDate     Date          `json:"endDate"`
	DailyBudget float64       `json:"dailyBudgetAmount"`
	Active      bool          `json:"isActive"`
	Budgets     []DailyBudget `json:"dailyBudgets"`
}

// DailyBudget tracks one day's allocated and spent amounts within a trip.
// Spent accumulates converted home-currency expense totals for that date.
type DailyBudget struct {
	Date      Date    `json:"date"`
	Allocated float64 `json:"allocatedAmount"`
	Spent     float64 `json:"spentAmount"`
}

// NewTrip constructs an active trip with one DailyBudget per calendar day
// in [start, end], each allocated the trip's daily budget with zero spent.
// Callers must validate start <= end first.
func NewTrip(destination string, foreign bool, start, end Date, dailyBudget float64) Trip {
	t := Trip{
		ID:          uuid.NewString(),
		Destination: destination,
		Foreign:     foreign,
		StartDate:   start,
		EndDate:     end,
		DailyBudget: dailyBudget,
		Active:      true,
	}
	for d := start; !d.After(end); d = d.AddDays(1) {
		t.Budgets = append(t.Budgets, DailyBudget{Date: d, Allocated: dailyBudget})
	}
	return t
}

// Days returns the number of calendar days the trip spans, endpoints inclusive.
func (t Trip) Days() int {
	return t.StartDate.DaysUntil(t.EndDate) + 1
}

// Contains reports whether d falls inside the trip's date range.
func (t Trip) Contains(d Date) bool {
	return !d.Before(t.StartDate) && !d.After(t.EndDate)
}

// BudgetFor returns a pointer to the trip's daily budget for the given
// date, or nil when the date is outside the trip's range.
func (t *Trip) BudgetFor(d Date) *DailyBudget {
	for i := range t.Budgets {
		if t.Budgets[i].Date == d {
			return &t.Budgets[i]
		}
	}
	return nil
}
