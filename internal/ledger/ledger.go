// Package ledger orchestrates the trip lifecycle and expense registration:
// validate, convert to the home currency, persist, update the day's budget.
// It owns every business rule; the stores and the rate cache behind it are
// plain collaborators injected at construction.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/mfigueredo/viatico/internal/model"
	"github.com/mfigueredo/viatico/internal/report"
)

// Validation failures. All are checked and rejected before any persistence
// write, so an invalid request never leaves a partial mutation behind.
var (
	// ErrInvalidDateRange means a trip's start date is after its end date.
	ErrInvalidDateRange = errors.New("ledger: start date after end date")
	// ErrInactiveTrip means an expense targeted a trip that is not active.
	ErrInactiveTrip = errors.New("ledger: trip is not active")
	// ErrDateOutOfRange means a date falls outside the trip's span.
	ErrDateOutOfRange = errors.New("ledger: date outside trip range")
)

// TripStore persists the trip collection. SaveTrip replaces by id.
type TripStore interface {
	LoadTrips() ([]model.Trip, error)
	SaveTrip(model.Trip) error
}

// ExpenseStore persists the flat expense collection across all trips.
type ExpenseStore interface {
	LoadExpenses() ([]model.Expense, error)
	SaveExpenses([]model.Expense) error
}

// Converter converts an amount in a source currency to the home currency.
// A non-nil error signals the fallback rate was used; the returned amount
// is still valid.
type Converter interface {
	ToHome(ctx context.Context, amount float64, currency string) (float64, error)
}

// Ledger is the budget ledger over a trip store, an expense store, and a
// currency converter.
type Ledger struct {
	trips    TripStore
	expenses ExpenseStore
	convert  Converter
	warnf    func(format string, args ...any)
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithWarnf sets the sink for non-fatal warnings, such as a rate lookup
// falling back to 1. The default discards them.
func WithWarnf(warnf func(format string, args ...any)) Option {
	return func(l *Ledger) { l.warnf = warnf }
}

// New creates a ledger over the given collaborators.
func New(trips TripStore, expenses ExpenseStore, convert Converter, opts ...Option) *Ledger {
	l := &Ledger{
		trips:    trips,
		expenses: expenses,
		convert:  convert,
		warnf:    func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateTrip creates and persists a new active trip with one daily budget
// per day in [start, end]. Any previously active trip is deactivated and
// persisted first, keeping at most one trip active across the store.
func (l *Ledger) CreateTrip(destination string, foreign bool, start, end model.Date, dailyBudget float64) (model.Trip, error) {
	if start.After(end) {
		return model.Trip{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}

	existing, err := l.trips.LoadTrips()
	if err != nil {
		return model.Trip{}, err
	}
	for _, t := range existing {
		if t.Active {
			t.Active = false
			if err := l.trips.SaveTrip(t); err != nil {
				return model.Trip{}, fmt.Errorf("deactivating trip %s: %w", t.ID, err)
			}
		}
	}

	trip := model.NewTrip(destination, foreign, start, end, dailyBudget)
	if err := l.trips.SaveTrip(trip); err != nil {
		return model.Trip{}, err
	}
	return trip, nil
}

// ActiveTrip returns the trip currently marked active, or nil when none is.
func (l *Ledger) ActiveTrip() (*model.Trip, error) {
	trips, err := l.trips.LoadTrips()
	if err != nil {
		return nil, err
	}
	for i := range trips {
		if trips[i].Active {
			return &trips[i], nil
		}
	}
	return nil, nil
}

// FinalizeActiveTrip deactivates the active trip and reports whether one
// existed. No active trip is a no-op, not an error.
func (l *Ledger) FinalizeActiveTrip() (bool, error) {
	trip, err := l.ActiveTrip()
	if err != nil {
		return false, err
	}
	if trip == nil {
		return false, nil
	}
	trip.Active = false
	if err := l.trips.SaveTrip(*trip); err != nil {
		return false, err
	}
	return true, nil
}

// RegisterExpense validates and records an expense on the trip: the amount
// is converted to the home currency, the expense is appended to the store,
// and the trip's daily budget for that date accumulates the converted
// amount. The expense is persisted before the trip, so a crash between the
// two writes leaves the expense recorded and only the running total stale;
// RebuildSpentTotals recovers from exactly that state.
//
// A failed rate lookup is non-fatal: the conversion proceeds at rate 1 and
// the warning sink is notified.
func (l *Ledger) RegisterExpense(ctx context.Context, trip *model.Trip, date model.Date, amount float64, method model.PaymentMethod, category model.Category, currency string) (model.Expense, error) {
	if !trip.Active {
		return model.Expense{}, fmt.Errorf("%w: trip %s", ErrInactiveTrip, trip.ID)
	}
	if !trip.Contains(date) {
		return model.Expense{}, fmt.Errorf("%w: %s not in [%s, %s]", ErrDateOutOfRange, date, trip.StartDate, trip.EndDate)
	}

	home, err := l.convert.ToHome(ctx, amount, currency)
	if err != nil {
		l.warnf("%v", err)
	}

	expense := model.NewExpense(date, amount, home, currency, method, category)

	all, err := l.expenses.LoadExpenses()
	if err != nil {
		return model.Expense{}, err
	}
	all = append(all, expense)
	if err := l.expenses.SaveExpenses(all); err != nil {
		return model.Expense{}, err
	}

	if b := trip.BudgetFor(date); b != nil {
		b.Spent += home
	}
	if err := l.trips.SaveTrip(*trip); err != nil {
		return model.Expense{}, fmt.Errorf("updating trip budget: %w", err)
	}

	return expense, nil
}

// ExpensesForTrip returns the stored expenses whose date falls inside the
// trip's range. The association is derived from date membership, not a
// stored relation, so when historical trips' ranges overlap, an expense in
// the shared span is reported for each of them.
func (l *Ledger) ExpensesForTrip(trip *model.Trip) ([]model.Expense, error) {
	all, err := l.expenses.LoadExpenses()
	if err != nil {
		return nil, err
	}
	var matched []model.Expense
	for _, e := range all {
		if trip.Contains(e.Date) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// RemainingBudget returns the trip's daily budget minus the day's spending,
// recomputed from the expense store rather than the cached running total.
// Negative means the day is over budget.
func (l *Ledger) RemainingBudget(trip *model.Trip, date model.Date) (float64, error) {
	if !trip.Contains(date) {
		return 0, fmt.Errorf("%w: %s not in [%s, %s]", ErrDateOutOfRange, date, trip.StartDate, trip.EndDate)
	}
	expenses, err := l.ExpensesForTrip(trip)
	if err != nil {
		return 0, err
	}
	return trip.DailyBudget - report.SpentOn(expenses, date), nil
}

// RebuildSpentTotals recomputes every stored trip's daily budget spent
// amounts from the expense store and persists the trips that changed.
// Returns the number of trips updated.
func (l *Ledger) RebuildSpentTotals() (int, error) {
	trips, err := l.trips.LoadTrips()
	if err != nil {
		return 0, err
	}
	expenses, err := l.expenses.LoadExpenses()
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, trip := range trips {
		changed := false
		for i := range trip.Budgets {
			want := report.SpentOn(expenses, trip.Budgets[i].Date)
			if trip.Budgets[i].Spent != want {
				trip.Budgets[i].Spent = want
				changed = true
			}
		}
		if changed {
			if err := l.trips.SaveTrip(trip); err != nil {
				return updated, fmt.Errorf("rebuilding trip %s: %w", trip.ID, err)
			}
			updated++
		}
	}
	return updated, nil
}
