// Package report aggregates expense collections for display: per-day,
// per-category, and whole-trip totals. All functions are pure: they read
// a slice of expenses and return sums, so every view stays consistent with
// the others by construction.
package report

import (
	"sort"

	"github.com/mfigueredo/viatico/internal/model"
)

// MethodTotals holds home-currency sums split by payment method.
// Total is always Cash + Card.
type MethodTotals struct {
	Cash  float64
	Card  float64
	Total float64
}

func (m *MethodTotals) add(e model.Expense) {
	switch e.Method {
	case model.PaymentCash:
		m.Cash += e.HomeAmount
	case model.PaymentCard:
		m.Card += e.HomeAmount
	}
	m.Total += e.HomeAmount
}

// DailyRow holds one date's totals.
type DailyRow struct {
	Date model.Date
	MethodTotals
}

// CategoryRow holds one category's totals.
type CategoryRow struct {
	Category model.Category
	MethodTotals
}

// Daily groups expenses by date and sums home amounts per payment method.
// Rows are sorted by date ascending; only dates with expenses appear.
func Daily(expenses []model.Expense) []DailyRow {
	byDate := make(map[model.Date]*DailyRow)
	for _, e := range expenses {
		row, ok := byDate[e.Date]
		if !ok {
			row = &DailyRow{Date: e.Date}
			byDate[e.Date] = row
		}
		row.add(e)
	}

	rows := make([]DailyRow, 0, len(byDate))
	for _, row := range byDate {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}

// ByCategory groups expenses by category and sums home amounts per payment
// method. Rows follow the canonical category order; only categories with
// expenses appear.
func ByCategory(expenses []model.Expense) []CategoryRow {
	byCat := make(map[model.Category]*CategoryRow)
	for _, e := range expenses {
		row, ok := byCat[e.Category]
		if !ok {
			row = &CategoryRow{Category: e.Category}
			byCat[e.Category] = row
		}
		row.add(e)
	}

	var rows []CategoryRow
	for _, c := range model.Categories() {
		if row, ok := byCat[c]; ok {
			rows = append(rows, *row)
		}
	}
	return rows
}

// Totals sums the whole collection into a single aggregate.
func Totals(expenses []model.Expense) MethodTotals {
	var t MethodTotals
	for _, e := range expenses {
		t.add(e)
	}
	return t
}

// SpentOn sums the home-currency amounts of expenses on one date.
func SpentOn(expenses []model.Expense, date model.Date) float64 {
	var sum float64
	for _, e := range expenses {
		if e.Date == date {
			sum += e.HomeAmount
		}
	}
	return sum
}
