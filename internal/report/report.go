// Package report filters a day's transactions down to true expenses,
// aggregates them by display category and renders the daily text report.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"monozvit/internal/core"
)

// Generator renders daily expense reports. The resolve func maps an MCC to
// its display category; the location labels the report's date line.
type Generator struct {
	resolve func(code int) core.CategoryInfo
	loc     *time.Location
}

func NewGenerator(resolve func(code int) core.CategoryInfo, loc *time.Location) *Generator {
	return &Generator{resolve: resolve, loc: loc}
}

// FilterExpenses keeps only home-currency debits. Credits and
// foreign-currency transactions never appear in the report.
func FilterExpenses(transactions []core.Transaction) []core.Transaction {
	var expenses []core.Transaction
	for _, tx := range transactions {
		if tx.IsExpense() {
			expenses = append(expenses, tx)
		}
	}
	return expenses
}

// EffectiveMCC prefers the original code when the bank set one. A zero
// originalMcc falls through to the settlement code.
func EffectiveMCC(tx core.Transaction) int {
	if tx.OriginalMCC != 0 {
		return tx.OriginalMCC
	}
	return tx.MCC
}

// Aggregate groups expenses by display category, in first-seen order. Codes
// resolving to the same category key share one aggregate.
func (g *Generator) Aggregate(expenses []core.Transaction) []*core.CategoryAggregate {
	byKey := make(map[string]*core.CategoryAggregate)
	var ordered []*core.CategoryAggregate

	for _, tx := range expenses {
		category := g.resolve(EffectiveMCC(tx))
		key := category.Key()

		agg, ok := byKey[key]
		if !ok {
			agg = &core.CategoryAggregate{Category: category}
			byKey[key] = agg
			ordered = append(ordered, agg)
		}
		agg.Total += -tx.Amount
		agg.Count++
		agg.Transactions = append(agg.Transactions, tx)
	}
	return ordered
}

// Generate renders the report for the given statement and day window.
func (g *Generator) Generate(transactions []core.Transaction, rng core.TimeRange) string {
	expenses := FilterExpenses(transactions)
	date := core.FormatDate(rng.From, g.loc)

	if len(expenses) == 0 {
		return fmt.Sprintf("📅 Витрати за %s\n\nСьогодні витрат не було.", date)
	}

	aggregates := g.Aggregate(expenses)
	// Descending by total; ties keep first-seen order.
	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].Total > aggregates[j].Total
	})

	var total int64
	for _, tx := range expenses {
		total += -tx.Amount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Витрати за %s\n\n", date)
	fmt.Fprintf(&b, "Разом: %s грн (%d транзакцій)\n\n", core.FormatAmount(total), len(expenses))
	for _, agg := range aggregates {
		fmt.Fprintf(&b, "%s %s: %s грн (%d)\n",
			agg.Category.Emoji, agg.Category.Name, core.FormatAmount(agg.Total), agg.Count)
	}
	return b.String()
}

// Stats summarises a statement for logging; it never feeds the rendered text.
type Stats struct {
	Total         int
	Expenses      int
	ExpenseAmount int64 // absolute minor units
}

func Summarize(transactions []core.Transaction) Stats {
	expenses := FilterExpenses(transactions)
	var amount int64
	for _, tx := range expenses {
		amount += -tx.Amount
	}
	return Stats{
		Total:         len(transactions),
		Expenses:      len(expenses),
		ExpenseAmount: amount,
	}
}
