package aggregate

import "api-holiday-a99/model"

// BudgetStats is the budget-vs-spend summary shown on the dashboard and the
// manage page.
type BudgetStats struct {
	TotalBudget     float64 `json:"totalBudget"`
	TotalExpenses   float64 `json:"totalExpenses"`
	RemainingBudget float64 `json:"remainingBudget"`
	PercentageUsed  float64 `json:"percentageUsed"`
}

// Stats computes spend totals against the configured budget. A zero budget
// yields zero percent used, never a division by zero.
func Stats(totalBudget float64, expenses []model.Expense) BudgetStats {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	pct := 0.0
	if totalBudget > 0 {
		pct = total / totalBudget * 100
	}
	return BudgetStats{
		TotalBudget:     totalBudget,
		TotalExpenses:   total,
		RemainingBudget: totalBudget - total,
		PercentageUsed:  pct,
	}
}
