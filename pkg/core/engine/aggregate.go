package engine

import (
	"microfin_intake/pkg/models"
)

// TotalFixedBusinessExpenses sums the five named monthly expense lines plus
// every free-form other-expense row.
func TotalFixedBusinessExpenses(app *models.LoanApplication) float64 {
	total := app.ExpensesEmployees.Float() +
		app.ExpensesRent.Float() +
		app.ExpensesUtilities.Float() +
		app.ExpensesTransport.Float() +
		app.ExpensesMaintenance.Float()
	for _, e := range app.OtherBusinessExpenses {
		total += e.Amount.Float()
	}
	return total
}

// TotalFamilyExpenses sums the seven household budget lines.
func TotalFamilyExpenses(app *models.LoanApplication) float64 {
	return app.FamilyFood.Float() +
		app.FamilyTransport.Float() +
		app.FamilyEducation.Float() +
		app.FamilyUtilities.Float() +
		app.FamilyComms.Float() +
		app.FamilyHealth.Float() +
		app.FamilyOther.Float()
}

// TotalNonConsolidatedDebtService sums the monthly quotas of debts that the
// requested loan will NOT pay off. Consolidated debts keep their balances on
// the liability side but their quotas leave the ongoing service.
func TotalNonConsolidatedDebtService(app *models.LoanApplication) float64 {
	total := 0.0
	for _, d := range app.ExistingDebts {
		if d.Consolidate {
			continue
		}
		total += d.MonthlyQuota.Float()
	}
	return total
}

// NetVariableAnnual nets the seasonal one-off items over the year:
// income rows add, expense rows subtract.
func NetVariableAnnual(app *models.LoanApplication) float64 {
	net := 0.0
	for _, item := range app.VariableItems {
		switch item.Type {
		case models.VariableIncome:
			net += item.Amount.Float()
		case models.VariableExpense:
			net -= item.Amount.Float()
		}
	}
	return net
}

// AvgNetVariableMonthly spreads the annual variable net over 12 months.
// The snapshot uses this average; the projector places each item in its
// exact month instead.
func AvgNetVariableMonthly(app *models.LoanApplication) float64 {
	return NetVariableAnnual(app) / 12
}
