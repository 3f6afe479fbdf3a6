// Package projection rolls an application forward month by month: seasonal
// sales, one-off items in their exact month, disbursement tranches and the
// new loan's payment schedule, folded into a running cumulative flow.
package projection

import (
	"math"
	"time"

	"microfin_intake/pkg/core/engine"
	"microfin_intake/pkg/models"
)

// Horizon is the projection length in months. Two years covers the longest
// microcredit terms the tool underwrites.
const Horizon = 24

// MonthFlow is one projected month. SDN is the pre-financing surplus: it
// excludes disbursement tranches and the new loan payment so it stays
// comparable to the capacity snapshot.
type MonthFlow struct {
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`

	Sales          float64 `json:"sales"`
	DisbursementIn float64 `json:"disbursement_in"`
	OtherIncome    float64 `json:"other_income"`

	CostOfGoodsSold     float64 `json:"cost_of_goods_sold"`
	BusinessExpenses    float64 `json:"business_expenses"`
	FamilyExpenses      float64 `json:"family_expenses"`
	ExistingDebtService float64 `json:"existing_debt_service"`
	DisbursementOut     float64 `json:"disbursement_out"`
	PlannedInvestment   float64 `json:"planned_investment"`
	NewLoanPayment      float64 `json:"new_loan_payment"`

	SDN float64 `json:"sdn"`

	TotalInflow    float64 `json:"total_inflow"`
	TotalOutflow   float64 `json:"total_outflow"`
	NetFlow        float64 `json:"net_flow"`
	CumulativeFlow float64 `json:"cumulative_flow"`
}

// Project builds the Horizon-month cash flow starting at startMonth.
// Month numbers are 1-based and the disbursement plan's relative months
// line up with them.
func Project(app *models.LoanApplication, startMonth time.Month) []MonthFlow {
	loanAmt := app.LoanAmount.Float()
	termMonths := int(app.LoanTerm.Float())
	monthlyRate := app.LoanInterestRate.Float() / 100 / 12
	levelQuota := engine.MonthlyQuota(loanAmt, app.LoanInterestRate.Float(), termMonths, app.LoanPaymentMethod)

	fixedExpenses := engine.TotalFixedBusinessExpenses(app)
	familyExpenses := engine.TotalFamilyExpenses(app)
	debtService := engine.TotalNonConsolidatedDebtService(app)
	familyIncome := app.FamilyIncome.Float()
	planned := app.PlannedInvestment.Float()
	cogsPct := app.CostOfGoodsSold.Float() / 100

	rows := make([]MonthFlow, 0, Horizon)
	cumulative := 0.0

	for i := 1; i <= Horizon; i++ {
		monthName := engine.MonthNames[(int(startMonth)-1+i-1)%12]
		sales := engine.MonthlySales(app, monthName)

		varIncome, varExpense := 0.0, 0.0
		for _, item := range app.VariableItems {
			if item.Month != monthName {
				continue
			}
			switch item.Type {
			case models.VariableIncome:
				varIncome += item.Amount.Float()
			case models.VariableExpense:
				varExpense += item.Amount.Float()
			}
		}

		cogs := sales * cogsPct

		disbIn, disbOut := 0.0, 0.0
		for _, d := range app.DisbursementPlan {
			if d.Month != i {
				continue
			}
			switch d.Type {
			case models.DisbursementIn:
				disbIn += d.Amount.Float()
			case models.DisbursementOut:
				disbOut += d.Amount.Float()
			}
		}

		newLoanPayment := 0.0
		if i <= termMonths {
			if app.LoanPaymentMethod == models.PaymentDeclining {
				principalPortion := loanAmt / float64(termMonths)
				balance := math.Max(0, loanAmt-principalPortion*float64(i-1))
				newLoanPayment = principalPortion + balance*monthlyRate
			} else {
				newLoanPayment = levelQuota
			}
		}

		totalInflow := sales + varIncome + disbIn + familyIncome
		totalOutflow := cogs + fixedExpenses + varExpense + familyExpenses +
			debtService + disbOut + planned + newLoanPayment

		sdn := (sales + varIncome + familyIncome) -
			(cogs + fixedExpenses + varExpense + familyExpenses + debtService + planned)

		netFlow := totalInflow - totalOutflow
		cumulative += netFlow

		rows = append(rows, MonthFlow{
			Month:     i,
			MonthName: monthName,

			Sales:          sales,
			DisbursementIn: disbIn,
			OtherIncome:    varIncome + familyIncome,

			CostOfGoodsSold:     cogs,
			BusinessExpenses:    fixedExpenses + varExpense,
			FamilyExpenses:      familyExpenses,
			ExistingDebtService: debtService,
			DisbursementOut:     disbOut,
			PlannedInvestment:   planned,
			NewLoanPayment:      newLoanPayment,

			SDN: sdn,

			TotalInflow:    totalInflow,
			TotalOutflow:   totalOutflow,
			NetFlow:        netFlow,
			CumulativeFlow: cumulative,
		})
	}
	return rows
}
