package engine

import (
	"microfin_intake/pkg/models"
)

// CapacitySnapshot is the single-month affordability view of an application:
// a representative month at base sales, with variable items averaged.
type CapacitySnapshot struct {
	BaseMonthlySales      float64 `json:"base_monthly_sales"`
	CostOfGoodsSold       float64 `json:"cost_of_goods_sold"`
	GrossProfit           float64 `json:"gross_profit"`
	FixedBusinessExpenses float64 `json:"fixed_business_expenses"`
	OperatingProfit       float64 `json:"operating_profit"`

	AvgNetVariableMonthly float64 `json:"avg_net_variable_monthly"`
	FamilyIncome          float64 `json:"family_income"`
	FamilyExpenses        float64 `json:"family_expenses"`
	PlannedInvestment     float64 `json:"planned_investment"`
	ExistingDebtService   float64 `json:"existing_debt_service"`

	// DisposableSurplus is what the household clears in a month before any
	// new financing; UsableSurplus is that figure after the safety margin.
	DisposableSurplus float64 `json:"disposable_surplus"`
	MarginFraction    float64 `json:"margin_fraction"`
	UsableSurplus     float64 `json:"usable_surplus"`

	// DeclaredCapacityRatio compares what the client says they can pay to
	// the computed usable surplus. Above 1.0 the client is promising more
	// than the numbers support.
	DeclaredCapacity      float64 `json:"declared_capacity"`
	DeclaredCapacityRatio float64 `json:"declared_capacity_ratio"`

	// MonthlyQuota is the first-period payment of the requested loan, and
	// the debt coverage ratios divide surplus by it.
	MonthlyQuota           float64 `json:"monthly_quota"`
	DebtCoverageRatio      float64 `json:"debt_coverage_ratio"`
	DebtCoverageWithMargin float64 `json:"debt_coverage_with_margin"`

	// MaxLoanCapacity is the principal the usable surplus could amortize
	// as a level annuity at the requested rate and term.
	MaxLoanCapacity float64 `json:"max_loan_capacity"`
}

// AnalyzeCapacity builds the affordability snapshot for an application.
// It is pure: zero-valued inputs flow through as zeros, never errors.
func AnalyzeCapacity(app *models.LoanApplication) CapacitySnapshot {
	sales := BaseMonthlySales(app)
	cogs := sales * app.CostOfGoodsSold.Float() / 100
	gross := sales - cogs

	fixedExp := TotalFixedBusinessExpenses(app)
	operating := gross - fixedExp

	avgVar := AvgNetVariableMonthly(app)
	famIncome := app.FamilyIncome.Float()
	famExp := TotalFamilyExpenses(app)
	planned := app.PlannedInvestment.Float()
	debtSvc := TotalNonConsolidatedDebtService(app)

	sdn := operating + avgVar + famIncome - famExp - planned - debtSvc

	margin := SafetyMargin(app.CreditExperience)
	usable := sdn * (1 - margin)

	declared := app.MonthlyPaymentCapacity.Float()
	declaredRatio := 0.0
	if declared > 0 && usable > 0 {
		declaredRatio = declared / usable
	}

	term := int(app.LoanTerm.Float())
	quota := MonthlyQuota(app.LoanAmount.Float(), app.LoanInterestRate.Float(), term, app.LoanPaymentMethod)

	rcd, rcdMargin := 0.0, 0.0
	if quota > 0 {
		rcd = sdn / quota
		rcdMargin = usable / quota
	}

	monthlyRate := app.LoanInterestRate.Float() / 100 / 12
	maxCapacity := PresentValue(monthlyRate, term, usable)

	return CapacitySnapshot{
		BaseMonthlySales:      sales,
		CostOfGoodsSold:       cogs,
		GrossProfit:           gross,
		FixedBusinessExpenses: fixedExp,
		OperatingProfit:       operating,

		AvgNetVariableMonthly: avgVar,
		FamilyIncome:          famIncome,
		FamilyExpenses:        famExp,
		PlannedInvestment:     planned,
		ExistingDebtService:   debtSvc,

		DisposableSurplus: sdn,
		MarginFraction:    margin,
		UsableSurplus:     usable,

		DeclaredCapacity:      declared,
		DeclaredCapacityRatio: declaredRatio,

		MonthlyQuota:           quota,
		DebtCoverageRatio:      rcd,
		DebtCoverageWithMargin: rcdMargin,

		MaxLoanCapacity: maxCapacity,
	}
}
