package engine

import (
	"microfin_intake/pkg/models"
)

// Sentinel values for undefined ratios. Leverage percentages report 999 when
// the denominator vanishes (insolvent or asset-free), sales-exposure ratios
// report 99 when no sales were recorded. Both read as "off the chart" rather
// than "healthy zero" on the committee view.
const (
	SentinelLeverage = 999
	SentinelSales    = 99
)

// BalanceSheetReview is the declared-wealth view: assets, liabilities and
// the post-loan exposure ratios the committee screens.
type BalanceSheetReview struct {
	InventoryValue  float64 `json:"inventory_value"`
	RealEstateValue float64 `json:"real_estate_value"`
	VehicleValue    float64 `json:"vehicle_value"`
	OtherAssetValue float64 `json:"other_asset_value"`
	TotalAssets     float64 `json:"total_assets"`

	TotalLiabilities float64 `json:"total_liabilities"`
	NetWorth         float64 `json:"net_worth"`

	AnnualSales float64 `json:"annual_sales"`

	TotalDebtPostLoan   float64 `json:"total_debt_post_loan"`
	TotalAssetsPostLoan float64 `json:"total_assets_post_loan"`

	// Inventory exposure, as percentages.
	RequestedToInventoryPct float64 `json:"requested_to_inventory_pct"`
	TotalDebtToInventoryPct float64 `json:"total_debt_to_inventory_pct"`

	// Sales exposure, in years of sales.
	RequestedToAnnualSales float64 `json:"requested_to_annual_sales"`
	TotalDebtToAnnualSales float64 `json:"total_debt_to_annual_sales"`

	// Post-loan leverage, as percentages.
	LeverageOverEquityPct float64 `json:"leverage_over_equity_pct"`
	LeverageOverAssetsPct float64 `json:"leverage_over_assets_pct"`

	// Collateral coverage, as multiples of the requested amount.
	CommercialCoverage float64 `json:"commercial_coverage"`
	QuickSaleCoverage  float64 `json:"quick_sale_coverage"`
}

// AnalyzeBalanceSheet values the declared assets against all liabilities and
// derives the post-loan exposure ratios. Liabilities include consolidated
// debts: until the new loan actually pays them off they are still owed.
func AnalyzeBalanceSheet(app *models.LoanApplication) BalanceSheetReview {
	inventory := 0.0
	for _, item := range app.Inventory {
		inventory += item.StockQty.Float() * item.PurchasePrice.Float()
	}
	realEstate := 0.0
	for _, a := range app.RealEstateAssets {
		realEstate += a.EstimatedValue.Float()
	}
	vehicles := 0.0
	for _, a := range app.VehicleAssets {
		vehicles += a.EstimatedValue.Float()
	}
	other := 0.0
	for _, a := range app.OtherAssets {
		other += a.EstimatedValue.Float()
	}
	totalAssets := inventory + realEstate + vehicles + other

	liabilities := 0.0
	for _, d := range app.ExistingDebts {
		liabilities += d.CurrentBalance.Float()
	}
	netWorth := totalAssets - liabilities

	loanAmt := app.LoanAmount.Float()
	annualSales := BaseMonthlySales(app) * 12

	debtPost := liabilities + loanAmt
	assetsPost := totalAssets + loanAmt

	invReq, invTotal := 0.0, 0.0
	if inventory > 0 {
		invReq = loanAmt / inventory * 100
		invTotal = debtPost / inventory * 100
	}

	salesReq, salesTotal := float64(SentinelSales), float64(SentinelSales)
	if annualSales > 0 {
		salesReq = loanAmt / annualSales
		salesTotal = debtPost / annualSales
	}

	levEquity := float64(SentinelLeverage)
	if netWorth > 0 {
		levEquity = debtPost / netWorth * 100
	}
	levAssets := float64(SentinelLeverage)
	if assetsPost > 0 {
		levAssets = debtPost / assetsPost * 100
	}

	commercial, quickSale := 0.0, 0.0
	if loanAmt > 0 {
		estTotal, quickTotal := 0.0, 0.0
		for _, g := range app.RealGuarantees {
			estTotal += g.EstimatedValue.Float()
			quickTotal += g.QuickSaleValue.Float()
		}
		commercial = estTotal / loanAmt
		quickSale = quickTotal / loanAmt
	}

	return BalanceSheetReview{
		InventoryValue:  inventory,
		RealEstateValue: realEstate,
		VehicleValue:    vehicles,
		OtherAssetValue: other,
		TotalAssets:     totalAssets,

		TotalLiabilities: liabilities,
		NetWorth:         netWorth,

		AnnualSales: annualSales,

		TotalDebtPostLoan:   debtPost,
		TotalAssetsPostLoan: assetsPost,

		RequestedToInventoryPct: invReq,
		TotalDebtToInventoryPct: invTotal,

		RequestedToAnnualSales: salesReq,
		TotalDebtToAnnualSales: salesTotal,

		LeverageOverEquityPct: levEquity,
		LeverageOverAssetsPct: levAssets,

		CommercialCoverage: commercial,
		QuickSaleCoverage:  quickSale,
	}
}

// Alert is an advisory consistency finding. Alerts never block saving or
// scoring; they surface on the committee report.
type Alert struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Alerts screens the balance-sheet review against the intake record for the
// standard inconsistencies.
func Alerts(app *models.LoanApplication, bs BalanceSheetReview) []Alert {
	var out []Alert
	if bs.TotalDebtToInventoryPct > 100 {
		out = append(out, Alert{Kind: "risk", Message: "total debt exceeds inventory value"})
	}
	if bs.TotalDebtToAnnualSales > 0.5 {
		out = append(out, Alert{Kind: "risk", Message: "total debt exceeds 6 months of sales"})
	}
	if bs.CommercialCoverage < 1 {
		out = append(out, Alert{Kind: "guarantee", Message: "collateral coverage below 100%"})
	}
	rented := app.HousingType == "rented" || app.BusinessPremiseType == "rented"
	if rented && app.ExpensesRent.Float() == 0 {
		out = append(out, Alert{Kind: "expenses", Message: "rented housing or premises with no rent expense recorded"})
	}
	return out
}
