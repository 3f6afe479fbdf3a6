package engine

import (
	"math"
	"testing"

	"microfin_intake/pkg/core/numeric"
	"microfin_intake/pkg/models"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// scenarioApp is the reference fixture: tiered sales of 25400/month,
// 40% cost of goods, 5000 fixed expenses, 3000 family expenses.
func scenarioApp() *models.LoanApplication {
	return &models.LoanApplication{
		SalesGood:    models.SalesProfile{Amount: 1000, Frequency: 20},
		SalesRegular: models.SalesProfile{Amount: 600, Frequency: 8},
		SalesBad:     models.SalesProfile{Amount: 300, Frequency: 2},

		CostOfGoodsSold:     40,
		ExpensesEmployees:   2000,
		ExpensesRent:        1500,
		ExpensesUtilities:   500,
		ExpensesTransport:   600,
		ExpensesMaintenance: 400,

		FamilyFood:      1500,
		FamilyTransport: 500,
		FamilyEducation: 400,
		FamilyUtilities: 300,
		FamilyComms:     100,
		FamilyHealth:    100,
		FamilyOther:     100,

		CreditExperience: models.ExperienceNew,
	}
}

func TestBaseMonthlySales(t *testing.T) {
	app := scenarioApp()
	got := BaseMonthlySales(app)
	if got != 25400 {
		t.Errorf("BaseMonthlySales = %v, want 25400", got)
	}
}

func TestBaseMonthlySalesIgnoresPeriodLabel(t *testing.T) {
	app := scenarioApp()
	app.SalesGood.Period = "daily"
	app.SalesRegular.Period = "weekly"
	if got := BaseMonthlySales(app); got != 25400 {
		t.Errorf("period label changed the result: got %v", got)
	}
}

func TestMonthlySalesSeasonality(t *testing.T) {
	app := scenarioApp()
	app.LowSalesMonths = []string{"February"}
	app.LowSalesReduction = 30
	app.HighSalesMonths = []string{"December"}
	app.HighSalesIncrease = 50

	if got := MonthlySales(app, "February"); !almostEqual(got, 25400*0.7, 1e-9) {
		t.Errorf("low month = %v, want %v", got, 25400*0.7)
	}
	if got := MonthlySales(app, "December"); !almostEqual(got, 25400*1.5, 1e-9) {
		t.Errorf("high month = %v, want %v", got, 25400*1.5)
	}
	if got := MonthlySales(app, "June"); got != 25400 {
		t.Errorf("plain month = %v, want 25400", got)
	}
}

func TestMonthlySalesLowSeasonWins(t *testing.T) {
	app := scenarioApp()
	app.LowSalesMonths = []string{"March"}
	app.LowSalesReduction = 20
	app.HighSalesMonths = []string{"March"}
	app.HighSalesIncrease = 80

	if got := MonthlySales(app, "March"); !almostEqual(got, 25400*0.8, 1e-9) {
		t.Errorf("month in both sets = %v, want low-season %v", got, 25400*0.8)
	}
}

func TestCapacitySnapshotScenario(t *testing.T) {
	app := scenarioApp()
	snap := AnalyzeCapacity(app)

	if !almostEqual(snap.GrossProfit, 15240, 1e-9) {
		t.Errorf("GrossProfit = %v, want 15240", snap.GrossProfit)
	}
	if !almostEqual(snap.OperatingProfit, 10240, 1e-9) {
		t.Errorf("OperatingProfit = %v, want 10240", snap.OperatingProfit)
	}
	if !almostEqual(snap.DisposableSurplus, 7240, 1e-9) {
		t.Errorf("DisposableSurplus = %v, want 7240", snap.DisposableSurplus)
	}
	if !almostEqual(snap.UsableSurplus, 7240*0.65, 1e-9) {
		t.Errorf("UsableSurplus = %v, want %v", snap.UsableSurplus, 7240*0.65)
	}
}

func TestCapacityEmptyApplication(t *testing.T) {
	snap := AnalyzeCapacity(&models.LoanApplication{})
	if snap.DisposableSurplus != 0 || snap.MonthlyQuota != 0 || snap.DebtCoverageRatio != 0 {
		t.Errorf("empty application must analyze to zeros, got %+v", snap)
	}
	if math.IsNaN(snap.MaxLoanCapacity) {
		t.Error("MaxLoanCapacity is NaN on empty application")
	}
}

func TestDeclaredCapacityRatio(t *testing.T) {
	app := scenarioApp()
	app.MonthlyPaymentCapacity = 6000
	snap := AnalyzeCapacity(app)

	want := 6000 / (7240 * 0.65)
	if !almostEqual(snap.DeclaredCapacityRatio, want, 1e-9) {
		t.Errorf("DeclaredCapacityRatio = %v, want %v", snap.DeclaredCapacityRatio, want)
	}
	if snap.DeclaredCapacityRatio <= 1 {
		t.Error("declared 6000 against usable ~4706 should flag above 1.0")
	}

	app.MonthlyPaymentCapacity = 0
	if r := AnalyzeCapacity(app).DeclaredCapacityRatio; r != 0 {
		t.Errorf("zero declared capacity should give ratio 0, got %v", r)
	}
}

func TestMonthlyQuotaLevel(t *testing.T) {
	got := MonthlyQuota(10000, 24, 12, models.PaymentLevel)

	// Closed form: 10000 * 0.02 * 1.02^12 / (1.02^12 - 1)
	pow := math.Pow(1.02, 12)
	want := 10000 * 0.02 * pow / (pow - 1)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("quota = %v, want %v", got, want)
	}
	if !almostEqual(got, 945.60, 0.01) {
		t.Errorf("quota = %v, expected about 945.60", got)
	}
}

func TestMonthlyQuotaDecliningFirstPeriod(t *testing.T) {
	got := MonthlyQuota(10000, 24, 12, models.PaymentDeclining)
	want := 10000.0/12 + 10000*0.02
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("declining first payment = %v, want %v", got, want)
	}
}

func TestMonthlyQuotaEdges(t *testing.T) {
	if q := MonthlyQuota(0, 24, 12, models.PaymentLevel); q != 0 {
		t.Errorf("zero principal: got %v", q)
	}
	if q := MonthlyQuota(10000, 24, 0, models.PaymentLevel); q != 0 {
		t.Errorf("zero term: got %v", q)
	}
	if q := MonthlyQuota(10000, 24, 12, models.PaymentAtMaturity); q != 0 {
		t.Errorf("at maturity: got %v", q)
	}
	if q := MonthlyQuota(12000, 0, 12, models.PaymentLevel); q != 1000 {
		t.Errorf("zero rate straight line: got %v, want 1000", q)
	}
}

// The present value of the level quota must replay the principal.
func TestPresentValueAnnuityIdentity(t *testing.T) {
	principal := 15000.0
	quota := MonthlyQuota(principal, 18, 24, models.PaymentLevel)
	back := PresentValue(18.0/100/12, 24, quota)
	if !almostEqual(back, principal, 1e-6) {
		t.Errorf("PV(quota) = %v, want %v", back, principal)
	}
}

func TestPresentValueZeroRate(t *testing.T) {
	if pv := PresentValue(0, 12, 500); pv != 6000 {
		t.Errorf("zero-rate PV = %v, want 6000", pv)
	}
	if pv := PresentValue(0.02, 0, 500); pv != 0 {
		t.Errorf("zero-term PV = %v, want 0", pv)
	}
}

func TestSafetyMargin(t *testing.T) {
	cases := []struct {
		exp  models.CreditExperience
		want float64
	}{
		{models.ExperienceNew, 0.35},
		{models.ExperienceExternal, 0.30},
		{models.ExperienceRecurring, 0.25},
		{"", 0.35},
		{"weird", 0.35},
	}
	for _, c := range cases {
		if got := SafetyMargin(c.exp); got != c.want {
			t.Errorf("SafetyMargin(%q) = %v, want %v", c.exp, got, c.want)
		}
	}
}

// A consolidated debt leaves the ongoing service but stays a liability.
// Both sides must hold on the same fixture.
func TestConsolidatedDebtSplit(t *testing.T) {
	app := scenarioApp()
	app.ExistingDebts = []models.ExistingDebt{
		{Creditor: "bank A", CurrentBalance: 8000, MonthlyQuota: 700},
		{Creditor: "bank B", CurrentBalance: 5000, MonthlyQuota: 450, Consolidate: true},
	}

	if svc := TotalNonConsolidatedDebtService(app); svc != 700 {
		t.Errorf("debt service = %v, want 700 (consolidated quota excluded)", svc)
	}
	bs := AnalyzeBalanceSheet(app)
	if bs.TotalLiabilities != 13000 {
		t.Errorf("liabilities = %v, want 13000 (consolidated balance included)", bs.TotalLiabilities)
	}
}

func TestNetVariableItems(t *testing.T) {
	app := scenarioApp()
	app.VariableItems = []models.VariableItem{
		{Concept: "harvest", Type: models.VariableIncome, Month: "November", Amount: 6000},
		{Concept: "school fees", Type: models.VariableExpense, Month: "January", Amount: 1800},
	}
	if net := NetVariableAnnual(app); net != 4200 {
		t.Errorf("NetVariableAnnual = %v, want 4200", net)
	}
	if avg := AvgNetVariableMonthly(app); !almostEqual(avg, 350, 1e-9) {
		t.Errorf("AvgNetVariableMonthly = %v, want 350", avg)
	}
}

func TestBalanceSheetValues(t *testing.T) {
	app := scenarioApp()
	app.LoanAmount = 10000
	app.Inventory = []models.InventoryItem{
		{Name: "maize", StockQty: 100, PurchasePrice: 50},
		{Name: "beans", StockQty: 40, PurchasePrice: 75},
	}
	app.RealEstateAssets = []models.RealEstateAsset{{EstimatedValue: 50000}}
	app.VehicleAssets = []models.VehicleAsset{{EstimatedValue: 12000}}
	app.OtherAssets = []models.OtherAsset{{EstimatedValue: 3000}}
	app.ExistingDebts = []models.ExistingDebt{{CurrentBalance: 20000, MonthlyQuota: 900}}

	bs := AnalyzeBalanceSheet(app)
	if bs.InventoryValue != 8000 {
		t.Errorf("InventoryValue = %v, want 8000", bs.InventoryValue)
	}
	if bs.TotalAssets != 73000 {
		t.Errorf("TotalAssets = %v, want 73000", bs.TotalAssets)
	}
	if bs.NetWorth != 53000 {
		t.Errorf("NetWorth = %v, want 53000", bs.NetWorth)
	}
	if bs.TotalDebtPostLoan != 30000 || bs.TotalAssetsPostLoan != 83000 {
		t.Errorf("post-loan = %v / %v, want 30000 / 83000", bs.TotalDebtPostLoan, bs.TotalAssetsPostLoan)
	}

	wantInvTotal := 30000.0 / 8000 * 100
	if !almostEqual(bs.TotalDebtToInventoryPct, wantInvTotal, 1e-9) {
		t.Errorf("TotalDebtToInventoryPct = %v, want %v", bs.TotalDebtToInventoryPct, wantInvTotal)
	}
	wantLev := 30000.0 / 53000 * 100
	if !almostEqual(bs.LeverageOverEquityPct, wantLev, 1e-9) {
		t.Errorf("LeverageOverEquityPct = %v, want %v", bs.LeverageOverEquityPct, wantLev)
	}
}

// Insolvency must surface as the sentinel, never Infinity or a panic.
func TestLeverageSentinelOnNegativeNetWorth(t *testing.T) {
	app := scenarioApp()
	app.LoanAmount = 5000
	app.OtherAssets = []models.OtherAsset{{EstimatedValue: 1000}}
	app.ExistingDebts = []models.ExistingDebt{{CurrentBalance: 9000}}

	bs := AnalyzeBalanceSheet(app)
	if bs.NetWorth >= 0 {
		t.Fatalf("fixture broken: NetWorth = %v", bs.NetWorth)
	}
	if bs.LeverageOverEquityPct != SentinelLeverage {
		t.Errorf("LeverageOverEquityPct = %v, want sentinel %v", bs.LeverageOverEquityPct, SentinelLeverage)
	}
	if math.IsInf(bs.LeverageOverEquityPct, 0) || math.IsNaN(bs.LeverageOverEquityPct) {
		t.Error("leverage must never be Inf or NaN")
	}
}

func TestRatioSentinels(t *testing.T) {
	bs := AnalyzeBalanceSheet(&models.LoanApplication{})
	if bs.RequestedToInventoryPct != 0 || bs.TotalDebtToInventoryPct != 0 {
		t.Errorf("empty inventory ratios = %v / %v, want 0 / 0", bs.RequestedToInventoryPct, bs.TotalDebtToInventoryPct)
	}
	if bs.RequestedToAnnualSales != SentinelSales || bs.TotalDebtToAnnualSales != SentinelSales {
		t.Errorf("zero-sales ratios = %v / %v, want sentinel %v", bs.RequestedToAnnualSales, bs.TotalDebtToAnnualSales, SentinelSales)
	}
	if bs.CommercialCoverage != 0 {
		t.Errorf("zero-loan coverage = %v, want 0", bs.CommercialCoverage)
	}
}

func TestAlerts(t *testing.T) {
	app := scenarioApp()
	app.LoanAmount = 10000
	app.Inventory = []models.InventoryItem{{StockQty: 10, PurchasePrice: 100}} // 1000
	// 160000 owed against 304800 annual sales puts debt over half a year of sales.
	app.ExistingDebts = []models.ExistingDebt{{CurrentBalance: 160000}}
	app.RealGuarantees = []models.RealGuarantee{{EstimatedValue: 4000, QuickSaleValue: 2500}}

	bs := AnalyzeBalanceSheet(app)
	alerts := Alerts(app, bs)

	kinds := map[string]int{}
	for _, a := range alerts {
		kinds[a.Kind]++
	}
	if kinds["risk"] != 2 {
		t.Errorf("want 2 risk alerts (inventory + sales exposure), got %d: %+v", kinds["risk"], alerts)
	}
	if kinds["guarantee"] != 1 {
		t.Errorf("want guarantee alert for 0.4x coverage, got %+v", alerts)
	}
}

func TestRentAlertOnlyWhenRentedWithoutExpense(t *testing.T) {
	app := scenarioApp()
	app.HousingType = "rented"
	app.ExpensesRent = 0
	bs := AnalyzeBalanceSheet(app)

	found := false
	for _, a := range Alerts(app, bs) {
		if a.Kind == "expenses" {
			found = true
		}
	}
	if !found {
		t.Error("rented housing with zero rent should raise the expenses alert")
	}

	app.ExpensesRent = numeric.Number(800)
	for _, a := range Alerts(app, AnalyzeBalanceSheet(app)) {
		if a.Kind == "expenses" {
			t.Error("rent recorded, expenses alert should not fire")
		}
	}
}

func TestBusinessScoreFloorsInvestmentPlan(t *testing.T) {
	app := &models.LoanApplication{
		DiversificationScore:        2,
		ProfitabilityKnowledgeScore: 3,
		OperationsManagementScore:   2,
		InvestmentPlanQualityScore:  0, // floors to 1
		SuccessionPlanningScore:     1,
	}
	res := BusinessScore(app)
	if res.Points != 9 {
		t.Errorf("Points = %d, want 9", res.Points)
	}
	if res.Band != "High" {
		t.Errorf("9/13 is %.0f%%, want High band, got %s", res.Percent, res.Band)
	}
}

func TestCharacterScoreNegativeFloorsPercent(t *testing.T) {
	app := &models.LoanApplication{
		CharacterRefScore:           -2,
		CharacterPayHistoryScore:    -1,
		CharacterInformalDebtsScore: 0,
		CharacterTransparencyScore:  1,
	}
	res := CharacterScore(app)
	if res.Points != -2 {
		t.Errorf("Points = %d, want -2", res.Points)
	}
	if res.Percent != 0 {
		t.Errorf("Percent = %v, want floored 0", res.Percent)
	}
	if res.Band != "Low" {
		t.Errorf("Band = %s, want Low", res.Band)
	}
}

func TestRotatedMonths(t *testing.T) {
	months := RotatedMonths(11) // November
	if months[0] != "November" || months[1] != "December" || months[2] != "January" {
		t.Errorf("rotation from November wrong: %v", months[:3])
	}
}
