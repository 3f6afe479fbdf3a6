package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"microfin_intake/pkg/core/engine"
	"microfin_intake/pkg/core/projection"
	"microfin_intake/pkg/core/utils"
	"microfin_intake/pkg/models"
)

func loadApplication(path string) (*models.LoanApplication, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	app := &models.LoanApplication{}
	// Fixtures are authored by hand, so HJSON (comments, trailing commas)
	// is accepted alongside plain JSON.
	if strings.HasSuffix(path, ".hjson") {
		if err := utils.ParseHJSONToStruct(string(raw), app); err != nil {
			return nil, err
		}
		return app, nil
	}
	if err := json.Unmarshal(raw, app); err != nil {
		return nil, err
	}
	return app, nil
}

func printScore(label string, s engine.ScoreResult) {
	fmt.Printf("  %-18s %2d / %2d  (%5.1f%%)  %s\n", label, s.Points, s.Max, s.Percent, s.Band)
}

func main() {
	godotenv.Load()

	startMonth := flag.Int("start", 0, "projection start month 1-12 (default: current month)")
	showFlows := flag.Bool("flows", true, "print the 24-month projection table")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: scoring [-start N] [-flows=false] <application.json|.hjson>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	app, err := loadApplication(path)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}

	start := time.Month(*startMonth)
	if *startMonth < 1 || *startMonth > 12 {
		start = time.Now().Month()
	}

	fmt.Printf("=== Credit Analysis: %s ===\n", app.FullName)
	fmt.Printf("Fixture: %s\n\n", filepath.Base(path))

	snap := engine.AnalyzeCapacity(app)
	fmt.Println("Payment capacity")
	fmt.Printf("  Base monthly sales        Q %12.2f\n", snap.BaseMonthlySales)
	fmt.Printf("  Operating profit          Q %12.2f\n", snap.OperatingProfit)
	fmt.Printf("  Disposable surplus (SDN)  Q %12.2f\n", snap.DisposableSurplus)
	fmt.Printf("  Usable surplus            Q %12.2f  (margin %.0f%%)\n",
		snap.UsableSurplus, snap.MarginFraction*100)
	fmt.Printf("  Monthly quota             Q %12.2f\n", snap.MonthlyQuota)
	if snap.MonthlyQuota > 0 {
		fmt.Printf("  Debt coverage (RCD)       %14.2f\n", snap.DebtCoverageRatio)
	}
	fmt.Printf("  Max loan capacity         Q %12.2f\n", snap.MaxLoanCapacity)

	bs := engine.AnalyzeBalanceSheet(app)
	fmt.Println("\nBalance sheet")
	fmt.Printf("  Total assets              Q %12.2f\n", bs.TotalAssets)
	fmt.Printf("  Total liabilities         Q %12.2f\n", bs.TotalLiabilities)
	fmt.Printf("  Net worth                 Q %12.2f\n", bs.NetWorth)
	fmt.Printf("  Leverage / equity         %14.2f%%\n", bs.LeverageOverEquityPct)
	fmt.Printf("  Leverage / assets         %14.2f%%\n", bs.LeverageOverAssetsPct)
	fmt.Printf("  Guarantee coverage        %14.2f\n", bs.CommercialCoverage)

	alerts := engine.Alerts(app, bs)
	if len(alerts) > 0 {
		fmt.Println("\nAlerts")
		for _, a := range alerts {
			fmt.Printf("  [%s] %s\n", a.Kind, a.Message)
		}
	}

	fmt.Println("\nQualitative scores")
	printScore("Business:", engine.BusinessScore(app))
	printScore("Character:", engine.CharacterScore(app))

	if *showFlows {
		flows := projection.Project(app, start)
		fmt.Println("\n24-month cash flow projection")
		fmt.Printf("  %-4s %-10s %12s %12s %12s %12s %12s\n",
			"#", "Month", "Inflow", "Outflow", "SDN", "Net", "Cumulative")
		for _, f := range flows {
			fmt.Printf("  %-4d %-10s %12.2f %12.2f %12.2f %12.2f %12.2f\n",
				f.Month, f.MonthName, f.TotalInflow, f.TotalOutflow, f.SDN, f.NetFlow, f.CumulativeFlow)
		}
	}
}
