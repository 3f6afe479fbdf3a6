// Package engine implements the affordability analysis: seasonal sales,
// expense aggregation, amortization, the capacity snapshot, the balance-sheet
// review with its consistency alerts, and the qualitative scores.
package engine

import (
	"time"

	"microfin_intake/pkg/models"
)

// MonthNames is the canonical calendar used by seasonality and the
// projection. Seasonal month sets on the application reference these names.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the canonical name for a time.Month.
func MonthName(m time.Month) string {
	return MonthNames[int(m)-1]
}

// RotatedMonths returns the 12 month names starting from the given month,
// wrapping around the year.
func RotatedMonths(start time.Month) [12]string {
	var out [12]string
	for i := 0; i < 12; i++ {
		out[i] = MonthNames[(int(start)-1+i)%12]
	}
	return out
}

// BaseMonthlySales is the tier-weighted monthly sales estimate:
// amount times frequency summed over the good, regular and bad tiers.
// The tier period label never rescales the figure.
func BaseMonthlySales(app *models.LoanApplication) float64 {
	tiers := [3]models.SalesProfile{app.SalesGood, app.SalesRegular, app.SalesBad}
	total := 0.0
	for _, tier := range tiers {
		total += tier.Amount.Float() * tier.Frequency.Float()
	}
	return total
}

// MonthlySales applies the seasonal adjustment for the named month.
// A month listed as low season is reduced by lowSalesReduction percent;
// otherwise a high-season month is increased by highSalesIncrease percent.
// Low season wins when a month appears in both sets.
func MonthlySales(app *models.LoanApplication, monthName string) float64 {
	base := BaseMonthlySales(app)
	if containsMonth(app.LowSalesMonths, monthName) {
		return base * (1 - app.LowSalesReduction.Float()/100)
	}
	if containsMonth(app.HighSalesMonths, monthName) {
		return base * (1 + app.HighSalesIncrease.Float()/100)
	}
	return base
}

func containsMonth(months []string, name string) bool {
	for _, m := range months {
		if m == name {
			return true
		}
	}
	return false
}
