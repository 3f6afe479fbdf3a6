package engine

import (
	"math"

	"microfin_intake/pkg/models"
)

// Safety margins applied to the disposable surplus by credit experience.
// Repeat clients have proven payment data, so less is held back.
const (
	MarginNew       = 0.35
	MarginExternal  = 0.30
	MarginRecurring = 0.25
)

// SafetyMargin maps a credit experience to its surplus haircut fraction.
// Unknown or empty experience is treated as a new client.
func SafetyMargin(exp models.CreditExperience) float64 {
	switch exp {
	case models.ExperienceRecurring:
		return MarginRecurring
	case models.ExperienceExternal:
		return MarginExternal
	default:
		return MarginNew
	}
}

// MonthlyQuota computes the first-period payment of a loan. The annual rate
// is a percentage (24 means 24% nominal annual, compounded monthly).
//
// Level: standard annuity, constant every period. Declining balance:
// constant principal plus interest on the full balance, so the first
// payment is the largest the client will ever face. At maturity: no
// periodic payment, everything due at term end.
func MonthlyQuota(principal, annualRatePct float64, termMonths int, method models.PaymentMethod) float64 {
	if principal == 0 || termMonths == 0 {
		return 0
	}
	r := annualRatePct / 100 / 12
	n := float64(termMonths)

	switch method {
	case models.PaymentDeclining:
		return principal/n + principal*r
	case models.PaymentAtMaturity:
		return 0
	default:
		if r == 0 {
			return principal / n
		}
		pow := math.Pow(1+r, n)
		return principal * r * pow / (pow - 1)
	}
}

// PresentValue inverts the level annuity: the largest principal a constant
// monthly payment can amortize over n periods at the given monthly rate.
func PresentValue(monthlyRate float64, termMonths int, payment float64) float64 {
	if payment == 0 || termMonths == 0 {
		return 0
	}
	n := float64(termMonths)
	if monthlyRate == 0 {
		return payment * n
	}
	return payment * (1 - math.Pow(1+monthlyRate, -n)) / monthlyRate
}
