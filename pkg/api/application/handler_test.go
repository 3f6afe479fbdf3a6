package application

import (
	"strings"
	"testing"

	"microfin_intake/pkg/models"
)

func TestPrefillReviewDefaultsFromRequestedTerms(t *testing.T) {
	app := &models.LoanApplication{
		LoanAmount:            15000,
		LoanDestination:       "working_capital",
		LoanDestinationDetail: "seasonal stock",
		LoanPaymentMethod:     models.PaymentLevel,
		LoanInterestRate:      24,
		LoanTerm:              18,
		LoanCommission:        2,
		RealGuarantees: []models.RealGuarantee{
			{Type: "mortgage", Description: "house lot", EstimatedValue: 40000},
		},
		FiduciaryGuarantees: []models.FiduciaryGuarantee{
			{Name: "Pedro Gómez"},
		},
	}

	prefillReview(app)

	rev := app.Review
	if rev.ApprovedAmount.Float() != 15000 || rev.ApprovedTerm.Float() != 18 {
		t.Errorf("approved terms not prefilled: %+v", rev)
	}
	if rev.ApprovedDestination != "working_capital - seasonal stock" {
		t.Errorf("destination = %q", rev.ApprovedDestination)
	}
	if !strings.Contains(rev.ApprovedGuaranteeDescription, "mortgage: house lot") {
		t.Errorf("real guarantee missing from description: %q", rev.ApprovedGuaranteeDescription)
	}
	if !strings.Contains(rev.ApprovedGuaranteeDescription, "Fiador: Pedro Gómez") {
		t.Errorf("fiduciary guarantee missing: %q", rev.ApprovedGuaranteeDescription)
	}
	if rev.ApprovalDate == "" {
		t.Error("approval date not defaulted")
	}
}

func TestPrefillReviewNeverOverwritesCommitteeEdits(t *testing.T) {
	app := &models.LoanApplication{
		LoanAmount: 15000,
		LoanTerm:   18,
	}
	app.Review.ApprovedAmount = 9000
	app.Review.ApprovedTerm = 12

	prefillReview(app)

	if app.Review.ApprovedAmount.Float() != 9000 || app.Review.ApprovedTerm.Float() != 12 {
		t.Errorf("committee edits overwritten: %+v", app.Review)
	}
}

func TestPrefillReviewSkipsRecordsWithoutLoanTerms(t *testing.T) {
	app := &models.LoanApplication{FullName: "early draft"}
	prefillReview(app)
	if app.Review.ApprovalDate != "" {
		t.Error("draft without loan terms should not get an approval date")
	}
}
