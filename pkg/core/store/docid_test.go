package store

import (
	"strings"
	"testing"

	"microfin_intake/pkg/models"
)

func TestResolveDocIDKeepsExistingID(t *testing.T) {
	app := &models.LoanApplication{OperationNumber: "OP-2024-99", IdentityDocument: "1234567890101"}
	if got := ResolveDocID("OP-2023-01", app); got != "OP-2023-01" {
		t.Errorf("existing ID must win, got %s", got)
	}
}

func TestResolveDocIDPrefersOperationNumber(t *testing.T) {
	app := &models.LoanApplication{OperationNumber: " OP-2024-99 ", IdentityDocument: "1234567890101"}
	if got := ResolveDocID("", app); got != "OP-2024-99" {
		t.Errorf("got %s, want trimmed operation number", got)
	}
}

func TestResolveDocIDFallsBackToIdentityDocument(t *testing.T) {
	app := &models.LoanApplication{IdentityDocument: "1234567890101"}
	if got := ResolveDocID("", app); got != "1234567890101" {
		t.Errorf("got %s, want identity document", got)
	}
}

func TestResolveDocIDDraftToken(t *testing.T) {
	got := ResolveDocID("", &models.LoanApplication{})
	if !strings.HasPrefix(got, "draft_") {
		t.Errorf("empty record should get a draft token, got %s", got)
	}
	other := ResolveDocID("", &models.LoanApplication{})
	if got == other {
		t.Error("draft tokens must be unique per save")
	}
}

func TestResolveDocIDSanitizesSlashes(t *testing.T) {
	app := &models.LoanApplication{OperationNumber: "2024/07/15-03"}
	if got := ResolveDocID("", app); got != "2024_07_15-03" {
		t.Errorf("got %s, want slashes replaced", got)
	}
	if got := ResolveDocID("a/b", app); got != "a_b" {
		t.Errorf("existing IDs are sanitized too, got %s", got)
	}
}
