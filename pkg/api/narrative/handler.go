// Package narrative exposes the AI dictamen endpoints. Narrative failures
// are reported to the caller as errors; the numeric report never depends
// on them.
package narrative

import (
	"encoding/json"
	"fmt"
	"net/http"

	"microfin_intake/pkg/core/agent"
	core "microfin_intake/pkg/core/narrative"
	"microfin_intake/pkg/models"
)

var svc *core.Service

func InitHandler(mgr *agent.Manager) {
	svc = core.NewService(mgr, core.NewRangeExtractor())
}

type Request struct {
	Application *models.LoanApplication `json:"application"`
}

type DebtResponse struct {
	Analysis string `json:"analysis"`
}

func cors(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func decode(w http.ResponseWriter, r *http.Request) *models.LoanApplication {
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil
	}
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	if req.Application == nil {
		http.Error(w, "application payload required", http.StatusBadRequest)
		return nil
	}
	return req.Application
}

// HandleDebt generates the debt reasonability dictamen.
func HandleDebt(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	app := decode(w, r)
	if app == nil {
		return
	}

	fmt.Printf("[NARRATIVE] Debt dictamen: %s\n", app.FullName)
	analysis, err := svc.DebtReasonability(r.Context(), app)
	if err != nil {
		fmt.Printf("[NARRATIVE] debt dictamen failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DebtResponse{Analysis: analysis})
}

// HandleSixCs generates the six-Cs dictamen with the suggested range.
func HandleSixCs(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	app := decode(w, r)
	if app == nil {
		return
	}

	fmt.Printf("[NARRATIVE] Six-Cs dictamen: %s\n", app.FullName)
	result, err := svc.SixCs(r.Context(), app)
	if err != nil {
		fmt.Printf("[NARRATIVE] six-Cs dictamen failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
