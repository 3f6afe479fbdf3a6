// Package analysis exposes the full numeric report: capacity snapshot,
// balance-sheet review, alerts, qualitative scores and the 24-month
// projection, computed in one shot from the submitted record.
package analysis

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"microfin_intake/pkg/core/engine"
	"microfin_intake/pkg/core/projection"
	"microfin_intake/pkg/models"
)

type ReportRequest struct {
	Application *models.LoanApplication `json:"application"`
	// StartMonth is 1-12; zero means the current month.
	StartMonth int `json:"start_month"`
}

type ReportResponse struct {
	Capacity       engine.CapacitySnapshot   `json:"capacity"`
	BalanceSheet   engine.BalanceSheetReview `json:"balance_sheet"`
	Alerts         []engine.Alert            `json:"alerts"`
	BusinessScore  engine.ScoreResult        `json:"business_score"`
	CharacterScore engine.ScoreResult        `json:"character_score"`
	Projection     []projection.MonthFlow    `json:"projection"`
}

// HandleReport computes the full analysis. The engine is pure, so this
// endpoint needs neither the database nor any provider.
func HandleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Application == nil {
		http.Error(w, "application payload required", http.StatusBadRequest)
		return
	}

	start := time.Month(req.StartMonth)
	if req.StartMonth < 1 || req.StartMonth > 12 {
		start = time.Now().Month()
	}

	app := req.Application
	fmt.Printf("[ANALYSIS] Report: %s (loan %.0f, start %s)\n",
		app.FullName, app.LoanAmount.Float(), start)

	balance := engine.AnalyzeBalanceSheet(app)
	resp := ReportResponse{
		Capacity:       engine.AnalyzeCapacity(app),
		BalanceSheet:   balance,
		Alerts:         engine.Alerts(app, balance),
		BusinessScore:  engine.BusinessScore(app),
		CharacterScore: engine.CharacterScore(app),
		Projection:     projection.Project(app, start),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
