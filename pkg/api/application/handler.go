// Package application exposes the intake record endpoints: anchored saves,
// loads, dashboard listings and photo uploads.
package application

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"microfin_intake/pkg/core/store"
	"microfin_intake/pkg/models"
)

var appRepo *store.ApplicationRepo
var photoStore *store.PhotoStore

func InitHandler(repo *store.ApplicationRepo, photos *store.PhotoStore) {
	appRepo = repo
	photoStore = photos
}

type SaveRequest struct {
	ID          string                  `json:"id"`
	Officer     *models.OfficerProfile  `json:"officer"`
	Application *models.LoanApplication `json:"application"`
}

type SaveResponse struct {
	ID string `json:"id"`
}

func cors(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// HandleSave persists an application under its anchored document ID.
// The response always reports the ID so the client can pin it for
// subsequent saves.
func HandleSave(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "POST") {
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Application == nil {
		http.Error(w, "application payload required", http.StatusBadRequest)
		return
	}

	docID := store.ResolveDocID(req.ID, req.Application)
	prefillReview(req.Application)

	fmt.Printf("[APPLICATION] Save: %s (%s)\n", docID, req.Application.FullName)

	if err := appRepo.Save(r.Context(), docID, req.Application, req.Officer); err != nil {
		http.Error(w, fmt.Sprintf("save failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SaveResponse{ID: docID})
}

// HandleLoad returns the full application record for ?id=.
func HandleLoad(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id query parameter required", http.StatusBadRequest)
		return
	}

	app, err := appRepo.Load(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(app)
}

// HandleList returns dashboard summaries. Scope is one of:
// ?user_id= (an officer's own records), ?region= (a regional view) or
// ?region=&agency= (one agency).
func HandleList(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}

	q := r.URL.Query()
	ctx := r.Context()

	var summaries []models.ApplicationSummary
	var err error
	switch {
	case q.Get("user_id") != "":
		summaries, err = appRepo.ListByOfficer(ctx, q.Get("user_id"))
	case q.Get("region") != "" && q.Get("agency") != "":
		var region, agency int
		region, err = strconv.Atoi(q.Get("region"))
		if err == nil {
			agency, err = strconv.Atoi(q.Get("agency"))
		}
		if err != nil {
			http.Error(w, "region and agency must be integers", http.StatusBadRequest)
			return
		}
		summaries, err = appRepo.ListByAgency(ctx, region, agency)
	case q.Get("region") != "":
		var region int
		region, err = strconv.Atoi(q.Get("region"))
		if err != nil {
			http.Error(w, "region must be an integer", http.StatusBadRequest)
			return
		}
		summaries, err = appRepo.ListByRegion(ctx, region)
	default:
		http.Error(w, "one of user_id, region, region+agency is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

type PhotoUploadRequest struct {
	ApplicationID string           `json:"application_id"`
	Category      string           `json:"category"`
	Comment       string           `json:"comment"`
	GPS           *models.GpsPoint `json:"gps"`
	ContentType   string           `json:"content_type"`
	PayloadBase64 string           `json:"payload_base64"`
}

type PhotoUploadResponse struct {
	URL string `json:"url"`
}

// HandlePhotoUpload stores a photo and returns its URL. A failure here
// never touches the application record; the client retries independently.
func HandlePhotoUpload(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "POST") {
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PhotoUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, err := base64.StdEncoding.DecodeString(req.PayloadBase64)
	if err != nil {
		http.Error(w, "payload_base64 is not valid base64", http.StatusBadRequest)
		return
	}

	key := req.ApplicationID + "_" + uuid.NewString()
	url, err := photoStore.Put(context.Background(), key, payload, store.PhotoMeta{
		ApplicationID: req.ApplicationID,
		Category:      req.Category,
		Comment:       req.Comment,
		GPS:           req.GPS,
		ContentType:   req.ContentType,
	})
	if err != nil {
		fmt.Printf("[APPLICATION] photo upload failed: %v\n", err)
		http.Error(w, fmt.Sprintf("photo upload failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PhotoUploadResponse{URL: url})
}

// HandlePhotoGet serves a stored photo payload: /api/photo/{key}.
func HandlePhotoGet(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}
	key := strings.TrimPrefix(r.URL.Path, "/api/photo/")
	if key == "" {
		http.Error(w, "photo key required", http.StatusBadRequest)
		return
	}

	payload, err := photoStore.Get(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if payload == nil {
		http.Error(w, "photo not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(payload)
}

// prefillReview defaults the approved terms from the requested terms the
// first time a record reaches committee, and assembles the guarantee
// description from the declared guarantees. Committee edits are never
// overwritten: the prefill only fills empty fields.
func prefillReview(app *models.LoanApplication) {
	rev := &app.Review
	if app.LoanAmount.Float() == 0 {
		return
	}
	if rev.ApprovedAmount.Float() != 0 || rev.ApprovedGuaranteeDescription != "" {
		return
	}

	rev.ApprovedAmount = app.LoanAmount
	dest := app.LoanDestination
	if app.LoanDestinationDetail != "" {
		dest += " - " + app.LoanDestinationDetail
	}
	rev.ApprovedDestination = dest
	rev.ApprovedPaymentMethod = string(app.LoanPaymentMethod)
	rev.ApprovedInterestRate = app.LoanInterestRate
	rev.ApprovedTerm = app.LoanTerm
	rev.ApprovedCommission = app.LoanCommission
	rev.ApprovedGuaranteeDescription = guaranteeDescription(app)
	if rev.ApprovalDate == "" {
		rev.ApprovalDate = time.Now().Format("2006-01-02")
	}
}

func guaranteeDescription(app *models.LoanApplication) string {
	var parts []string
	var real []string
	for _, g := range app.RealGuarantees {
		real = append(real, fmt.Sprintf("%s: %s (Valor Est: Q%.0f)", g.Type, g.Description, g.EstimatedValue.Float()))
	}
	if len(real) > 0 {
		parts = append(parts, strings.Join(real, "; "))
	}
	var fiduciary []string
	for _, f := range app.FiduciaryGuarantees {
		fiduciary = append(fiduciary, "Fiador: "+f.Name)
	}
	if len(fiduciary) > 0 {
		parts = append(parts, strings.Join(fiduciary, "; "))
	}
	return strings.Join(parts, "\n")
}
