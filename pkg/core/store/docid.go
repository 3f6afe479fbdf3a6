package store

import (
	"strings"

	"github.com/google/uuid"

	"microfin_intake/pkg/models"
)

// ResolveDocID picks the storage key for an application. Once a record has
// an ID it keeps it forever, even if the operation number or identity
// document changes afterwards: re-keying would silently fork the record.
//
// First save: operation number, else identity document, else a fresh draft
// token. Slashes are replaced so the ID stays path-safe.
func ResolveDocID(currentID string, app *models.LoanApplication) string {
	id := currentID
	if id == "" {
		if op := strings.TrimSpace(app.OperationNumber); op != "" {
			id = op
		} else if doc := strings.TrimSpace(app.IdentityDocument); doc != "" {
			id = doc
		} else {
			id = "draft_" + uuid.NewString()
		}
	}
	return strings.ReplaceAll(id, "/", "_")
}
