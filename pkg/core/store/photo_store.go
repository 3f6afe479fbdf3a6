package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"microfin_intake/pkg/models"
)

// PhotoStore keeps client photo payloads.
// Supports Hybrid Vault: DB (Primary) + File System (Fallback/Local)
type PhotoStore struct {
	pool    *pgxpool.Pool
	fileDir string
	baseURL string
}

// PhotoMeta is the capture metadata stored alongside the payload.
type PhotoMeta struct {
	ApplicationID string           `json:"application_id"`
	Category      string           `json:"category"`
	Comment       string           `json:"comment"`
	GPS           *models.GpsPoint `json:"gps"`
	ContentType   string           `json:"content_type"`
	UploadedAt    time.Time        `json:"uploaded_at"`
}

// NewPhotoStore creates a photo store.
// If pool is nil, it falls back to file storage in the specified directory.
// If dir is empty too, it defaults to a local vault directory.
func NewPhotoStore(pool *pgxpool.Pool, dir, baseURL string) *PhotoStore {
	if pool == nil && dir == "" {
		dir = filepath.Join(".vault", "photos")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check PhotoStore dir: %v\n", err)
		}
	}
	if baseURL == "" {
		baseURL = "/api/photo"
	}
	return &PhotoStore{pool: pool, fileDir: dir, baseURL: baseURL}
}

// Put stores a photo payload under a sanitized key and returns the URL the
// application record should reference. A failed upload returns an error and
// stores nothing; saving the application itself must not depend on it.
//
// Schema assumption:
// CREATE TABLE IF NOT EXISTS photos (
//   key TEXT PRIMARY KEY,
//   application_id TEXT,
//   meta JSONB,
//   payload BYTEA,
//   created_at TIMESTAMPTZ DEFAULT NOW()
// );
func (s *PhotoStore) Put(ctx context.Context, key string, payload []byte, meta PhotoMeta) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("empty photo payload")
	}
	safeKey := s.sanitizeKey(key)
	meta.UploadedAt = time.Now()

	if s.pool != nil {
		metaJSON, err := json.Marshal(meta)
		if err != nil {
			return "", fmt.Errorf("failed to marshal photo meta: %w", err)
		}
		query := `
			INSERT INTO photos (key, application_id, meta, payload)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (key)
			DO UPDATE SET meta = EXCLUDED.meta, payload = EXCLUDED.payload
		`
		if _, err := s.pool.Exec(ctx, query, safeKey, meta.ApplicationID, metaJSON, payload); err != nil {
			return "", fmt.Errorf("failed to save photo to db: %w", err)
		}
		return s.url(safeKey), nil
	}

	if s.fileDir != "" {
		if err := os.WriteFile(s.filePath(safeKey), payload, 0644); err != nil {
			return "", fmt.Errorf("failed to save photo to file vault: %w", err)
		}
		metaJSON, _ := json.Marshal(meta)
		if err := os.WriteFile(s.filePath(safeKey)+".meta.json", metaJSON, 0644); err != nil {
			fmt.Printf("[WARNING] photo meta not written for %s: %v\n", safeKey, err)
		}
		return s.url(safeKey), nil
	}

	return "", fmt.Errorf("photo store has no backend configured")
}

// Get retrieves a photo payload by key. A missing photo returns nil bytes
// and no error, mirroring a cache miss.
func (s *PhotoStore) Get(ctx context.Context, key string) ([]byte, error) {
	safeKey := s.sanitizeKey(key)

	if s.pool != nil {
		query := `SELECT payload FROM photos WHERE key = $1 LIMIT 1`
		var payload []byte
		err := s.pool.QueryRow(ctx, query, safeKey).Scan(&payload)
		if err != nil {
			return nil, nil
		}
		return payload, nil
	}

	if s.fileDir != "" {
		payload, err := os.ReadFile(s.filePath(safeKey))
		if err != nil {
			return nil, nil
		}
		return payload, nil
	}

	return nil, nil
}

// Exists checks whether a photo is already stored.
func (s *PhotoStore) Exists(ctx context.Context, key string) bool {
	safeKey := s.sanitizeKey(key)
	if s.pool != nil {
		query := `SELECT 1 FROM photos WHERE key = $1 LIMIT 1`
		var one int
		if err := s.pool.QueryRow(ctx, query, safeKey).Scan(&one); err == nil {
			return true
		}
	}
	if s.fileDir != "" {
		if _, err := os.Stat(s.filePath(safeKey)); err == nil {
			return true
		}
	}
	return false
}

func (s *PhotoStore) sanitizeKey(key string) string {
	key = strings.ReplaceAll(key, "/", "_")
	key = strings.ReplaceAll(key, "..", "_")
	return key
}

func (s *PhotoStore) filePath(safeKey string) string {
	return filepath.Join(s.fileDir, safeKey+".bin")
}

func (s *PhotoStore) url(safeKey string) string {
	return s.baseURL + "/" + safeKey
}
