package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/andy/invoicegenius/internal/db"
	"github.com/andy/invoicegenius/internal/domain"
)

// StateKey is the fixed key the application state blob lives under.
const StateKey = "invoice_genius_v1"

// KV is the minimal key-value contract the state store needs. The
// encrypted SQLite store satisfies it; tests use in-memory fakes.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// StateStore persists the single AppState blob. It never surfaces
// storage failures to callers: loads fall back to defaults and saves
// leave the in-memory state authoritative for the session. Failures
// are logged and swallowed on purpose.
type StateStore struct {
	kv  KV
	log *zap.SugaredLogger
	now func() time.Time
}

// NewStateStore creates a state store over kv.
func NewStateStore(kv KV, log *zap.SugaredLogger) *StateStore {
	return &StateStore{kv: kv, log: log, now: time.Now}
}

// stored mirrors the persisted layout one level deep, so each section
// can be merged against its defaults independently.
type stored struct {
	Company json.RawMessage `json:"company"`
	Invoice json.RawMessage `json:"invoice"`
	Design  json.RawMessage `json:"design"`
}

// Load reads the persisted state. Absent or corrupt blobs yield the
// hardcoded defaults; a present blob is merged section by section over
// defaults so fields introduced after the blob was written pick up
// their default values.
func (s *StateStore) Load(ctx context.Context) domain.AppState {
	defaults := domain.DefaultState(s.now())

	raw, err := s.kv.Get(ctx, StateKey)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			s.log.Warnw("failed to load state, using defaults", "error", err)
		}
		return defaults
	}

	var blob stored
	if err := json.Unmarshal(raw, &blob); err != nil {
		s.log.Warnw("persisted state is corrupt, using defaults", "error", err)
		return defaults
	}

	return domain.AppState{
		Company: domain.MergeCompany(defaults.Company, blob.Company),
		Invoice: domain.MergeInvoice(defaults.Invoice, blob.Invoice),
		Design:  domain.MergeDesign(defaults.Design, blob.Design),
	}
}

// Save writes the full state. Failures are logged, never returned; the
// caller's in-memory snapshot stays the source of truth either way.
// The state is cloned before marshaling: Clone normalizes a nil item
// slice to an empty one, so an invoice with every item deleted persists
// as an empty array instead of null and does not read back as an absent
// field (which would resurrect the default sample items).
func (s *StateStore) Save(ctx context.Context, state domain.AppState) {
	raw, err := json.Marshal(state.Clone())
	if err != nil {
		s.log.Warnw("failed to serialize state", "error", err)
		return
	}
	if err := s.kv.Put(ctx, StateKey, raw); err != nil {
		s.log.Warnw("failed to save state", "error", err)
	}
}

// Reset deletes the persisted blob, returning the next load to
// defaults.
func (s *StateStore) Reset(ctx context.Context) error {
	return s.kv.Delete(ctx, StateKey)
}
