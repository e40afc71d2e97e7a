package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/andy/invoicegenius/internal/db"
	"github.com/andy/invoicegenius/internal/domain"
)

// mockKV is an in-memory KV with injectable failures.
type mockKV struct {
	data    map[string][]byte
	getErr  error
	putErr  error
	putKeys []string
}

func newMockKV() *mockKV {
	return &mockKV{data: map[string][]byte{}}
}

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockKV) Put(ctx context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	m.putKeys = append(m.putKeys, key)
	return nil
}

func (m *mockKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func newTestStore(kv KV) *StateStore {
	s := NewStateStore(kv, zap.NewNop().Sugar())
	s.now = func() time.Time {
		return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	}
	return s
}

func TestLoadAbsentReturnsDefaults(t *testing.T) {
	s := newTestStore(newMockKV())

	state := s.Load(context.Background())

	if state.Company.Name != "Acme Corp" {
		t.Errorf("expected default company, got %q", state.Company.Name)
	}
	if state.Invoice.Number != "INV-001" {
		t.Errorf("expected default invoice number, got %q", state.Invoice.Number)
	}
	if len(state.Invoice.Items) != 2 {
		t.Errorf("expected 2 sample items, got %d", len(state.Invoice.Items))
	}
	if state.Design.Template != domain.TemplateModern {
		t.Errorf("expected modern template, got %q", state.Design.Template)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := newMockKV()
	s := newTestStore(kv)
	ctx := context.Background()

	state := s.Load(ctx)
	state.Company.Name = "Roundtrip Inc"
	state.Invoice.Items = nil
	state.Design.ColorTheme = domain.ThemeEmerald
	s.Save(ctx, state)

	if len(kv.putKeys) != 1 || kv.putKeys[0] != StateKey {
		t.Fatalf("expected one save under %q, got %v", StateKey, kv.putKeys)
	}

	loaded := s.Load(ctx)
	if loaded.Company.Name != "Roundtrip Inc" {
		t.Errorf("expected saved company, got %q", loaded.Company.Name)
	}
	if len(loaded.Invoice.Items) != 0 {
		t.Errorf("deleted items came back: %d", len(loaded.Invoice.Items))
	}
	if loaded.Design.ColorTheme != domain.ThemeEmerald {
		t.Errorf("expected emerald theme, got %q", loaded.Design.ColorTheme)
	}
}

func TestSaveNilItemsPersistsEmptyArray(t *testing.T) {
	kv := newMockKV()
	s := newTestStore(kv)
	ctx := context.Background()

	state := s.Load(ctx)
	state.Invoice.Items = nil
	s.Save(ctx, state)

	// A nil slice must not serialize as null: null reads back as an
	// absent field and the merge would backfill the sample items.
	var blob struct {
		Invoice struct {
			Items json.RawMessage `json:"items"`
		} `json:"invoice"`
	}
	if err := json.Unmarshal(kv.data[StateKey], &blob); err != nil {
		t.Fatalf("saved blob unparseable: %v", err)
	}
	if string(blob.Invoice.Items) != "[]" {
		t.Errorf("expected items persisted as [], got %s", blob.Invoice.Items)
	}

	loaded := s.Load(ctx)
	if len(loaded.Invoice.Items) != 0 {
		t.Errorf("deleted items came back: %d", len(loaded.Invoice.Items))
	}
}

func TestLoadCorruptBlobReturnsDefaults(t *testing.T) {
	kv := newMockKV()
	kv.data[StateKey] = []byte(`{not json at all`)
	s := newTestStore(kv)

	state := s.Load(context.Background())

	if state.Company.Name != "Acme Corp" {
		t.Errorf("expected defaults on corrupt blob, got %q", state.Company.Name)
	}
}

func TestLoadStorageErrorReturnsDefaults(t *testing.T) {
	kv := newMockKV()
	kv.getErr = errors.New("disk on fire")
	s := newTestStore(kv)

	state := s.Load(context.Background())

	if state.Company.Name != "Acme Corp" {
		t.Errorf("expected defaults on storage error, got %q", state.Company.Name)
	}
}

func TestLoadPartialBlobMergesOverDefaults(t *testing.T) {
	kv := newMockKV()
	blob, _ := json.Marshal(map[string]any{
		"invoice": map[string]any{"number": "INV-042"},
	})
	kv.data[StateKey] = blob
	s := newTestStore(kv)

	state := s.Load(context.Background())

	if state.Invoice.Number != "INV-042" {
		t.Errorf("expected stored number, got %q", state.Invoice.Number)
	}
	if state.Invoice.Currency != "USD" {
		t.Errorf("expected default currency for absent field, got %q", state.Invoice.Currency)
	}
	if state.Company.Name != "Acme Corp" {
		t.Errorf("expected default company for absent section, got %q", state.Company.Name)
	}
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	kv := newMockKV()
	kv.putErr = errors.New("readonly filesystem")
	s := newTestStore(kv)

	// Must not panic or surface the error
	s.Save(context.Background(), domain.DefaultState(time.Now()))
}

func TestResetDeletesBlob(t *testing.T) {
	kv := newMockKV()
	s := newTestStore(kv)
	ctx := context.Background()

	state := s.Load(ctx)
	state.Company.Name = "Ephemeral"
	s.Save(ctx, state)

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	loaded := s.Load(ctx)
	if loaded.Company.Name != "Acme Corp" {
		t.Errorf("expected defaults after reset, got %q", loaded.Company.Name)
	}
}
