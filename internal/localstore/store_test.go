package localstore

import (
	"testing"

	"github.com/spf13/afero"
)

func TestStoreRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := Open(fs, "/state/state.json")

	if err := s.Set(KeyAccessToken, "tok-123"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(KeyCartItems, []int{1, 2, 3}); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened := Open(fs, "/state/state.json")
	if got := reopened.GetString(KeyAccessToken); got != "tok-123" {
		t.Fatalf("expected token round trip, got %q", got)
	}
	var items []int
	if !reopened.GetJSON(KeyCartItems, &items) || len(items) != 3 {
		t.Fatalf("expected cart items round trip, got %v", items)
	}
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	s := Open(afero.NewMemMapFs(), "/nope/state.json")
	if _, ok := s.Get(KeyAccessToken); ok {
		t.Fatalf("expected empty store")
	}
}

func TestStoreCorruptFileIsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/state.json", []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := Open(fs, "/state.json")
	if _, ok := s.Get(KeyAccessToken); ok {
		t.Fatalf("expected empty store for corrupt file")
	}
	if err := s.Set(KeyAccessToken, "tok"); err != nil {
		t.Fatalf("set after corrupt load: %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := Open(fs, "/state.json")
	if err := s.Set(KeyRefreshToken, "r1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Delete(KeyRefreshToken); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := s.Get(KeyRefreshToken); ok {
		t.Fatalf("expected key removed")
	}
	if err := s.Delete(KeyRefreshToken); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}
