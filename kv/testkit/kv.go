// Package testkit exercises the kv.Store contract against any backend.
package testkit

import (
	"bytes"
	"testing"

	"xdao.co/wot/kv"
)

// NewStore constructs a fresh, empty store for a test.
// The returned store MUST be isolated from other tests.
type NewStore func(t *testing.T) kv.Store

// RunConformance runs the kv.Store contract suite against newStore.
func RunConformance(t *testing.T, newStore NewStore) {
	t.Helper()

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		if err := s.Put([]byte("k1"), []byte("v1")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := s.Get([]byte("k1"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, []byte("v1")) {
			t.Fatalf("Get: got %q want %q", got, "v1")
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		_, err := s.Get([]byte("absent"))
		if !kv.IsNotFound(err) {
			t.Fatalf("Get missing: got err=%v want ErrNotFound", err)
		}
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		if err := s.Put([]byte("k"), []byte("old")); err != nil {
			t.Fatalf("Put(old) failed: %v", err)
		}
		if err := s.Put([]byte("k"), []byte("new")); err != nil {
			t.Fatalf("Put(new) failed: %v", err)
		}
		got, err := s.Get([]byte("k"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, []byte("new")) {
			t.Fatalf("Get after overwrite: got %q want %q", got, "new")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		if err := s.Put([]byte("k"), []byte("v")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := s.Delete([]byte("k")); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := s.Get([]byte("k")); !kv.IsNotFound(err) {
			t.Fatalf("Get after delete: got err=%v want ErrNotFound", err)
		}
		// Deleting an absent key is not an error.
		if err := s.Delete([]byte("k")); err != nil {
			t.Fatalf("Delete absent failed: %v", err)
		}
	})

	t.Run("ScanOrderAndPrefix", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		puts := map[string]string{
			"link/b": "2",
			"link/a": "1",
			"link/c": "3",
			"meta/x": "9",
		}
		for k, v := range puts {
			if err := s.Put([]byte(k), []byte(v)); err != nil {
				t.Fatalf("Put(%s) failed: %v", k, err)
			}
		}

		var keys []string
		err := s.Scan([]byte("link/"), func(key, value []byte) error {
			keys = append(keys, string(key))
			return nil
		})
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		want := []string{"link/a", "link/b", "link/c"}
		if len(keys) != len(want) {
			t.Fatalf("Scan keys: got %v want %v", keys, want)
		}
		for i := range want {
			if keys[i] != want[i] {
				t.Fatalf("Scan order: got %v want %v", keys, want)
			}
		}
	})

	t.Run("CloseIdempotent", func(t *testing.T) {
		s := newStore(t)
		if err := s.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("second Close failed: %v", err)
		}
		if err := s.Put([]byte("k"), []byte("v")); err == nil {
			t.Fatalf("Put after Close succeeded")
		}
	})
}
