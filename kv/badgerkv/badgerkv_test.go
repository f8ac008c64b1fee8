package badgerkv

import (
	"bytes"
	"testing"

	"xdao.co/wot/kv"
	"xdao.co/wot/kv/testkit"
)

func TestBadgerKV_Conformance_InMemory(t *testing.T) {
	testkit.RunConformance(t, func(t *testing.T) kv.Store {
		t.Helper()
		s, err := Open(InMemoryConfig())
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		return s
	})
}

func TestBadgerKV_Conformance_OnDisk(t *testing.T) {
	testkit.RunConformance(t, func(t *testing.T) kv.Store {
		t.Helper()
		cfg := DefaultConfig(t.TempDir())
		cfg.SyncWrites = false
		s, err := Open(cfg)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		return s
	})
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(Config{}); err == nil {
		t.Fatalf("Open accepted empty path")
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig(dir)
	cfg.SyncWrites = false

	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.Put([]byte("link/abc"), []byte("payload")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = Open(cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	got, err := s.Get([]byte("link/abc"))
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if !bytes.Equal(got, []byte("payload")) {
		t.Fatalf("Get after reopen: got %q want %q", got, "payload")
	}
}
