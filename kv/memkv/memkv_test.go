package memkv

import (
	"errors"
	"testing"

	"xdao.co/wot/kv"
	"xdao.co/wot/kv/testkit"
)

func TestMemKV_Conformance(t *testing.T) {
	testkit.RunConformance(t, func(t *testing.T) kv.Store {
		t.Helper()
		return New()
	})
}

func TestBeforePutInjectsFailure(t *testing.T) {
	s := New()
	boom := errors.New("disk on fire")
	s.BeforePut = func(key, value []byte) error { return boom }

	if err := s.Put([]byte("k"), []byte("v")); !errors.Is(err, boom) {
		t.Fatalf("Put: got err=%v want injected error", err)
	}
	if _, err := s.Get([]byte("k")); !kv.IsNotFound(err) {
		t.Fatalf("failed Put must not apply; got err=%v", err)
	}
}

func TestScanToleratesMutationInCallback(t *testing.T) {
	s := New()
	for _, k := range []string{"a", "b", "c"} {
		if err := s.Put([]byte(k), []byte(k)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}
	err := s.Scan(nil, func(key, value []byte) error {
		return s.Delete(key)
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len after delete-during-scan: got %d want 0", s.Len())
	}
}
