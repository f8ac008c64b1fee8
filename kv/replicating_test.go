package kv_test

import (
	"bytes"
	"errors"
	"testing"

	"xdao.co/wot/kv"
	"xdao.co/wot/kv/memkv"
	"xdao.co/wot/kv/testkit"
)

func newReplicating(t *testing.T) (*kv.Replicating, *memkv.Store, *memkv.Store) {
	t.Helper()
	a, b := memkv.New(), memkv.New()
	r := &kv.Replicating{Backends: []kv.Named{
		{Name: "a", Store: a},
		{Name: "b", Store: b},
	}}
	return r, a, b
}

func TestReplicating_Conformance(t *testing.T) {
	testkit.RunConformance(t, func(t *testing.T) kv.Store {
		t.Helper()
		r, _, _ := newReplicating(t)
		return r
	})
}

func TestReplicatingWritesAllBackends(t *testing.T) {
	r, a, b := newReplicating(t)
	if err := r.Put([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	for name, s := range map[string]*memkv.Store{"a": a, "b": b} {
		got, err := s.Get([]byte("k"))
		if err != nil {
			t.Fatalf("backend %s missing key: %v", name, err)
		}
		if !bytes.Equal(got, []byte("v")) {
			t.Fatalf("backend %s: got %q want %q", name, got, "v")
		}
	}
}

func TestReplicatingGetFallsBack(t *testing.T) {
	r, a, b := newReplicating(t)
	// Seed only the second backend; the first will miss.
	if err := b.Put([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	_ = a
	got, err := r.Get([]byte("k"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte("v")) {
		t.Fatalf("Get: got %q want %q", got, "v")
	}
}

func TestReplicatingKeepsWritingThroughFailures(t *testing.T) {
	r, a, b := newReplicating(t)
	boom := errors.New("mirror degraded")
	a.BeforePut = func(key, value []byte) error { return boom }

	err := r.Put([]byte("k"), []byte("v"))
	if !errors.Is(err, boom) {
		t.Fatalf("Put: got err=%v want wrapped injected error", err)
	}
	// The healthy mirror still received the write.
	got, gerr := b.Get([]byte("k"))
	if gerr != nil {
		t.Fatalf("healthy backend missing key: %v", gerr)
	}
	if !bytes.Equal(got, []byte("v")) {
		t.Fatalf("healthy backend: got %q want %q", got, "v")
	}
}

func TestReplicatingNoBackends(t *testing.T) {
	r := &kv.Replicating{}
	if err := r.Put([]byte("k"), []byte("v")); err == nil {
		t.Fatalf("Put with no backends succeeded")
	}
	if _, err := r.Get([]byte("k")); err == nil {
		t.Fatalf("Get with no backends succeeded")
	}
}
