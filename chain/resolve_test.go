package chain

import (
	"bytes"
	"testing"
	"time"

	"xdao.co/wot/kv/memkv"
)

func TestCycleTerminates(t *testing.T) {
	local := newIdentity(t)
	root := newIdentity(t)
	a := newIdentity(t)
	b := newIdentity(t)
	clock := newFakeClock()
	s := openTestStore(t, local, clock, nil)

	// root -> a -> b -> a: a cycle with no route to the local identity.
	links := [][]byte{
		mint(t, clock, root, a.pub, time.Hour),
		mint(t, clock, a, b.pub, time.Hour),
		mint(t, clock, b, a.pub, time.Hour),
	}
	if err := s.AddChain(root.pub, links); err != nil {
		t.Fatalf("AddChain failed: %v", err)
	}
	if _, err := s.GetChain(root.pub); !IsNoPath(err) {
		t.Fatalf("GetChain: got err=%v want ErrNoPath", err)
	}
}

func TestMutualTrustCycleStillResolves(t *testing.T) {
	local := newIdentity(t)
	root := newIdentity(t)
	a := newIdentity(t)
	clock := newFakeClock()
	s := openTestStore(t, local, clock, nil)

	// root <-> a mutual trust, plus a -> local.
	if err := s.AddChain(root.pub, [][]byte{
		mint(t, clock, root, a.pub, time.Hour),
		mint(t, clock, a, root.pub, time.Hour),
	}); err != nil {
		t.Fatalf("AddChain(cycle) failed: %v", err)
	}
	if err := s.AddChain(a.pub, [][]byte{
		mint(t, clock, a, local.pub, time.Hour),
	}); err != nil {
		t.Fatalf("AddChain(a->local) failed: %v", err)
	}

	got, err := s.GetChain(root.pub)
	if err != nil {
		t.Fatalf("GetChain failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetChain: got %d links want 2", len(got))
	}
}

func TestMaxChainLengthBound(t *testing.T) {
	local := newIdentity(t)
	root := newIdentity(t)
	clock := newFakeClock()

	kvs := func() *Store {
		s, err := Open(Config{
			KV:             memkv.New(),
			PublicKey:      local.pub,
			Now:            clock.Now,
			MaxChainLength: 3,
		})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		t.Cleanup(func() { _ = s.Close() })
		return s
	}

	// A chain of exactly the bound resolves.
	s := kvs()
	hops := []identity{newIdentity(t), newIdentity(t)}
	links := [][]byte{
		mint(t, clock, root, hops[0].pub, time.Hour),
		mint(t, clock, hops[0], hops[1].pub, time.Hour),
		mint(t, clock, hops[1], local.pub, time.Hour),
	}
	if err := s.AddChain(root.pub, links); err != nil {
		t.Fatalf("AddChain failed: %v", err)
	}
	got, err := s.GetChain(root.pub)
	if err != nil {
		t.Fatalf("GetChain at bound failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("GetChain: got %d links want 3", len(got))
	}

	// One hop beyond the bound folds into ErrNoPath.
	s2 := kvs()
	hops = []identity{newIdentity(t), newIdentity(t), newIdentity(t)}
	links = [][]byte{
		mint(t, clock, root, hops[0].pub, time.Hour),
		mint(t, clock, hops[0], hops[1].pub, time.Hour),
		mint(t, clock, hops[1], hops[2].pub, time.Hour),
		mint(t, clock, hops[2], local.pub, time.Hour),
	}
	if err := s2.AddChain(root.pub, links); err != nil {
		t.Fatalf("AddChain failed: %v", err)
	}
	if _, err := s2.GetChain(root.pub); !IsNoPath(err) {
		t.Fatalf("GetChain beyond bound: got err=%v want ErrNoPath", err)
	}
}

func TestEqualLengthTieBreakIsDeterministic(t *testing.T) {
	local := newIdentity(t)
	root := newIdentity(t)
	a := newIdentity(t)
	b := newIdentity(t)
	clock := newFakeClock()

	// Two equal-length routes; the hop with the smaller public key bytes wins
	// regardless of insertion order.
	smaller, larger := a, b
	if bytes.Compare(b.pub, a.pub) < 0 {
		smaller, larger = b, a
	}

	viaSmaller := [][]byte{
		mint(t, clock, root, smaller.pub, time.Hour),
		mint(t, clock, smaller, local.pub, time.Hour),
	}
	viaLarger := [][]byte{
		mint(t, clock, root, larger.pub, time.Hour),
		mint(t, clock, larger, local.pub, time.Hour),
	}

	for name, order := range map[string][2][][]byte{
		"smaller first": {viaSmaller, viaLarger},
		"larger first":  {viaLarger, viaSmaller},
	} {
		s := openTestStore(t, local, clock, nil)
		for _, c := range order {
			if err := s.AddChain(root.pub, c); err != nil {
				t.Fatalf("%s: AddChain failed: %v", name, err)
			}
		}
		got, err := s.GetChain(root.pub)
		if err != nil {
			t.Fatalf("%s: GetChain failed: %v", name, err)
		}
		if !chainEqual(got, viaSmaller) {
			t.Fatalf("%s: tie-break not deterministic", name)
		}
	}
}

func TestResolutionSkipsIssuersWithNoEdges(t *testing.T) {
	local := newIdentity(t)
	root := newIdentity(t)
	deadEnd := newIdentity(t)
	a := newIdentity(t)
	clock := newFakeClock()
	s := openTestStore(t, local, clock, nil)

	// root -> deadEnd (no outgoing edges) and root -> a -> local.
	if err := s.AddChain(root.pub, [][]byte{
		mint(t, clock, root, deadEnd.pub, time.Hour),
	}); err != nil {
		t.Fatalf("AddChain(deadEnd) failed: %v", err)
	}
	if err := s.AddChain(root.pub, [][]byte{
		mint(t, clock, root, a.pub, time.Hour),
		mint(t, clock, a, local.pub, time.Hour),
	}); err != nil {
		t.Fatalf("AddChain(route) failed: %v", err)
	}

	got, err := s.GetChain(root.pub)
	if err != nil {
		t.Fatalf("GetChain failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetChain: got %d links want 2", len(got))
	}
}
