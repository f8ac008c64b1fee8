package linkrpc

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"xdao.co/wot/chain"
	"xdao.co/wot/kv/memkv"
	"xdao.co/wot/link"
)

func newTestClient(t *testing.T, store *chain.Store) *Client {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterLinkStoreServer(srv, &Server{Store: store})

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close() })

	return &Client{cc: cc, client: NewLinkStoreClient(cc), Timeout: 2 * time.Second}
}

func TestLinkStore_RoundTrip(t *testing.T) {
	localPub, localPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	rootPub, rootPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	store, err := chain.Open(chain.Config{
		KV:         memkv.New(),
		PublicKey:  localPub,
		PrivateKey: localPriv,
	})
	if err != nil {
		t.Fatalf("chain.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	client := newTestClient(t, store)

	key, err := client.LocalKey()
	if err != nil {
		t.Fatalf("LocalKey: %v", err)
	}
	if !bytes.Equal(key, localPub) {
		t.Fatalf("LocalKey mismatch")
	}

	raw, err := link.SignEd25519(rootPriv, localPub, time.Now().Add(time.Hour), link.HashSHA256)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	if err := client.AddChain(rootPub, [][]byte{raw}); err != nil {
		t.Fatalf("AddChain: %v", err)
	}

	got, err := client.GetChain(rootPub)
	if err != nil {
		t.Fatalf("GetChain: %v", err)
	}
	if len(got) != 1 || !bytes.Equal(got[0], raw) {
		t.Fatalf("GetChain returned wrong chain")
	}
}

func TestLinkStore_NoPath(t *testing.T) {
	localPub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	strangerPub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	store, err := chain.Open(chain.Config{KV: memkv.New(), PublicKey: localPub})
	if err != nil {
		t.Fatalf("chain.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	client := newTestClient(t, store)
	if _, err := client.GetChain(strangerPub); !chain.IsNoPath(err) {
		t.Fatalf("GetChain: got err=%v want ErrNoPath", err)
	}
}

func TestLinkStore_MalformedLink(t *testing.T) {
	localPub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	rootPub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	store, err := chain.Open(chain.Config{KV: memkv.New(), PublicKey: localPub})
	if err != nil {
		t.Fatalf("chain.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	client := newTestClient(t, store)
	if err := client.AddChain(rootPub, [][]byte{[]byte("not a link")}); err == nil {
		t.Fatalf("AddChain accepted a malformed link")
	}
}
