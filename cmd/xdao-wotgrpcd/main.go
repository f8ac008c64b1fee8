package main

import (
	"crypto/ed25519"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"xdao.co/wot/chain"
	"xdao.co/wot/keys"
	"xdao.co/wot/linkrpc"
)

func main() {
	fs := flag.NewFlagSet("xdao-wotgrpcd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7710", "listen address")
	dir := fs.String("dir", "", "link store directory (required)")
	identity := fs.String("identity", "", "local identity key name (required)")
	keysDir := fs.String("keys-dir", "", "key store directory (default ~/.xdao/wot/keys)")

	_ = fs.Parse(os.Args[1:])
	if *dir == "" || *identity == "" {
		fmt.Fprintln(os.Stderr, "missing required flags: -dir and -identity")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ks, err := keys.CreateKeyStore(*keysDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	seed, err := ks.LoadSeed("", *identity, "", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load identity %q: %v\n", *identity, err)
		os.Exit(2)
	}
	priv, err := keys.PrivateKeyFromSeed(seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	store, err := chain.Open(chain.Config{
		Path:       *dir,
		PublicKey:  priv.Public().(ed25519.PublicKey),
		PrivateKey: priv,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer store.Close()

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	linkrpc.RegisterLinkStoreServer(s, &linkrpc.Server{Store: store})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		s.GracefulStop()
	}()

	logger.Info("xdao-wotgrpcd listening",
		slog.String("addr", lis.Addr().String()),
		slog.String("identity", store.Fingerprint()))
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
