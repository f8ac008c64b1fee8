package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"xdao.co/wot/chain"
	"xdao.co/wot/keyid"
	"xdao.co/wot/keys"
	"xdao.co/wot/link"
	"xdao.co/wot/linkrpc"
	"xdao.co/wot/wire"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "link":
		return cmdLink(args[1:], out, errOut)
	case "fingerprint":
		return cmdFingerprint(args[1:], out, errOut)
	case "store":
		return cmdStore(args[1:], out, errOut)
	case "remote":
		return cmdRemote(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-wot: web-of-trust link store CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-wot key init --name <name> [--seed-hex <64hex>] [--force]")
	fmt.Fprintln(w, "  xdao-wot key derive --from <name> --role <role> [--force]")
	fmt.Fprintln(w, "  xdao-wot key list")
	fmt.Fprintln(w, "  xdao-wot key export --name <name> [--role <role>]")
	fmt.Fprintln(w, "  xdao-wot link sign --subject <key> (--seed-hex <64hex> | --signer <name> [--signer-role <role>] | --key-file <path>) [--ttl <dur>] [--hash-alg <alg>] [--out <file>]")
	fmt.Fprintln(w, "  xdao-wot link show <file>")
	fmt.Fprintln(w, "  xdao-wot link verify --issuer <key> <file>")
	fmt.Fprintln(w, "  xdao-wot fingerprint <key>")
	fmt.Fprintln(w, "  xdao-wot store add --dir <dir> --identity <name> --root <key> <link-file> ...")
	fmt.Fprintln(w, "  xdao-wot store resolve --dir <dir> --identity <name> --root <key> [--out <file>]")
	fmt.Fprintln(w, "  xdao-wot remote add --target <addr> --root <key> <link-file> ...")
	fmt.Fprintln(w, "  xdao-wot remote resolve --target <addr> --root <key> [--out <file>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - <key> is a key string: ed25519:<base64 pubkey>")
	fmt.Fprintln(w, "  - --seed-hex must be 32 bytes (64 hex chars) ed25519 seed")
	fmt.Fprintln(w, "  - keys are stored under ~/.xdao/wot/keys/<name> (0600 seed files)")
	fmt.Fprintln(w, "  - link sign writes raw link bytes to --out or stdout")
	fmt.Fprintln(w, "  - resolve writes the chain as length-prefixed frames to --out or stdout")
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func parseHashAlg(name string) (link.HashAlg, error) {
	switch name {
	case "", "sha256":
		return link.HashSHA256, nil
	case "sha512":
		return link.HashSHA512, nil
	case "sha3-256":
		return link.HashSHA3256, nil
	default:
		return 0, fmt.Errorf("unsupported hash algorithm: %q", name)
	}
}

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printKeyUsage(errOut)
		return 2
	}
	switch args[0] {
	case "init":
		return cmdKeyInit(args[1:], out, errOut)
	case "derive":
		return cmdKeyDerive(args[1:], out, errOut)
	case "list":
		return cmdKeyList(args[1:], out, errOut)
	case "export":
		return cmdKeyExport(args[1:], out, errOut)
	case "help", "-h", "--help":
		printKeyUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown key subcommand: %s\n\n", args[0])
		printKeyUsage(errOut)
		return 2
	}
}

func printKeyUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-wot key: minimal local key management")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-wot key init --name <name> [--seed-hex <64hex>] [--force]")
	fmt.Fprintln(w, "  xdao-wot key derive --from <name> --role <role> [--force]")
	fmt.Fprintln(w, "  xdao-wot key list")
	fmt.Fprintln(w, "  xdao-wot key export --name <name> [--role <role>]")
}

func cmdKeyInit(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key init", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var seedHex string
	var force bool

	fs.StringVar(&name, "name", "", "Key name (directory under ~/.xdao/wot/keys)")
	fs.StringVar(&seedHex, "seed-hex", "", "Optional ed25519 seed as 64 hex chars (for reproducible demos)")
	fs.BoolVar(&force, "force", false, "Overwrite existing key files")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	if err := keys.CheckKeyName(name); err != nil {
		fmt.Fprintf(errOut, "invalid --name: %v\n", err)
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}

	var seed []byte
	if seedHex != "" {
		var derr error
		seed, derr = keys.ParseSeedHex(seedHex)
		if derr != nil {
			fmt.Fprintf(errOut, "invalid --seed-hex: %v\n", derr)
			return 2
		}
	} else {
		seed, err = keys.NewSeed(rand.Reader)
		if err != nil {
			fmt.Fprintf(errOut, "rand: %v\n", err)
			return 1
		}
	}

	keyString, rootPath, err := ks.InitializeRootKey(name, seed, force)
	if err != nil {
		fmt.Fprintf(errOut, "write key: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Created root key: %s\n", keyString)
	fmt.Fprintf(out, "Stored at: %s\n", rootPath)
	return 0
}

func cmdKeyDerive(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key derive", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var from string
	var role string
	var force bool

	fs.StringVar(&from, "from", "", "Root key name")
	fs.StringVar(&role, "role", "", "Role identifier (e.g. laptop, ci)")
	fs.BoolVar(&force, "force", false, "Overwrite existing key files")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if from == "" {
		fmt.Fprintln(errOut, "missing --from")
		return 2
	}
	if role == "" {
		fmt.Fprintln(errOut, "missing --role")
		return 2
	}
	if err := keys.CheckKeyName(from); err != nil {
		fmt.Fprintf(errOut, "invalid --from: %v\n", err)
		return 2
	}
	if err := keys.CheckRole(role); err != nil {
		fmt.Fprintf(errOut, "invalid --role: %v\n", err)
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	keyString, rolePath, err := ks.DeriveKeyFromRole(from, role, force)
	if err != nil {
		fmt.Fprintf(errOut, "derive role key: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Created role key: %s\n", keyString)
	fmt.Fprintf(out, "Stored at: %s\n", rolePath)
	return 0
}

func cmdKeyExport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key export", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var role string

	fs.StringVar(&name, "name", "", "Key name")
	fs.StringVar(&role, "role", "", "Optional role (if set, exports derived role key)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	if err := keys.CheckKeyName(name); err != nil {
		fmt.Fprintf(errOut, "invalid --name: %v\n", err)
		return 2
	}
	if role != "" {
		if err := keys.CheckRole(role); err != nil {
			fmt.Fprintf(errOut, "invalid --role: %v\n", err)
			return 2
		}
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	keyString, err := ks.ExportKey(name, role)
	if err != nil {
		fmt.Fprintf(errOut, "export key: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, keyString)
	return 0
}

func cmdKeyList(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key list", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	entries, err := ks.ListKeys()
	if err != nil {
		fmt.Fprintf(errOut, "list keys: %v\n", err)
		return 1
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s\n", e.Identifier)
		for _, r := range e.Roles {
			fmt.Fprintf(out, "  - %s\n", r)
		}
	}
	return 0
}

func cmdLink(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-wot link <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: sign, show, verify")
		return 2
	}
	switch args[0] {
	case "sign":
		return cmdLinkSign(args[1:], out, errOut)
	case "show":
		return cmdLinkShow(args[1:], out, errOut)
	case "verify":
		return cmdLinkVerify(args[1:], out, errOut)
	default:
		fmt.Fprintf(errOut, "unknown link subcommand: %s\n", args[0])
		return 2
	}
}

func cmdLinkSign(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("link sign", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var subject string
	var seedHex string
	var signerName string
	var signerRole string
	var keyFile string
	var hashAlgName string
	var outPath string
	var ttl time.Duration

	fs.StringVar(&subject, "subject", "", "Subject key string (ed25519:<base64>)")
	fs.StringVar(&seedHex, "seed-hex", "", "ed25519 seed as 64 hex chars")
	fs.StringVar(&signerName, "signer", "", "Use a stored key by name (from 'xdao-wot key init')")
	fs.StringVar(&signerRole, "signer-role", "", "When using --signer, optionally use a derived role key")
	fs.StringVar(&keyFile, "key-file", "", "Path to a seed file (hex) created by 'xdao-wot key init/derive'")
	fs.StringVar(&hashAlgName, "hash-alg", "sha256", "Hash algorithm: sha256, sha512, sha3-256")
	fs.StringVar(&outPath, "out", "", "Write raw link bytes to this file instead of stdout")
	fs.DurationVar(&ttl, "ttl", 30*24*time.Hour, "Link validity window")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if subject == "" {
		fmt.Fprintln(errOut, "missing --subject")
		return 2
	}
	if seedHex == "" && signerName == "" && keyFile == "" {
		fmt.Fprintln(errOut, "missing signer: use --seed-hex, --signer, or --key-file")
		return 2
	}
	if seedHex != "" && (signerName != "" || keyFile != "") {
		fmt.Fprintln(errOut, "conflicting signer flags: --seed-hex cannot be combined with --signer or --key-file")
		return 2
	}
	if signerName != "" && keyFile != "" {
		fmt.Fprintln(errOut, "conflicting signer flags: --signer cannot be combined with --key-file")
		return 2
	}
	if ttl <= 0 {
		fmt.Fprintln(errOut, "invalid --ttl: must be positive")
		return 2
	}

	subjectKey, err := keys.ParseKey(subject)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --subject: %v\n", err)
		return 2
	}
	hashAlg, err := parseHashAlg(hashAlgName)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --hash-alg: %v\n", err)
		return 2
	}

	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return 1
	}
	seed, err := ks.LoadSeed(seedHex, signerName, signerRole, keyFile)
	if err != nil {
		fmt.Fprintf(errOut, "invalid signer: %v\n", err)
		return 2
	}

	raw, err := keys.SignLinkWithSeed(seed, subjectKey, time.Now().Add(ttl), hashAlg)
	if err != nil {
		fmt.Fprintf(errOut, "sign link: %v\n", err)
		return 1
	}

	fmt.Fprintf(errOut, "Issuer-Key: %s\n", keys.KeyStringFromSeed(seed))
	fmt.Fprintf(errOut, "Subject-FP: %s\n", keyid.Fingerprint(subjectKey))
	if outPath != "" {
		if err := os.WriteFile(outPath, raw, 0o644); err != nil {
			fmt.Fprintf(errOut, "write %s: %v\n", filepath.Base(outPath), err)
			return 1
		}
		return 0
	}
	_, _ = out.Write(raw)
	return 0
}

func cmdLinkShow(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("link show", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: xdao-wot link show <file>")
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(fs.Arg(0)), err)
		return 1
	}
	l, err := link.Parse(b)
	if err != nil {
		fmt.Fprintf(errOut, "invalid link: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Sig-Alg:    %s\n", l.SigAlg)
	fmt.Fprintf(out, "Hash-Alg:   %s\n", l.HashAlg)
	fmt.Fprintf(out, "Subject-FP: %s\n", keyid.Fingerprint(l.SubjectKey))
	fmt.Fprintf(out, "Expiry:     %s\n", l.Expiry.Format(time.RFC3339))
	return 0
}

func cmdLinkVerify(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("link verify", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var issuer string
	fs.StringVar(&issuer, "issuer", "", "Issuer key string (ed25519:<base64>)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if issuer == "" {
		fmt.Fprintln(errOut, "missing --issuer")
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: xdao-wot link verify --issuer <key> <file>")
		return 2
	}
	issuerKey, err := keys.ParseKey(issuer)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --issuer: %v\n", err)
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(fs.Arg(0)), err)
		return 1
	}
	l, err := link.Parse(b)
	if err != nil {
		fmt.Fprintf(errOut, "invalid link: %v\n", err)
		return 1
	}
	if err := l.Verify(issuerKey); err != nil {
		fmt.Fprintf(errOut, "verify: %v\n", err)
		return 1
	}
	if l.Expired(time.Now()) {
		fmt.Fprintln(errOut, "warning: link has expired")
	}
	_, _ = fmt.Fprintln(out, "OK")
	return 0
}

func cmdFingerprint(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("fingerprint", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: xdao-wot fingerprint <key>")
		return 2
	}
	pub, err := keys.ParseKey(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid key: %v\n", err)
		return 2
	}
	_, _ = fmt.Fprintln(out, keyid.Fingerprint(pub))
	return 0
}

func openLocalStore(dir, identityName string, errOut io.Writer) (*chain.Store, int) {
	if dir == "" {
		fmt.Fprintln(errOut, "missing --dir")
		return nil, 2
	}
	if identityName == "" {
		fmt.Fprintln(errOut, "missing --identity")
		return nil, 2
	}
	ks, err := keys.CreateKeyStore("")
	if err != nil {
		fmt.Fprintf(errOut, "keys: %v\n", err)
		return nil, 1
	}
	seed, err := ks.LoadSeed("", identityName, "", "")
	if err != nil {
		fmt.Fprintf(errOut, "load identity: %v\n", err)
		return nil, 1
	}
	priv, err := keys.PrivateKeyFromSeed(seed)
	if err != nil {
		fmt.Fprintf(errOut, "load identity: %v\n", err)
		return nil, 1
	}
	s, err := chain.Open(chain.Config{
		Path:       dir,
		PublicKey:  priv.Public().(ed25519.PublicKey),
		PrivateKey: priv,
	})
	if err != nil {
		fmt.Fprintf(errOut, "open store: %v\n", err)
		return nil, 1
	}
	return s, 0
}

func readLinkFiles(paths []string, errOut io.Writer) ([][]byte, int) {
	links := make([][]byte, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(p), err)
			return nil, 1
		}
		links = append(links, b)
	}
	return links, 0
}

func writeChain(links [][]byte, outPath string, out io.Writer, errOut io.Writer) int {
	encoded := wire.Encode(links...)
	if outPath != "" {
		if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
			fmt.Fprintf(errOut, "write %s: %v\n", filepath.Base(outPath), err)
			return 1
		}
		return 0
	}
	_, _ = out.Write(encoded)
	return 0
}

func cmdStore(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-wot store <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: add, resolve")
		return 2
	}
	switch args[0] {
	case "add":
		return cmdStoreAdd(args[1:], out, errOut)
	case "resolve":
		return cmdStoreResolve(args[1:], out, errOut)
	default:
		fmt.Fprintf(errOut, "unknown store subcommand: %s\n", args[0])
		return 2
	}
}

func cmdStoreAdd(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("store add", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var dir string
	var identityName string
	var root string

	fs.StringVar(&dir, "dir", "", "Link store directory")
	fs.StringVar(&identityName, "identity", "", "Local identity key name")
	fs.StringVar(&root, "root", "", "Root key string the chain starts from")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if root == "" {
		fmt.Fprintln(errOut, "missing --root")
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(errOut, "usage: xdao-wot store add --dir <dir> --identity <name> --root <key> <link-file> ...")
		return 2
	}
	rootKey, err := keys.ParseKey(root)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --root: %v\n", err)
		return 2
	}
	links, code := readLinkFiles(fs.Args(), errOut)
	if code != 0 {
		return code
	}

	s, code := openLocalStore(dir, identityName, errOut)
	if code != 0 {
		return code
	}
	defer s.Close()

	if err := s.AddChain(rootKey, links); err != nil {
		fmt.Fprintf(errOut, "add chain: %v\n", err)
		return 1
	}
	s.Flush()
	fmt.Fprintf(out, "Added %d link(s); store now indexes %d\n", len(links), s.Len())
	return 0
}

func cmdStoreResolve(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("store resolve", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var dir string
	var identityName string
	var root string
	var outPath string

	fs.StringVar(&dir, "dir", "", "Link store directory")
	fs.StringVar(&identityName, "identity", "", "Local identity key name")
	fs.StringVar(&root, "root", "", "Root key string to resolve from")
	fs.StringVar(&outPath, "out", "", "Write the chain frames to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if root == "" {
		fmt.Fprintln(errOut, "missing --root")
		return 2
	}
	rootKey, err := keys.ParseKey(root)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --root: %v\n", err)
		return 2
	}

	s, code := openLocalStore(dir, identityName, errOut)
	if code != 0 {
		return code
	}
	defer s.Close()

	links, err := s.GetChain(rootKey)
	if err != nil {
		fmt.Fprintf(errOut, "resolve: %v\n", err)
		return 1
	}
	printChainSummary(links, errOut)
	return writeChain(links, outPath, out, errOut)
}

func printChainSummary(links [][]byte, errOut io.Writer) {
	fmt.Fprintf(errOut, "Chain: %d link(s)\n", len(links))
	for i, raw := range links {
		l, err := link.Parse(raw)
		if err != nil {
			continue
		}
		fmt.Fprintf(errOut, "  %d. -> %s (expires %s)\n", i+1, keyid.Fingerprint(l.SubjectKey), l.Expiry.Format(time.RFC3339))
	}
}

func cmdRemote(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: xdao-wot remote <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: add, resolve")
		return 2
	}
	switch args[0] {
	case "add":
		return cmdRemoteAdd(args[1:], out, errOut)
	case "resolve":
		return cmdRemoteResolve(args[1:], out, errOut)
	default:
		fmt.Fprintf(errOut, "unknown remote subcommand: %s\n", args[0])
		return 2
	}
}

func dialRemote(target string, errOut io.Writer) (*linkrpc.Client, int) {
	if target == "" {
		fmt.Fprintln(errOut, "missing --target")
		return nil, 2
	}
	client, err := linkrpc.Dial(target, linkrpc.DialOptions{Timeout: 10 * time.Second})
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", target, err)
		return nil, 1
	}
	client.Timeout = 30 * time.Second
	return client, 0
}

func cmdRemoteAdd(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("remote add", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var target string
	var root string

	fs.StringVar(&target, "target", "", "Daemon address (host:port)")
	fs.StringVar(&root, "root", "", "Root key string the chain starts from")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if root == "" {
		fmt.Fprintln(errOut, "missing --root")
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(errOut, "usage: xdao-wot remote add --target <addr> --root <key> <link-file> ...")
		return 2
	}
	rootKey, err := keys.ParseKey(root)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --root: %v\n", err)
		return 2
	}
	links, code := readLinkFiles(fs.Args(), errOut)
	if code != 0 {
		return code
	}

	client, code := dialRemote(target, errOut)
	if code != 0 {
		return code
	}
	defer client.Close()

	if err := client.AddChain(rootKey, links); err != nil {
		fmt.Fprintf(errOut, "add chain: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Added %d link(s)\n", len(links))
	return 0
}

func cmdRemoteResolve(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("remote resolve", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var target string
	var root string
	var outPath string

	fs.StringVar(&target, "target", "", "Daemon address (host:port)")
	fs.StringVar(&root, "root", "", "Root key string to resolve from")
	fs.StringVar(&outPath, "out", "", "Write the chain frames to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if root == "" {
		fmt.Fprintln(errOut, "missing --root")
		return 2
	}
	rootKey, err := keys.ParseKey(root)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --root: %v\n", err)
		return 2
	}

	client, code := dialRemote(target, errOut)
	if code != 0 {
		return code
	}
	defer client.Close()

	links, err := client.GetChain(rootKey)
	if err != nil {
		fmt.Fprintf(errOut, "resolve: %v\n", err)
		return 1
	}
	printChainSummary(links, errOut)
	return writeChain(links, outPath, out, errOut)
}
