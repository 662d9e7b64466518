// Command stampctl is a CLI client for the stamp card service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	u "github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/stampcard/gen/go/stampcard/v1"
	"github.com/and161185/stampcard/internal/auth"
	"github.com/and161185/stampcard/internal/model"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "stampctl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stampctl")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tok string, exp time.Time) error {
	_ = os.MkdirAll(cfgDir(), 0o700)
	f, err := os.OpenFile(tokenPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{AccessToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.AccessToken, nil
}

// tokenExpiry reads exp from a bearer token without verifying it.
func tokenExpiry(tok string) (time.Time, error) {
	var claims auth.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no exp")
	}
	return claims.ExpiresAt.Time, nil
}

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

func loadTLS(caPath string, skipVerify bool) (credentials.TransportCredentials, error) {
	if skipVerify {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

type dialOpts struct {
	addr      string
	caPath    string
	insecure  bool
	plaintext bool
	bearer    string
}

func dial(ctx context.Context, o dialOpts) (*grpc.ClientConn, pb.StampCardClient, error) {
	var creds credentials.TransportCredentials
	if o.plaintext {
		creds = insecure.NewCredentials()
	} else {
		var err error
		if creds, err = loadTLS(o.caPath, o.insecure); err != nil {
			return nil, nil, err
		}
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if o.bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: o.bearer, secure: !o.plaintext}))
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(ctx, o.addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewStampCardClient(cc), nil
}

// ---- utils ----

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

func printJSON(v any) {
	if m, ok := v.(proto.Message); ok {
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}.Marshal(m)
		if err != nil {
			fail(err)
		}
		fmt.Println(string(b))
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func usage() {
	fmt.Fprintf(os.Stderr, `stampctl CLI
Usage:
  stampctl -addr HOST:PORT [-cacert file | -insecure | -plaintext] [-token T] <cmd> [args]

Commands:
  version
  dev-token  -key <jwt key> -role admin|barista|customer -shop <uuid> [-sub <uuid>] [-ttl 1h]
  login      -token <jwt>                          (saves token)
  mint                                             (customer: display token)
  register                                         (customer: create card)
  card                                             (customer: show card)
  scan       <token | ->                           (staff)
  history    [-limit n] [-offset n]                (admin)
  void       -card <uuid>                          (admin)
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands and configures TLS/auth for RPC calls.
func main() {
	// global flags
	addr := flag.String("addr", "localhost:8443", "server addr")
	caPath := flag.String("cacert", "", "CA cert (PEM)")
	skipVerify := flag.Bool("insecure", false, "skip cert verify (dev)")
	plaintext := flag.Bool("plaintext", false, "no TLS at all (dev server only)")
	bearer := flag.String("token", os.Getenv("STAMPS_TOKEN"), "bearer token (default: saved login)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// offline commands
	switch cmd {
	case "version":
		fmt.Printf("stampctl %s (%s)\n", version, buildDate)
		return
	case "dev-token":
		tok, err := devToken(args, time.Now())
		if err != nil {
			fail(err)
		}
		fmt.Println(tok)
		return
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		t := fs.String("token", "", "bearer token")
		_ = fs.Parse(args)
		exp, err := tokenExpiry(*t)
		if err != nil {
			fail(fmt.Errorf("bad token: %w", err))
		}
		if err := saveToken(*t, exp); err != nil {
			fail(err)
		}
		fmt.Printf("token saved, expires %s\n", tsString(timestamppb.New(exp)))
		return
	}

	tok := *bearer
	if tok == "" {
		var err error
		if tok, err = loadToken(); err != nil {
			fail(err)
		}
	}
	cc, cli, err := dial(ctx, dialOpts{addr: *addr, caPath: *caPath, insecure: *skipVerify, plaintext: *plaintext, bearer: tok})
	if err != nil {
		fail(err)
	}
	defer cc.Close()

	switch cmd {
	case "mint":
		resp, err := cli.MintToken(ctx, &pb.MintTokenRequest{})
		if err != nil {
			fail(err)
		}
		printJSON(resp)

	case "register":
		resp, err := cli.RegisterCard(ctx, &pb.RegisterCardRequest{})
		if err != nil {
			fail(err)
		}
		printJSON(resp)

	case "card":
		resp, err := cli.GetCard(ctx, &pb.GetCardRequest{})
		if err != nil {
			fail(err)
		}
		fmt.Printf("%d/%d stamps, %d redeemed (updated %s)\n",
			resp.GetStampCount(), resp.GetStampGoal(), resp.GetTotalRedeemed(), tsString(resp.GetUpdatedAt()))

	case "scan":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "need exactly one token argument (or - for stdin)")
			os.Exit(1)
		}
		raw := args[0]
		if raw == "-" {
			b, err := readAll("-")
			if err != nil {
				fail(err)
			}
			raw = strings.TrimSpace(string(b))
		}
		resp, err := cli.ProcessScan(ctx, &pb.ProcessScanRequest{Token: raw})
		if err != nil {
			fail(err)
		}
		if resp.GetRedeemed() {
			fmt.Printf("REDEEMED: free drink (card %s, %d total)\n", resp.GetCardId(), resp.GetTotalRedeemed())
		} else {
			fmt.Printf("stamped: %d/%d (card %s)\n", resp.GetStampsAfter(), resp.GetStampGoal(), resp.GetCardId())
		}

	case "history":
		fs := flag.NewFlagSet("history", flag.ExitOnError)
		limit := fs.Int("limit", 0, "page size (0 = server default)")
		offset := fs.Int("offset", 0, "skip n newest records")
		_ = fs.Parse(args)
		resp, err := cli.ListTransactions(ctx, &pb.ListTransactionsRequest{Limit: int32(*limit), Offset: int32(*offset)})
		if err != nil {
			fail(err)
		}
		for _, t := range resp.GetTransactions() {
			fmt.Printf("%s  %-6s  %d -> %d  card=%s staff=%s\n",
				tsString(t.GetCreatedAt()), t.GetType(), t.GetStampsBefore(), t.GetStampsAfter(), t.GetCardId(), t.GetStaffId())
		}

	case "void":
		fs := flag.NewFlagSet("void", flag.ExitOnError)
		card := fs.String("card", "", "card uuid")
		_ = fs.Parse(args)
		if _, err := u.FromString(*card); err != nil {
			fmt.Fprintln(os.Stderr, "need -card <uuid>")
			os.Exit(1)
		}
		resp, err := cli.VoidLastStamp(ctx, &pb.VoidLastStampRequest{CardId: *card})
		if err != nil {
			fail(err)
		}
		printJSON(resp)

	default:
		usage()
	}
}

// devToken signs a bearer token locally with the server's key.
func devToken(args []string, now time.Time) (string, error) {
	fs := flag.NewFlagSet("dev-token", flag.ContinueOnError)
	key := fs.String("key", os.Getenv("STAMPS_JWT_KEY"), "HS256 signing key")
	role := fs.String("role", "barista", "admin|barista|customer")
	shop := fs.String("shop", "", "shop uuid")
	sub := fs.String("sub", "", "subject uuid (random if empty)")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	shopID, err := u.FromString(*shop)
	if err != nil {
		return "", fmt.Errorf("-shop: %w", err)
	}
	subject := u.Must(u.NewV4())
	if *sub != "" {
		if subject, err = u.FromString(*sub); err != nil {
			return "", fmt.Errorf("-sub: %w", err)
		}
	}
	r := model.Role(*role)
	switch r {
	case model.RoleAdmin, model.RoleBarista, model.RoleCustomer:
	default:
		return "", fmt.Errorf("-role: unknown role %q", *role)
	}
	return auth.Issue([]byte(*key), model.Principal{Subject: subject, ShopID: shopID, Role: r}, now, *ttl)
}

// ---- helpers ----

func tsString(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().UTC().Format(time.RFC3339)
}

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
