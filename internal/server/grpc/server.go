// Package grpcserver exposes the StampCard gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"
	"net"
	"slices"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/stampcard/gen/go/stampcard/v1"
	"github.com/and161185/stampcard/internal/convert"
	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/model"
	"github.com/and161185/stampcard/internal/qrtoken"
	"github.com/and161185/stampcard/internal/service"
)

// Server wires services into gRPC handlers. Callers are authenticated by
// AuthUnary; handlers only check roles.
type Server struct {
	pb.UnimplementedStampCardServer
	stamps service.StampService
	cards  service.CardService
}

// New constructs a gRPC server with injected services.
func New(stamps service.StampService, cards service.CardService) *Server {
	return &Server{stamps: stamps, cards: cards}
}

// --- Scan ---

// ProcessScan applies one staff scan of a customer display token.
func (s *Server) ProcessScan(ctx context.Context, req *pb.ProcessScanRequest) (*pb.ScanResponse, error) {
	p, err := requireRole(ctx, model.RoleAdmin, model.RoleBarista)
	if err != nil {
		return nil, err
	}
	res, err := s.stamps.ProcessScan(ctx, service.ScanRequest{
		RawToken:   req.GetToken(),
		StaffID:    p.Subject,
		ShopID:     p.ShopID,
		SourceAddr: remoteIP(ctx),
	})
	if err != nil {
		return nil, scanStatus(err)
	}
	return convert.ToScanResponse(res), nil
}

// --- Customer ---

// MintToken returns a fresh display token for the calling customer.
func (s *Server) MintToken(ctx context.Context, _ *pb.MintTokenRequest) (*pb.MintTokenResponse, error) {
	p, err := requireRole(ctx, model.RoleCustomer)
	if err != nil {
		return nil, err
	}
	tok, err := s.cards.MintToken(ctx, p.Subject, p.ShopID)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.MintTokenResponse{}
	resp.SetToken(tok)
	resp.SetRefreshAfterSeconds(int32(qrtoken.DefaultDisplayRefresh / time.Second))
	return resp, nil
}

// RegisterCard creates the calling customer's card if it does not exist yet.
func (s *Server) RegisterCard(ctx context.Context, _ *pb.RegisterCardRequest) (*pb.CardResponse, error) {
	p, err := requireRole(ctx, model.RoleCustomer)
	if err != nil {
		return nil, err
	}
	v, err := s.cards.RegisterCard(ctx, p.Subject, p.ShopID)
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToCardResponse(v), nil
}

// GetCard returns the calling customer's card.
func (s *Server) GetCard(ctx context.Context, _ *pb.GetCardRequest) (*pb.CardResponse, error) {
	p, err := requireRole(ctx, model.RoleCustomer)
	if err != nil {
		return nil, err
	}
	v, err := s.cards.GetCard(ctx, p.Subject, p.ShopID)
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToCardResponse(v), nil
}

// --- Admin ---

// ListTransactions returns the shop audit log, newest first.
func (s *Server) ListTransactions(ctx context.Context, req *pb.ListTransactionsRequest) (*pb.ListTransactionsResponse, error) {
	p, err := requireRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	page, err := convert.FromListTransactionsRequest(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad page: %v", err)
	}
	txs, err := s.cards.ListTransactions(ctx, p.ShopID, page)
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToListTransactionsResponse(txs), nil
}

// VoidLastStamp reverts the most recent stamp on a card of the admin's shop.
func (s *Server) VoidLastStamp(ctx context.Context, req *pb.VoidLastStampRequest) (*pb.VoidResponse, error) {
	p, err := requireRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	cardID, err := convert.FromVoidLastStampRequest(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad card id: %v", err)
	}
	res, err := s.cards.VoidLastStamp(ctx, model.VoidRequest{
		CardID:     cardID,
		ShopID:     p.ShopID,
		StaffID:    p.Subject,
		SourceAddr: remoteIP(ctx),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToVoidResponse(res), nil
}

// --- helpers ---

func requireRole(ctx context.Context, roles ...model.Role) (model.Principal, error) {
	p, ok := PrincipalFromCtx(ctx)
	if !ok {
		return model.Principal{}, status.Error(codes.Unauthenticated, "no auth")
	}
	if !slices.Contains(roles, p.Role) {
		return model.Principal{}, status.Error(codes.PermissionDenied, "forbidden")
	}
	return p, nil
}

// remoteIP returns the caller host without port, or the raw peer address
// when it has none.
func remoteIP(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

var outcomeCodes = map[model.Outcome]codes.Code{
	model.OutcomeInvalidToken:       codes.InvalidArgument,
	model.OutcomeReplayRejected:     codes.AlreadyExists,
	model.OutcomeTooSoon:            codes.ResourceExhausted,
	model.OutcomeCardNotFound:       codes.NotFound,
	model.OutcomeConfigurationError: codes.FailedPrecondition,
	model.OutcomeBackendUnavailable: codes.Unavailable,
}

// scanStatus maps a rejected scan to its status. The message is the outcome
// name so clients can switch on it without parsing.
func scanStatus(err error) error {
	o := errs.OutcomeOf(err)
	code, ok := outcomeCodes[o]
	if !ok {
		code = codes.Unavailable
	}
	return status.Error(code, string(o))
}

// toStatus maps errors of the non-scan operations. Unknown errors are not
// leaked to clients.
func toStatus(err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrNothingToVoid):
		return status.Error(codes.FailedPrecondition, "nothing_to_void")
	case errors.Is(err, errs.ErrCardNotFound),
		errors.Is(err, errs.ErrConfiguration),
		errors.Is(err, errs.ErrBackendUnavailable):
		return scanStatus(err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, "internal")
	}
}
