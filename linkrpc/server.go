package linkrpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/wot/chain"
	"xdao.co/wot/link"
	"xdao.co/wot/wire"
)

// Server exposes a chain.Store over the LinkStore gRPC service.
type Server struct {
	UnimplementedLinkStoreServer
	Store *chain.Store
}

func (s *Server) AddChain(ctx context.Context, in *wrapperspb.BytesValue) (*emptypb.Empty, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	frames, err := wire.Decode(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "linkrpc: bad chain framing")
	}
	if len(frames) == 0 {
		return nil, status.Error(codes.InvalidArgument, "linkrpc: missing root key frame")
	}
	if err := s.Store.AddChain(frames[0], frames[1:]); err != nil {
		return nil, mapErr(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) GetChain(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	root := in.GetValue()
	if len(root) == 0 {
		return nil, status.Error(codes.InvalidArgument, "linkrpc: empty root key")
	}
	links, err := s.Store.GetChain(root)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(wire.Encode(links...)), nil
}

func (s *Server) LocalKey(ctx context.Context, in *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	_ = ctx
	_ = in
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	return wrapperspb.Bytes(s.Store.LocalKey()), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var lerr *link.Error
	switch {
	case errors.Is(err, chain.ErrNoPath):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, chain.ErrClosed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.As(err, &lerr):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
