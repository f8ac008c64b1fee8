package linkrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// LinkStoreServer is the server API for the LinkStore gRPC service.
//
// We intentionally use protobuf well-known types so this package does not
// require a protoc/codegen toolchain. Both AddChain requests and GetChain
// replies carry length-prefixed frames (see the wire package): for AddChain
// the first frame is the root public key and the remaining frames are raw
// links; a GetChain reply is the raw links of the resolved chain.
//
// Proto definition: linkstore.proto.
type LinkStoreServer interface {
	AddChain(context.Context, *wrapperspb.BytesValue) (*emptypb.Empty, error)
	GetChain(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	LocalKey(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error)
}

// UnimplementedLinkStoreServer can be embedded to have forward compatible implementations.
type UnimplementedLinkStoreServer struct{}

func (UnimplementedLinkStoreServer) AddChain(context.Context, *wrapperspb.BytesValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method AddChain not implemented")
}
func (UnimplementedLinkStoreServer) GetChain(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetChain not implemented")
}
func (UnimplementedLinkStoreServer) LocalKey(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method LocalKey not implemented")
}

// RegisterLinkStoreServer registers the LinkStore service on a gRPC server.
func RegisterLinkStoreServer(s grpc.ServiceRegistrar, srv LinkStoreServer) {
	s.RegisterService(&LinkStore_ServiceDesc, srv)
}

// LinkStoreClient is the client API for the LinkStore gRPC service.
type LinkStoreClient interface {
	AddChain(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetChain(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	LocalKey(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type linkStoreClient struct{ cc grpc.ClientConnInterface }

func NewLinkStoreClient(cc grpc.ClientConnInterface) LinkStoreClient { return &linkStoreClient{cc: cc} }

func (c *linkStoreClient) AddChain(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, "/xdao.wot.linkrpc.v1.LinkStore/AddChain", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *linkStoreClient) GetChain(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.wot.linkrpc.v1.LinkStore/GetChain", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *linkStoreClient) LocalKey(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.wot.linkrpc.v1.LinkStore/LocalKey", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _LinkStore_AddChain_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LinkStoreServer).AddChain(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.wot.linkrpc.v1.LinkStore/AddChain"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LinkStoreServer).AddChain(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _LinkStore_GetChain_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LinkStoreServer).GetChain(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.wot.linkrpc.v1.LinkStore/GetChain"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LinkStoreServer).GetChain(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _LinkStore_LocalKey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LinkStoreServer).LocalKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.wot.linkrpc.v1.LinkStore/LocalKey"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LinkStoreServer).LocalKey(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// LinkStore_ServiceDesc is the grpc.ServiceDesc for the LinkStore service.
var LinkStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xdao.wot.linkrpc.v1.LinkStore",
	HandlerType: (*LinkStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddChain", Handler: _LinkStore_AddChain_Handler},
		{MethodName: "GetChain", Handler: _LinkStore_GetChain_Handler},
		{MethodName: "LocalKey", Handler: _LinkStore_LocalKey_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "linkstore.proto",
}
