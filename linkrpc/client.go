package linkrpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/wot/wire"
)

// Client calls a remote LinkStore service.
type Client struct {
	cc     *grpc.ClientConn
	client LinkStoreClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewLinkStoreClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// AddChain submits a chain rooted at root. Links are raw signed link bytes
// ordered from the root toward the local identity.
func (c *Client) AddChain(root []byte, links [][]byte) error {
	ctx, cancel := c.ctx()
	defer cancel()

	payload := wire.Encode(append([][]byte{root}, links...)...)
	_, err := c.client.AddChain(ctx, wrapperspb.Bytes(payload))
	return mapRPC(err)
}

// GetChain resolves a chain from root to the remote store's local identity.
func (c *Client) GetChain(root []byte) ([][]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.GetChain(ctx, wrapperspb.Bytes(root))
	if err != nil {
		return nil, mapRPC(err)
	}
	links, err := wire.Decode(reply.GetValue())
	if err != nil {
		return nil, err
	}
	return links, nil
}

// LocalKey returns the remote store's local public key.
func (c *Client) LocalKey() ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.LocalKey(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, mapRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
