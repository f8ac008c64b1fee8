package linkrpc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/wot/chain"
)

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return chain.ErrNoPath
	case codes.Unavailable:
		// Server uses Unavailable for a store that has shut down.
		return chain.ErrClosed
	default:
		// Best-effort: if the server sent a known chain error message, preserve it.
		switch st.Message() {
		case chain.ErrNoPath.Error():
			return chain.ErrNoPath
		case chain.ErrClosed.Error():
			return chain.ErrClosed
		default:
			return err
		}
	}
}
