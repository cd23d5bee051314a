package ledger

import (
	"errors"

	"github.com/btcsuite/btcd/btcjson"
)

var (
	// ErrUpstreamUnavailable reports that the ledger node could not serve a
	// request, either immediately for a permanent RPC failure or after the
	// retry budget was exhausted.
	ErrUpstreamUnavailable = errors.New("ledger upstream unavailable")

	// ErrNotFound reports that the requested height is beyond the node's tip.
	ErrNotFound = errors.New("block not found")
)

// isNotFound matches only the codes the node uses for a height past its
// tip. ErrRPCInvalidParameter deliberately does not match: a malformed
// request must surface as unavailable, not read as caught up forever.
func isNotFound(err error) bool {
	var rpcErr *btcjson.RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}
	switch rpcErr.Code {
	case btcjson.ErrRPCOutOfRange, btcjson.ErrRPCBlockNotFound:
		return true
	default:
		return false
	}
}

// isRetryable treats transport-level failures (timeouts, resets, node
// restarts) as transient. A structured RPC error means the node received
// and rejected the request, so retrying cannot help.
func isRetryable(err error) bool {
	var rpcErr *btcjson.RPCError
	return !errors.As(err, &rpcErr)
}
