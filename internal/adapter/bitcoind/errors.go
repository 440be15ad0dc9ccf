package bitcoind

import (
	"errors"
	"fmt"
	"strings"

	"bitcoind-gateway/internal/core/ports"

	"github.com/btcsuite/btcd/btcjson"
)

// Bitcoin Core wallet error codes not named by btcjson.
const rpcWalletAlreadyLoaded btcjson.RPCErrorCode = -35

// translate maps an rpcclient error onto the gateway sentinels from ports.
// Structured RPC errors keep their node-reported code and message in the
// wrapped cause; everything else is a transport failure.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		switch {
		case rpcErr.Code == btcjson.ErrRPCWalletNotFound:
			return fmt.Errorf("%w: %s", ports.ErrWalletNotFound, rpcErr.Message)
		case rpcErr.Code == rpcWalletAlreadyLoaded:
			return fmt.Errorf("%w: %s", ports.ErrWalletAlreadyLoaded, rpcErr.Message)
		case alreadyExists(rpcErr):
			return fmt.Errorf("%w: %s", ports.ErrWalletExists, rpcErr.Message)
		default:
			return fmt.Errorf("%w: rpc %d: %s", ports.ErrGatewayRejected, rpcErr.Code, rpcErr.Message)
		}
	}

	if unauthorized(err) {
		return fmt.Errorf("%w: invalid RPC credentials", ports.ErrGatewayUnreachable)
	}

	return fmt.Errorf("%w: %v", ports.ErrGatewayUnreachable, err)
}

// alreadyExists detects a createwallet call losing the race against an
// existing wallet. Core reports this as a generic wallet error (-4), so the
// message is the only discriminator.
func alreadyExists(rpcErr *btcjson.RPCError) bool {
	return rpcErr.Code == btcjson.ErrRPCWallet &&
		strings.Contains(strings.ToLower(rpcErr.Message), "already exists")
}
