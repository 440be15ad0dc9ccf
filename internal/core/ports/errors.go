package ports

import "errors"

// Gateway error kinds. The bitcoind adapter translates node RPC errors into
// these sentinels (wrapping the underlying cause) so the service layer can
// map them to client-facing responses without importing node internals.
var (
	// ErrGatewayUnreachable covers connection and transport failures.
	ErrGatewayUnreachable = errors.New("node unreachable")
	// ErrWalletNotFound means the node has no wallet for the requested scope.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrWalletExists means a create call raced with an existing wallet.
	ErrWalletExists = errors.New("wallet already exists")
	// ErrWalletAlreadyLoaded means a load call found the wallet loaded.
	ErrWalletAlreadyLoaded = errors.New("wallet already loaded")
	// ErrGatewayRejected covers all other structured node rejections
	// (insufficient funds, wallet locked, policy violations).
	ErrGatewayRejected = errors.New("node rejected request")
)
