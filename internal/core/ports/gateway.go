package ports

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
)

// NodeGateway is the node-level capability set consumed by the wallet
// workflows: wallet directory and load-state queries, wallet creation, and
// derivation of wallet-scoped handles.
//
//go:generate mockgen -source=gateway.go -destination=mocks/gateway_mock.go -package=mocks
type NodeGateway interface {
	// ListWalletDir returns the names of all wallets known to the node,
	// loaded or not.
	ListWalletDir(ctx context.Context) ([]string, error)
	// ListWallets returns the names of currently loaded wallets.
	ListWallets(ctx context.Context) ([]string, error)
	// CreateWallet creates a new wallet. The node loads it on creation.
	CreateWallet(ctx context.Context, name, passphrase string) error
	// LoadWallet loads an existing, unloaded wallet.
	LoadWallet(ctx context.Context, name string) error
	// Wallet derives a handle bound to the named wallet's RPC sub-resource.
	// It does not verify the wallet exists.
	Wallet(name string) (WalletGateway, error)
	// Ping verifies node connectivity.
	Ping(ctx context.Context) error
}

// WalletGateway is a client handle scoped to a single wallet on the node.
// Handles are derived per request and must be closed after use.
type WalletGateway interface {
	// NewAddress mints a fresh receiving address owned by the wallet.
	NewAddress(ctx context.Context) (string, error)
	// Balance returns the wallet's aggregate balance at the node's default
	// minimum-confirmation policy.
	Balance(ctx context.Context) (btcutil.Amount, error)
	// Send constructs, signs, and broadcasts a payment from the wallet,
	// returning the transaction id.
	Send(ctx context.Context, dest btcutil.Address, amount btcutil.Amount, comment string) (string, error)
	// Close releases the underlying connection.
	Close()
}
