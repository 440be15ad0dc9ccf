package ports

import "context"

// WalletService defines the three wallet operations exposed over HTTP.
//
//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks
type WalletService interface {
	// Register ensures the named wallet exists and is loaded, then returns a
	// fresh receiving address. Safe to repeat; every call mints a new address.
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	// Balance returns the wallet's balance in decimal BTC.
	Balance(ctx context.Context, walletName string) (*BalanceResult, error)
	// Send pays the given amount from the configured source wallet.
	Send(ctx context.Context, req SendRequest) (*SendResult, error)
}

// RegisterRequest holds validated input for wallet provisioning.
type RegisterRequest struct {
	WalletName string
	// Passphrase is accepted for API compatibility but not forwarded to the
	// node; wallet encryption uses the wallet name.
	Passphrase string
}

// RegisterResult is the provisioning outcome.
type RegisterResult struct {
	WalletName string
	Address    string
}

// BalanceResult is the balance query outcome.
type BalanceResult struct {
	WalletName string
	BalanceBTC float64
}

// SendRequest holds raw transfer input; validation happens in the service
// before any node call.
type SendRequest struct {
	Address string
	Amount  float64 // decimal BTC
	Comment string
}

// SendResult is the transfer outcome.
type SendResult struct {
	TxID string
}
