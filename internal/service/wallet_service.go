package service

import (
	"context"
	"errors"
	"slices"

	"bitcoind-gateway/internal/core/domain"
	"bitcoind-gateway/internal/core/ports"
	"bitcoind-gateway/pkg/apperror"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService. It holds no state beyond
// the immutable gateway handle and network parameters; the node is the sole
// source of truth for wallets, balances, and transactions.
type WalletServiceImpl struct {
	gw           ports.NodeGateway
	net          *chaincfg.Params
	sourceWallet string
	log          zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl. sourceWallet names the
// fixed wallet that funds outgoing transfers.
func NewWalletService(gw ports.NodeGateway, net *chaincfg.Params, sourceWallet string, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		gw:           gw,
		net:          net,
		sourceWallet: sourceWallet,
		log:          log,
	}
}

// Register ensures the named wallet exists and is loaded, then mints a fresh
// receiving address. Repeating the call never fails on an existing wallet but
// always returns a new address; address reuse is deliberately avoided.
func (s *WalletServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResult, error) {
	name := req.WalletName
	if !domain.ValidWalletName(name) {
		return nil, apperror.ErrInvalidWalletName(name)
	}

	dirs, err := s.gw.ListWalletDir(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("op", "register").Str("wallet", name).Msg("listing wallet directory failed")
		return nil, s.mapGatewayErr(name, err)
	}

	if !slices.Contains(dirs, name) {
		// The node loads a wallet on creation. A concurrent register can win
		// the race between the existence check and createwallet; the node's
		// "already exists" rejection is then treated as success and the load
		// state re-checked below.
		err := s.gw.CreateWallet(ctx, name, name)
		switch {
		case err == nil:
			s.log.Info().Str("wallet", name).Msg("wallet created")
			return s.newAddress(ctx, name)
		case errors.Is(err, ports.ErrWalletExists):
			s.log.Info().Str("wallet", name).Msg("wallet created concurrently, reusing")
		default:
			s.log.Error().Err(err).Str("op", "register").Str("wallet", name).Msg("wallet creation failed")
			return nil, apperror.ErrWalletCreationFailed(err)
		}
	}

	loaded, err := s.gw.ListWallets(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("op", "register").Str("wallet", name).Msg("listing loaded wallets failed")
		return nil, s.mapGatewayErr(name, err)
	}

	if !slices.Contains(loaded, name) {
		err := s.gw.LoadWallet(ctx, name)
		if err != nil && !errors.Is(err, ports.ErrWalletAlreadyLoaded) {
			s.log.Error().Err(err).Str("op", "register").Str("wallet", name).Msg("wallet load failed")
			return nil, apperror.ErrWalletLoadFailed(err)
		}
		s.log.Info().Str("wallet", name).Msg("wallet loaded")
	}

	return s.newAddress(ctx, name)
}

func (s *WalletServiceImpl) newAddress(ctx context.Context, name string) (*ports.RegisterResult, error) {
	handle, err := s.gw.Wallet(name)
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(err)
	}
	defer handle.Close()

	addr, err := handle.NewAddress(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("op", "register").Str("wallet", name).Msg("address generation failed")
		return nil, apperror.ErrAddressGenerationFailed(err)
	}

	return &ports.RegisterResult{WalletName: name, Address: addr}, nil
}

// Balance returns the wallet's aggregate balance at the node's default
// minimum-confirmation policy. Read-only; no staleness guarantee.
func (s *WalletServiceImpl) Balance(ctx context.Context, walletName string) (*ports.BalanceResult, error) {
	if !domain.ValidWalletName(walletName) {
		return nil, apperror.ErrInvalidWalletName(walletName)
	}

	handle, err := s.gw.Wallet(walletName)
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(err)
	}
	defer handle.Close()

	amt, err := handle.Balance(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("op", "balance").Str("wallet", walletName).Msg("balance query failed")
		return nil, s.mapGatewayErr(walletName, err)
	}

	return &ports.BalanceResult{WalletName: walletName, BalanceBTC: amt.ToBTC()}, nil
}

// Send validates the destination and amount, then pays from the configured
// source wallet. Validation failures never reach the node.
func (s *WalletServiceImpl) Send(ctx context.Context, req ports.SendRequest) (*ports.SendResult, error) {
	dest, err := domain.ParseAddress(req.Address, s.net)
	if err != nil {
		if errors.Is(err, domain.AddressWrongNetwork) {
			return nil, apperror.ErrInvalidAddressNetwork(s.net.Name)
		}
		return nil, apperror.ErrInvalidAddress()
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, apperror.ErrInvalidAmount()
	}

	handle, err := s.gw.Wallet(s.sourceWallet)
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(err)
	}
	defer handle.Close()

	txid, err := handle.Send(ctx, dest, amount, req.Comment)
	if err != nil {
		s.log.Error().Err(err).
			Str("op", "send").
			Str("wallet", s.sourceWallet).
			Str("address", req.Address).
			Msg("transfer failed")
		if errors.Is(err, ports.ErrGatewayUnreachable) {
			return nil, apperror.ErrGatewayUnavailable(err)
		}
		return nil, apperror.ErrTransferFailed(err)
	}

	s.log.Info().Str("wallet", s.sourceWallet).Str("txid", txid).Msg("transaction broadcast")
	return &ports.SendResult{TxID: txid}, nil
}

// mapGatewayErr translates gateway sentinels shared across operations.
func (s *WalletServiceImpl) mapGatewayErr(wallet string, err error) *apperror.AppError {
	switch {
	case errors.Is(err, ports.ErrWalletNotFound):
		return apperror.ErrWalletNotFound(wallet)
	case errors.Is(err, ports.ErrGatewayUnreachable):
		return apperror.ErrGatewayUnavailable(err)
	default:
		return apperror.InternalError(err)
	}
}
