package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"bitcoind-gateway/internal/core/ports"
	"bitcoind-gateway/internal/core/ports/mocks"
	"bitcoind-gateway/pkg/apperror"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	mainnetAddr = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	testnetAddr = "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx"
	testTxID    = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
)

type walletTestDeps struct {
	svc  *WalletServiceImpl
	gw   *mocks.MockNodeGateway
	ctrl *gomock.Controller
}

func setupWalletService(t *testing.T) *walletTestDeps {
	ctrl := gomock.NewController(t)
	d := &walletTestDeps{
		gw:   mocks.NewMockNodeGateway(ctrl),
		ctrl: ctrl,
	}
	d.svc = NewWalletService(d.gw, &chaincfg.MainNetParams, "default", zerolog.Nop())
	return d
}

// expectHandle wires Wallet(name) to return a fresh mock handle.
func (d *walletTestDeps) expectHandle(t *testing.T, name string) *mocks.MockWalletGateway {
	t.Helper()
	handle := mocks.NewMockWalletGateway(d.ctrl)
	d.gw.EXPECT().Wallet(name).Return(handle, nil)
	handle.EXPECT().Close()
	return handle
}

// ==================== Register Tests ====================

func TestRegister_CreatesWalletWhenAbsent(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	d.gw.EXPECT().ListWalletDir(ctx).Return([]string{"other"}, nil)
	// The wallet name doubles as the encryption passphrase.
	d.gw.EXPECT().CreateWallet(ctx, "alice", "alice").Return(nil)
	handle := d.expectHandle(t, "alice")
	handle.EXPECT().NewAddress(ctx).Return(mainnetAddr, nil)

	res, err := d.svc.Register(ctx, ports.RegisterRequest{WalletName: "alice", Passphrase: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.WalletName)
	assert.Equal(t, mainnetAddr, res.Address)
}

func TestRegister_ExistingLoadedWallet_SkipsLoad(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	d.gw.EXPECT().ListWalletDir(ctx).Return([]string{"alice"}, nil)
	d.gw.EXPECT().ListWallets(ctx).Return([]string{"alice"}, nil)
	handle := d.expectHandle(t, "alice")
	handle.EXPECT().NewAddress(ctx).Return(mainnetAddr, nil)

	res, err := d.svc.Register(ctx, ports.RegisterRequest{WalletName: "alice"})
	require.NoError(t, err)
	assert.Equal(t, mainnetAddr, res.Address)
}

func TestRegister_ExistingUnloadedWallet_Loads(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	d.gw.EXPECT().ListWalletDir(ctx).Return([]string{"alice"}, nil)
	d.gw.EXPECT().ListWallets(ctx).Return([]string{}, nil)
	d.gw.EXPECT().LoadWallet(ctx, "alice").Return(nil)
	handle := d.expectHandle(t, "alice")
	handle.EXPECT().NewAddress(ctx).Return(mainnetAddr, nil)

	_, err := d.svc.Register(ctx, ports.RegisterRequest{WalletName: "alice"})
	require.NoError(t, err)
}

func TestRegister_CreateRace_TreatedAsExisting(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	d.gw.EXPECT().ListWalletDir(ctx).Return(nil, nil)
	d.gw.EXPECT().CreateWallet(ctx, "alice", "alice").
		Return(fmt.Errorf("%w: Database already exists", ports.ErrWalletExists))
	d.gw.EXPECT().ListWallets(ctx).Return(nil, nil)
	d.gw.EXPECT().LoadWallet(ctx, "alice").
		Return(fmt.Errorf("%w: loaded by the racing request", ports.ErrWalletAlreadyLoaded))
	handle := d.expectHandle(t, "alice")
	handle.EXPECT().NewAddress(ctx).Return(mainnetAddr, nil)

	_, err := d.svc.Register(ctx, ports.RegisterRequest{WalletName: "alice"})
	require.NoError(t, err)
}

func TestRegister_RepeatedCall_MintsDistinctAddresses(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	addrs := []string{
		"bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qccfmv3",
		mainnetAddr,
	}

	d.gw.EXPECT().ListWalletDir(ctx).Return([]string{"alice"}, nil).Times(2)
	d.gw.EXPECT().ListWallets(ctx).Return([]string{"alice"}, nil).Times(2)
	for _, addr := range addrs {
		handle := d.expectHandle(t, "alice")
		handle.EXPECT().NewAddress(ctx).Return(addr, nil)
	}

	first, err := d.svc.Register(ctx, ports.RegisterRequest{WalletName: "alice"})
	require.NoError(t, err)
	second, err := d.svc.Register(ctx, ports.RegisterRequest{WalletName: "alice"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Address, second.Address, "every register call must mint a fresh address")
}

func TestRegister_InvalidName_NeverReachesGateway(t *testing.T) {
	d := setupWalletService(t)

	for _, name := range []string{"", "../escape", "a/b", "has space"} {
		_, err := d.svc.Register(context.Background(), ports.RegisterRequest{WalletName: name})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr, name)
		assert.Equal(t, "VAL_001", appErr.Code)
	}
}

func TestRegister_CreationFailure(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	d.gw.EXPECT().ListWalletDir(ctx).Return(nil, nil)
	d.gw.EXPECT().CreateWallet(ctx, "alice", "alice").
		Return(fmt.Errorf("%w: rpc -4: disk full", ports.ErrGatewayRejected))

	_, err := d.svc.Register(ctx, ports.RegisterRequest{WalletName: "alice"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GW_002", appErr.Code)
}

func TestRegister_GatewayUnreachable(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	d.gw.EXPECT().ListWalletDir(ctx).
		Return(nil, fmt.Errorf("%w: connection refused", ports.ErrGatewayUnreachable))

	_, err := d.svc.Register(ctx, ports.RegisterRequest{WalletName: "alice"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GW_001", appErr.Code)
}

// ==================== Balance Tests ====================

func TestBalance_Success(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	handle := d.expectHandle(t, "alice")
	handle.EXPECT().Balance(ctx).Return(btcutil.Amount(150_000_000), nil)

	res, err := d.svc.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.WalletName)
	assert.Equal(t, 1.5, res.BalanceBTC)
}

func TestBalance_FreshWalletIsZero(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	handle := d.expectHandle(t, "fresh")
	handle.EXPECT().Balance(ctx).Return(btcutil.Amount(0), nil)

	res, err := d.svc.Balance(ctx, "fresh")
	require.NoError(t, err)
	assert.Zero(t, res.BalanceBTC)
}

func TestBalance_WalletNotFound(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	handle := d.expectHandle(t, "ghost")
	handle.EXPECT().Balance(ctx).
		Return(btcutil.Amount(0), fmt.Errorf("%w: Requested wallet does not exist", ports.ErrWalletNotFound))

	_, err := d.svc.Balance(ctx, "ghost")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GW_005", appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

// ==================== Send Tests ====================

func TestSend_Success(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	handle := d.expectHandle(t, "default")
	handle.EXPECT().
		Send(ctx, gomock.Any(), btcutil.Amount(10_000_000), "rent").
		DoAndReturn(func(_ context.Context, dest btcutil.Address, _ btcutil.Amount, _ string) (string, error) {
			assert.Equal(t, mainnetAddr, dest.EncodeAddress())
			return testTxID, nil
		})

	res, err := d.svc.Send(ctx, ports.SendRequest{Address: mainnetAddr, Amount: 0.1, Comment: "rent"})
	require.NoError(t, err)
	assert.Equal(t, testTxID, res.TxID)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), res.TxID)
}

func TestSend_NonPositiveAmount_NeverReachesGateway(t *testing.T) {
	d := setupWalletService(t)

	for _, amount := range []float64{0, -0.5} {
		_, err := d.svc.Send(context.Background(), ports.SendRequest{Address: mainnetAddr, Amount: amount})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VAL_004", appErr.Code)
	}
}

func TestSend_WrongNetworkAddress_NeverReachesGateway(t *testing.T) {
	d := setupWalletService(t)

	_, err := d.svc.Send(context.Background(), ports.SendRequest{Address: testnetAddr, Amount: 0.1})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_003", appErr.Code)
}

func TestSend_MalformedAddress(t *testing.T) {
	d := setupWalletService(t)

	_, err := d.svc.Send(context.Background(), ports.SendRequest{Address: "notanaddress", Amount: 0.1})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_002", appErr.Code)
}

func TestSend_NodeRejection(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	handle := d.expectHandle(t, "default")
	handle.EXPECT().
		Send(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: rpc -6: Insufficient funds", ports.ErrGatewayRejected))

	_, err := d.svc.Send(ctx, ports.SendRequest{Address: mainnetAddr, Amount: 0.1})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GW_006", appErr.Code)
	assert.ErrorIs(t, err, ports.ErrGatewayRejected)
}

func TestSend_GatewayUnreachable(t *testing.T) {
	d := setupWalletService(t)
	ctx := context.Background()

	handle := d.expectHandle(t, "default")
	handle.EXPECT().
		Send(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: connection refused", ports.ErrGatewayUnreachable))

	_, err := d.svc.Send(ctx, ports.SendRequest{Address: mainnetAddr, Amount: 0.1})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GW_001", appErr.Code)
	assert.Equal(t, 502, appErr.HTTPStatus)
}

// The service itself must tolerate missing gateways only through errors,
// never panics.
func TestSend_HandleDialFailure(t *testing.T) {
	d := setupWalletService(t)

	d.gw.EXPECT().Wallet("default").Return(nil, errors.New("dial: connection refused"))

	_, err := d.svc.Send(context.Background(), ports.SendRequest{Address: mainnetAddr, Amount: 0.1})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GW_001", appErr.Code)
}
