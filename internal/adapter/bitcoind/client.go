// Package bitcoind implements the node gateway ports on top of Bitcoin
// Core's JSON-RPC interface via btcsuite's rpcclient.
package bitcoind

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bitcoind-gateway/config"
	"bitcoind-gateway/internal/core/domain"
	"bitcoind-gateway/internal/core/ports"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/rs/zerolog"
)

// Client talks to the node's top-level RPC endpoint and derives wallet-scoped
// handles. The endpoint configuration is immutable after construction; every
// call dials a fresh connection (HTTP POST mode), matching the node's
// stateless request model.
type Client struct {
	host    string
	user    string
	pass    string
	network string
	timeout time.Duration
	log     zerolog.Logger
}

var _ ports.NodeGateway = (*Client)(nil)

// New builds a gateway client from the RPC endpoint configuration.
// The password is held for request auth and never logged.
func New(cfg config.RPCConfig, log zerolog.Logger) (*Client, error) {
	host, err := cfg.Host()
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("host", host).
		Str("user", cfg.User).
		Str("network", cfg.Network).
		Msg("bitcoind gateway configured")

	return &Client{
		host:    host,
		user:    cfg.User,
		pass:    cfg.Password,
		network: cfg.Network,
		timeout: cfg.Timeout,
		log:     log,
	}, nil
}

func (c *Client) connConfig(walletPath string) *rpcclient.ConnConfig {
	host := c.host
	if walletPath != "" {
		host = fmt.Sprintf("%s/wallet/%s", host, walletPath)
	}
	return &rpcclient.ConnConfig{
		Host:         host,
		User:         c.user,
		Pass:         c.pass,
		Params:       c.network, // address results decode against this chain
		DisableTLS:   true,
		HTTPPostMode: true, // Core only handles POST requests
	}
}

func (c *Client) dial(walletPath string) (*rpcclient.Client, error) {
	rpc, err := rpcclient.New(c.connConfig(walletPath), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrGatewayUnreachable, err)
	}
	return rpc, nil
}

// ListWalletDir returns all wallet names known to the node's wallet
// directory. listwalletdir has no typed helper in rpcclient, so it goes
// through RawRequest.
func (c *Client) ListWalletDir(ctx context.Context) ([]string, error) {
	raw, err := c.rawCall(ctx, "listwalletdir", nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Wallets []struct {
			Name string `json:"name"`
		} `json:"wallets"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding listwalletdir response: %w", err)
	}

	names := make([]string, 0, len(result.Wallets))
	for _, w := range result.Wallets {
		names = append(names, w.Name)
	}
	return names, nil
}

// ListWallets returns the names of currently loaded wallets.
func (c *Client) ListWallets(ctx context.Context) ([]string, error) {
	raw, err := c.rawCall(ctx, "listwallets", nil)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("decoding listwallets response: %w", err)
	}
	return names, nil
}

// CreateWallet creates and loads a new wallet on the node. The call goes
// through RawRequest with explicit positional params: the typed helper stops
// marshalling at the first unset optional, which would drop the passphrase.
func (c *Client) CreateWallet(ctx context.Context, name, passphrase string) error {
	params := []interface{}{name}
	if passphrase != "" {
		// wallet_name, disable_private_keys, blank, passphrase
		params = append(params, false, false, passphrase)
	}

	raw := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encoding createwallet params: %w", err)
		}
		raw = append(raw, b)
	}

	_, err := c.rawCall(ctx, "createwallet", raw)
	return err
}

// LoadWallet loads an existing wallet.
func (c *Client) LoadWallet(ctx context.Context, name string) error {
	_, err := call(ctx, c.timeout, func() (struct{}, error) {
		rpc, err := c.dial("")
		if err != nil {
			return struct{}{}, err
		}
		defer rpc.Shutdown()

		_, err = rpc.LoadWallet(name)
		return struct{}{}, translate(err)
	})
	return err
}

// Wallet derives a handle bound to the named wallet's sub-resource path.
func (c *Client) Wallet(name string) (ports.WalletGateway, error) {
	if !domain.ValidWalletName(name) {
		return nil, fmt.Errorf("wallet name %q is not a valid path segment", name)
	}
	rpc, err := c.dial(name)
	if err != nil {
		return nil, err
	}
	return &walletClient{rpc: rpc, wallet: name, timeout: c.timeout}, nil
}

// Ping verifies node connectivity with a cheap getblockcount call.
func (c *Client) Ping(ctx context.Context) error {
	_, err := call(ctx, c.timeout, func() (int64, error) {
		rpc, err := c.dial("")
		if err != nil {
			return 0, err
		}
		defer rpc.Shutdown()
		n, err := rpc.GetBlockCount()
		return n, translate(err)
	})
	return err
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string { return "bitcoind" }

func (c *Client) rawCall(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error) {
	return call(ctx, c.timeout, func() (json.RawMessage, error) {
		rpc, err := c.dial("")
		if err != nil {
			return nil, err
		}
		defer rpc.Shutdown()

		raw, err := rpc.RawRequest(method, params)
		return raw, translate(err)
	})
}

// walletClient is a wallet-scoped handle. It is derived per request and not
// cached; Close releases the connection.
type walletClient struct {
	rpc     *rpcclient.Client
	wallet  string
	timeout time.Duration
}

var _ ports.WalletGateway = (*walletClient)(nil)

func (w *walletClient) NewAddress(ctx context.Context) (string, error) {
	return call(ctx, w.timeout, func() (string, error) {
		addr, err := w.rpc.GetNewAddress("")
		if err != nil {
			return "", translate(err)
		}
		return addr.EncodeAddress(), nil
	})
}

func (w *walletClient) Balance(ctx context.Context) (btcutil.Amount, error) {
	return call(ctx, w.timeout, func() (btcutil.Amount, error) {
		amt, err := w.rpc.GetBalance("*")
		return amt, translate(err)
	})
}

func (w *walletClient) Send(ctx context.Context, dest btcutil.Address, amount btcutil.Amount, comment string) (string, error) {
	return call(ctx, w.timeout, func() (string, error) {
		var txid *chainhash.Hash
		var err error
		if comment != "" {
			txid, err = w.rpc.SendToAddressComment(dest, amount, comment, "")
		} else {
			txid, err = w.rpc.SendToAddress(dest, amount)
		}
		if err != nil {
			return "", translate(err)
		}
		return txid.String(), nil
	})
}

func (w *walletClient) Close() {
	w.rpc.Shutdown()
}

// call runs a blocking RPC with a deadline. rpcclient calls are not
// cancelable, so on timeout the underlying request keeps running in the
// background while the caller gets control back.
func call[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	results := make(chan T, 1)
	errs := make(chan error, 1)
	go func() {
		v, err := fn()
		if err != nil {
			errs <- err
			return
		}
		results <- v
	}()

	select {
	case <-ctx.Done():
		return zero, fmt.Errorf("%w: %v", ports.ErrGatewayUnreachable, ctx.Err())
	case err := <-errs:
		return zero, err
	case v := <-results:
		return v, nil
	}
}

// unauthorized matches rpcclient's opaque 401 error text.
func unauthorized(err error) bool {
	return strings.Contains(err.Error(), "status code: 401")
}
