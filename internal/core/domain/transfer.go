package domain

import (
	"errors"
	"math"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// ErrAmountNotPositive rejects zero, negative, and non-finite amounts.
var ErrAmountNotPositive = errors.New("amount must be a positive finite number")

// Transfer is a validated outgoing payment. Constructing one proves the
// destination and amount were checked against the configured network before
// any node RPC is issued.
type Transfer struct {
	Destination btcutil.Address
	Amount      btcutil.Amount
	Comment     string
}

// AddressError classifies why a destination address was rejected.
type AddressError int

const (
	// AddressMalformed means the string does not decode as any known address.
	AddressMalformed AddressError = iota
	// AddressWrongNetwork means the address decodes, but for another network.
	AddressWrongNetwork
)

func (e AddressError) Error() string {
	if e == AddressWrongNetwork {
		return "address belongs to a different network"
	}
	return "malformed address"
}

// ParseAddress decodes and checks a destination address against net.
// A syntactically valid address for a different network is reported as
// AddressWrongNetwork so callers can surface a more useful rejection.
func ParseAddress(raw string, net *chaincfg.Params) (btcutil.Address, error) {
	addr, err := btcutil.DecodeAddress(raw, net)
	if err == nil {
		if !addr.IsForNet(net) {
			return nil, AddressWrongNetwork
		}
		return addr, nil
	}

	for _, other := range OtherNetworks(net) {
		if a, err2 := btcutil.DecodeAddress(raw, other); err2 == nil && a.IsForNet(other) {
			return nil, AddressWrongNetwork
		}
	}
	return nil, AddressMalformed
}

// ParseAmount converts a decimal BTC amount to satoshis. The amount must be
// a positive finite number representable in the node's minimum unit.
func ParseAmount(btc float64) (btcutil.Amount, error) {
	if math.IsNaN(btc) || math.IsInf(btc, 0) {
		return 0, ErrAmountNotPositive
	}
	amt, err := btcutil.NewAmount(btc)
	if err != nil {
		return 0, err
	}
	if amt <= 0 {
		return 0, ErrAmountNotPositive
	}
	return amt, nil
}
