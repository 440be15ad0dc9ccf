package domain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// Networks supported by the gateway, keyed by the rpc.network config value.
var networks = map[string]*chaincfg.Params{
	"mainnet":  &chaincfg.MainNetParams,
	"testnet3": &chaincfg.TestNet3Params,
	"regtest":  &chaincfg.RegressionNetParams,
	"signet":   &chaincfg.SigNetParams,
}

// ResolveNetwork maps a configured network name to its chain parameters.
func ResolveNetwork(name string) (*chaincfg.Params, error) {
	params, ok := networks[name]
	if !ok {
		return nil, fmt.Errorf("unknown network %q", name)
	}
	return params, nil
}

// OtherNetworks returns the chain parameters of every supported network
// except the given one. Used to tell a wrong-network address apart from
// garbage input.
func OtherNetworks(current *chaincfg.Params) []*chaincfg.Params {
	var out []*chaincfg.Params
	for _, p := range networks {
		if p.Net != current.Net {
			out = append(out, p)
		}
	}
	return out
}
