package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// fakeNode is an in-memory Bitcoin Core JSON-RPC stand-in. It implements the
// subset of the wallet RPC surface the gateway consumes, with the same error
// codes the real node reports.
type fakeNode struct {
	mu      sync.Mutex
	wallets map[string]*fakeWallet
	calls   []string // method log, in order

	user, pass string
	server     *httptest.Server
}

type fakeWallet struct {
	loaded     bool
	balanceBTC float64
	addrIdx    int
}

// Valid mainnet addresses handed out round-robin by getnewaddress. The RPC
// client decodes them against its configured network, so they must be real.
var fakeAddresses = []string{
	"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
	"bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qccfmv3",
	"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
}

const fakeTxID = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

func newFakeNode(user, pass string) *fakeNode {
	n := &fakeNode{
		wallets: make(map[string]*fakeWallet),
		user:    user,
		pass:    pass,
	}
	n.server = httptest.NewServer(http.HandlerFunc(n.handle))
	return n
}

func (n *fakeNode) Close() { n.server.Close() }

func (n *fakeNode) URL() string { return n.server.URL }

// addWallet seeds a wallet directly, bypassing RPC.
func (n *fakeNode) addWallet(name string, loaded bool, balanceBTC float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.wallets[name] = &fakeWallet{loaded: loaded, balanceBTC: balanceBTC}
}

func (n *fakeNode) wallet(name string) *fakeWallet {
	return n.wallets[name]
}

// methodCalls returns how many times method was invoked.
func (n *fakeNode) methodCalls(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, m := range n.calls {
		if m == method {
			count++
		}
	}
	return count
}

type rpcRequest struct {
	ID     interface{}       `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (n *fakeNode) handle(w http.ResponseWriter, r *http.Request) {
	if user, pass, ok := r.BasicAuth(); !ok || user != n.user || pass != n.pass {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	walletScope := ""
	if strings.HasPrefix(r.URL.Path, "/wallet/") {
		walletScope = strings.TrimPrefix(r.URL.Path, "/wallet/")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, req.Method)

	result, rpcErr := n.dispatch(req, walletScope)
	reply(w, req.ID, result, rpcErr)
}

func (n *fakeNode) dispatch(req rpcRequest, walletScope string) (interface{}, *rpcError) {
	switch req.Method {
	case "getblockcount":
		return 814200, nil

	case "listwalletdir":
		type entry struct {
			Name string `json:"name"`
		}
		entries := []entry{}
		for name := range n.wallets {
			entries = append(entries, entry{Name: name})
		}
		return map[string]interface{}{"wallets": entries}, nil

	case "listwallets":
		loaded := []string{}
		for name, wlt := range n.wallets {
			if wlt.loaded {
				loaded = append(loaded, name)
			}
		}
		return loaded, nil

	case "createwallet":
		var name string
		_ = json.Unmarshal(req.Params[0], &name)
		if _, exists := n.wallets[name]; exists {
			return nil, &rpcError{Code: -4, Message: "Database already exists"}
		}
		n.wallets[name] = &fakeWallet{loaded: true}
		return map[string]string{"name": name}, nil

	case "loadwallet":
		var name string
		_ = json.Unmarshal(req.Params[0], &name)
		wlt, exists := n.wallets[name]
		if !exists {
			return nil, &rpcError{Code: -18, Message: "Requested wallet does not exist or is not loaded"}
		}
		if wlt.loaded {
			return nil, &rpcError{Code: -35, Message: "Wallet \"" + name + "\" is already loaded"}
		}
		wlt.loaded = true
		return map[string]string{"name": name}, nil

	case "getnewaddress":
		wlt, rpcErr := n.scoped(walletScope)
		if rpcErr != nil {
			return nil, rpcErr
		}
		addr := fakeAddresses[wlt.addrIdx%len(fakeAddresses)]
		wlt.addrIdx++
		return addr, nil

	case "getbalance":
		wlt, rpcErr := n.scoped(walletScope)
		if rpcErr != nil {
			return nil, rpcErr
		}
		return wlt.balanceBTC, nil

	case "sendtoaddress":
		wlt, rpcErr := n.scoped(walletScope)
		if rpcErr != nil {
			return nil, rpcErr
		}
		var amount float64
		_ = json.Unmarshal(req.Params[1], &amount)
		if amount > wlt.balanceBTC {
			return nil, &rpcError{Code: -6, Message: "Insufficient funds"}
		}
		wlt.balanceBTC -= amount
		return fakeTxID, nil

	default:
		return nil, &rpcError{Code: -32601, Message: "Method not found"}
	}
}

// scoped resolves the wallet addressed by the request path, mirroring the
// node's behavior for missing or unloaded wallets.
func (n *fakeNode) scoped(name string) (*fakeWallet, *rpcError) {
	wlt, exists := n.wallets[name]
	if name == "" || !exists || !wlt.loaded {
		return nil, &rpcError{Code: -18, Message: "Requested wallet does not exist or is not loaded"}
	}
	return wlt, nil
}

func reply(w http.ResponseWriter, id, result interface{}, rpcErr *rpcError) {
	resp := map[string]interface{}{
		"result": result,
		"error":  rpcErr,
		"id":     id,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
