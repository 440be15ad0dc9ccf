package domain

import (
	"regexp"
	"strings"
)

// Wallet name rules. The name becomes a path segment of the node's
// per-wallet RPC endpoint (/wallet/<name>) and a directory name in the
// node's wallet dir, so it must be safe in both positions.
const maxWalletNameLen = 64

var walletNameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_\-\.]*$`)

// ValidWalletName reports whether name can be used as a wallet identifier.
func ValidWalletName(name string) bool {
	if name == "" || len(name) > maxWalletNameLen {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	return walletNameRe.MatchString(name)
}
