package dto

// RegisterRequest is the request body for wallet registration.
// The passphrase is accepted for API compatibility but not forwarded to the
// node (see DESIGN.md).
type RegisterRequest struct {
	WalletName string `json:"wallet_name" binding:"required"`
	Passphrase string `json:"passphrase"`
}

// RegisterResponse returns the fresh receiving address of the provisioned
// wallet.
type RegisterResponse struct {
	WalletID string `json:"wallet_id"`
}

// BalanceResponse is the response body for balance queries.
type BalanceResponse struct {
	Status  string  `json:"status"`
	Wallet  string  `json:"wallet"`
	Balance float64 `json:"balance"`
}

// SendRequest is the request body for coin transfers. Amount is decimal BTC;
// validation happens in the service so rejections carry precise error codes.
type SendRequest struct {
	Address string  `json:"address" binding:"required"`
	Amount  float64 `json:"amount"`
	Comment string  `json:"comment"`
}

// SendResponse returns the broadcast transaction id.
type SendResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}
