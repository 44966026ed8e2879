package models

// NetworkInfo describes the chain the backend's token contract lives on.
type NetworkInfo struct {
	Connected       bool   `json:"connected"`
	ChainID         int64  `json:"chain_id"`
	ContractAddress string `json:"contract_address"`
}

type ConnectWalletResponse struct {
	Success bool   `json:"success"`
	Reward  int64  `json:"reward"`
	Message string `json:"message,omitempty"`
}

type SyncTokensResponse struct {
	Success      bool   `json:"success"`
	SyncedTokens int64  `json:"synced_tokens"`
	TxHash       string `json:"tx_hash,omitempty"`
	Message      string `json:"message,omitempty"`
}

// WalletBalance is the cached view of a linked wallet: the on-chain
// SaaS token balance and the native ETH balance.
type WalletBalance struct {
	Success     bool    `json:"success"`
	SaasBalance int64   `json:"saas_balance"`
	EthBalance  float64 `json:"eth_balance"`
}
