package gateway

import (
	"context"

	"github.com/octabyte/smartsaas-go/models"
)

type connectWalletRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required,eth_addr"`
	Signature     string `json:"signature,omitempty"`
}

func (c *Client) GetNetworkInfo(ctx context.Context) (*models.NetworkInfo, error) {
	var out models.NetworkInfo
	if err := c.get(ctx, "/web3/network-info", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConnectWallet links a wallet address to the current user. The
// signature comes from the browser wallet extension and is passed
// through opaquely.
func (c *Client) ConnectWallet(ctx context.Context, address, signature string) (*models.ConnectWalletResponse, error) {
	body := connectWalletRequest{WalletAddress: address, Signature: signature}
	if err := c.validateRequest(body); err != nil {
		return nil, err
	}

	var out models.ConnectWalletResponse
	if err := c.post(ctx, "/web3/connect-wallet", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SyncTokens(ctx context.Context) (*models.SyncTokensResponse, error) {
	var out models.SyncTokensResponse
	if err := c.post(ctx, "/web3/sync-tokens", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWalletBalance(ctx context.Context, address string) (*models.WalletBalance, error) {
	var out models.WalletBalance
	_, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("address", address).
		SetResult(&out).
		Get("/web3/wallet/{address}")
	if err != nil {
		return nil, err
	}
	return &out, nil
}
