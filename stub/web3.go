package stub

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octabyte/smartsaas-go/enums"
	"github.com/octabyte/smartsaas-go/models"
)

// Fabricated chain data: Polygon Mumbai testnet.
const (
	stubChainID         = 80001
	stubContractAddress = "0x8Ba1f109551bD432803012645Ac136ddd64DBA72"
	stubEthBalance      = 0.05
)

type connectWalletPayload struct {
	WalletAddress string `json:"wallet_address" validate:"required,eth_addr"`
	Signature     string `json:"signature"`
}

func (s *Server) handleNetworkInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, models.NetworkInfo{
		Connected:       true,
		ChainID:         stubChainID,
		ContractAddress: stubContractAddress,
	})
}

func (s *Server) handleConnectWallet(c echo.Context) error {
	var req connectWalletPayload
	if err := s.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "A valid wallet address is required"})
	}

	if err := s.state.linkWallet(currentUser(c).Email, req.WalletAddress); err != nil {
		if errors.Is(err, errWalletLinked) {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Wallet already linked"})
		}
		return err
	}

	return c.JSON(http.StatusOK, models.ConnectWalletResponse{
		Success: true,
		Reward:  enums.RewardWalletConnect,
		Message: "Wallet connected",
	})
}

func (s *Server) handleSyncTokens(c echo.Context) error {
	synced, err := s.state.syncWallet(currentUser(c).Email)
	if err != nil {
		if errors.Is(err, errNoWallet) {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "No wallet linked"})
		}
		return err
	}

	return c.JSON(http.StatusOK, models.SyncTokensResponse{
		Success:      true,
		SyncedTokens: synced,
		TxHash:       "0x" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Message:      "Tokens synced on-chain",
	})
}

func (s *Server) handleWalletBalance(c echo.Context) error {
	address := c.Param("address")

	saas, ok := s.state.walletBalance(address)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Wallet not found"})
	}

	return c.JSON(http.StatusOK, models.WalletBalance{
		Success:     true,
		SaasBalance: saas,
		EthBalance:  stubEthBalance,
	})
}
