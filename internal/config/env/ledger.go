package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"spinner_backend/internal/config"
)

const (
	gatewayURLEnvName      = "LEDGER_GATEWAY_URL"
	resourceAddressEnvName = "LEDGER_RESOURCE_ADDRESS"
	networkIDEnvName       = "LEDGER_NETWORK_ID"
)

type ledgerConfig struct {
	gatewayURL      string
	resourceAddress string
	networkID       uint8
}

func NewLedgerConfig() (config.LedgerConfig, error) {
	gatewayURL := os.Getenv(gatewayURLEnvName)
	if len(gatewayURL) == 0 {
		return nil, errors.New("ledger gateway url not found")
	}

	resourceAddress := os.Getenv(resourceAddressEnvName)
	if len(resourceAddress) == 0 {
		return nil, errors.New("ledger resource address not found")
	}

	// ID сети по умолчанию 1 (mainnet)
	networkID := uint64(1)
	if raw := os.Getenv(networkIDEnvName); len(raw) != 0 {
		parsed, err := strconv.ParseUint(raw, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid ledger network id: %w", err)
		}
		networkID = parsed
	}

	return &ledgerConfig{
		gatewayURL:      gatewayURL,
		resourceAddress: resourceAddress,
		networkID:       uint8(networkID),
	}, nil
}

func (cfg *ledgerConfig) GatewayURL() string {
	return cfg.gatewayURL
}

func (cfg *ledgerConfig) ResourceAddress() string {
	return cfg.resourceAddress
}

func (cfg *ledgerConfig) NetworkID() uint8 {
	return cfg.networkID
}
