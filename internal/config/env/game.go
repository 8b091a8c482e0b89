package env

import (
	"fmt"
	"os"
	"time"

	"spinner_backend/internal/config"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// gameYAML - сырой вид секции game в config.yaml
type gameYAML struct {
	Game struct {
		MaxLossPercent string `yaml:"max_loss_percent"`
		MaxBetCeiling  string `yaml:"max_bet_ceiling"`
		MinBet         string `yaml:"min_bet"`
		TransactionFee string `yaml:"transaction_fee"`
		WithdrawFee    string `yaml:"withdraw_fee"`
		MinWithdraw    string `yaml:"min_withdraw"`
		SpinDelay      string `yaml:"spin_delay"`
	} `yaml:"game"`
}

type gameConfig struct {
	maxLossPercent decimal.Decimal
	maxBetCeiling  decimal.Decimal
	minBet         decimal.Decimal
	transactionFee decimal.Decimal
	withdrawFee    decimal.Decimal
	minWithdraw    decimal.Decimal
	spinDelay      time.Duration
}

// NewGameConfigFromYAML - читает игровые настройки из YAML файла.
// Суммы парсятся как decimal, чтобы не терять точность на комиссиях
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	cfg := &gameConfig{}
	fields := []struct {
		name string
		src  string
		dst  *decimal.Decimal
	}{
		{"max_loss_percent", raw.Game.MaxLossPercent, &cfg.maxLossPercent},
		{"max_bet_ceiling", raw.Game.MaxBetCeiling, &cfg.maxBetCeiling},
		{"min_bet", raw.Game.MinBet, &cfg.minBet},
		{"transaction_fee", raw.Game.TransactionFee, &cfg.transactionFee},
		{"withdraw_fee", raw.Game.WithdrawFee, &cfg.withdrawFee},
		{"min_withdraw", raw.Game.MinWithdraw, &cfg.minWithdraw},
	}
	for _, f := range fields {
		val, err := decimal.NewFromString(f.src)
		if err != nil {
			return nil, fmt.Errorf("invalid game config value %s: %w", f.name, err)
		}
		*f.dst = val
	}

	cfg.spinDelay, err = time.ParseDuration(raw.Game.SpinDelay)
	if err != nil {
		return nil, fmt.Errorf("invalid game config value spin_delay: %w", err)
	}

	return cfg, nil
}

func (cfg *gameConfig) MaxLossPercent() decimal.Decimal {
	return cfg.maxLossPercent
}

func (cfg *gameConfig) MaxBetCeiling() decimal.Decimal {
	return cfg.maxBetCeiling
}

func (cfg *gameConfig) MinBet() decimal.Decimal {
	return cfg.minBet
}

func (cfg *gameConfig) TransactionFee() decimal.Decimal {
	return cfg.transactionFee
}

func (cfg *gameConfig) WithdrawFee() decimal.Decimal {
	return cfg.withdrawFee
}

func (cfg *gameConfig) MinWithdraw() decimal.Decimal {
	return cfg.minWithdraw
}

func (cfg *gameConfig) SpinDelay() time.Duration {
	return cfg.spinDelay
}
