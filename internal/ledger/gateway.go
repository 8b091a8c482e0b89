package ledger

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"spinner_backend/internal/config"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
)

const (
	// Окно валидности транзакции в эпохах
	epochValidityWindow = 10
	// Параметры ожидания финального статуса
	statusPollAttempts = 10
	statusPollDelay    = time.Second
)

// GatewayClient - клиент gateway API леджера. Собирает, подписывает и
// отправляет транзакции, опрашивает статус до финального
type GatewayClient struct {
	baseURL   string
	resource  string
	networkID uint8
	httpc     *http.Client
	log       *logrus.Logger
	// sleep подменяется в тестах
	sleep func(time.Duration)
}

func NewGatewayClient(cfg config.LedgerConfig, log *logrus.Logger) *GatewayClient {
	return &GatewayClient{
		baseURL:   cfg.GatewayURL(),
		resource:  cfg.ResourceAddress(),
		networkID: cfg.NetworkID(),
		httpc:     &http.Client{Timeout: 30 * time.Second},
		log:       log,
		sleep:     time.Sleep,
	}
}

func (c *GatewayClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("gateway returned status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// CurrentEpoch - текущая эпоха сети для окна валидности
func (c *GatewayClient) CurrentEpoch(ctx context.Context) (uint64, error) {
	var out struct {
		LedgerState struct {
			Epoch uint64 `json:"epoch"`
		} `json:"ledger_state"`
	}
	if err := c.post(ctx, "/status/gateway-status", struct{}{}, &out); err != nil {
		return 0, fmt.Errorf("failed to fetch current epoch: %w", err)
	}
	return out.LedgerState.Epoch, nil
}

// GetBalance - живой баланс аккаунта по игровому ресурсу.
// Возвращает ноль, если у аккаунта нет нужного ресурса
func (c *GatewayClient) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	payload := map[string]any{
		"addresses":         []string{address},
		"aggregation_level": "Vault",
	}

	var out struct {
		Items []struct {
			FungibleResources struct {
				Items []struct {
					ResourceAddress string `json:"resource_address"`
					Vaults          struct {
						Items []struct {
							Amount string `json:"amount"`
						} `json:"items"`
					} `json:"vaults"`
				} `json:"items"`
			} `json:"fungible_resources"`
		} `json:"items"`
	}
	if err := c.post(ctx, "/state/entity/details", payload, &out); err != nil {
		return decimal.Zero, fmt.Errorf("failed to get entity details: %w", err)
	}

	if len(out.Items) == 0 {
		return decimal.Zero, nil
	}

	for _, res := range out.Items[0].FungibleResources.Items {
		if res.ResourceAddress != c.resource {
			continue
		}
		if len(res.Vaults.Items) == 0 {
			return decimal.Zero, nil
		}
		amount, err := decimal.NewFromString(res.Vaults.Items[0].Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid balance amount from gateway: %w", err)
		}
		return amount, nil
	}

	return decimal.Zero, nil
}

// intent - подписываемое содержимое транзакции
type intent struct {
	NetworkID       uint8  `json:"network_id"`
	StartEpoch      uint64 `json:"start_epoch_inclusive"`
	EndEpoch        uint64 `json:"end_epoch_exclusive"`
	Nonce           uint32 `json:"nonce"`
	NotaryPublicKey string `json:"notary_public_key"`
	Manifest        string `json:"manifest"`
}

// SubmitTransfer - собирает транзакцию из манифеста, нотаризует её ключом
// подписанта, отправляет и дожидается финального статуса. Если статус не
// стал финальным за отведённые попытки, возвращается Unknown
func (c *GatewayClient) SubmitTransfer(ctx context.Context, manifest string, signer Signer) (*SubmitResult, error) {
	epoch, err := c.CurrentEpoch(ctx)
	if err != nil {
		return nil, err
	}

	nonce, err := randomNonce()
	if err != nil {
		return nil, err
	}

	in := intent{
		NetworkID:       c.networkID,
		StartEpoch:      epoch,
		EndEpoch:        epoch + epochValidityWindow,
		Nonce:           nonce,
		NotaryPublicKey: signer.PublicKey,
		Manifest:        manifest,
	}

	intentBytes, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	intentHash := blake2b.Sum256(intentBytes)
	transactionID := hex.EncodeToString(intentHash[:])

	signature, err := signIntent(signer.PrivateKey, intentHash[:])
	if err != nil {
		return nil, err
	}

	notarized, err := json.Marshal(map[string]string{
		"intent":           hex.EncodeToString(intentBytes),
		"notary_signature": signature,
	})
	if err != nil {
		return nil, err
	}

	var submitOut struct {
		Duplicate bool `json:"duplicate"`
	}
	err = c.post(ctx, "/transaction/submit", map[string]string{
		"notarized_transaction_hex": hex.EncodeToString(notarized),
	}, &submitOut)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"transaction_id": transactionID,
		"signer":         signer.Address,
	}).Info("transaction submitted")

	return c.waitForStatus(ctx, transactionID)
}

// waitForStatus - опрашивает статус транзакции до финального
func (c *GatewayClient) waitForStatus(ctx context.Context, transactionID string) (*SubmitResult, error) {
	payload := map[string]string{"intent_hash": transactionID}

	for attempt := 0; attempt < statusPollAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var out struct {
			Status       string `json:"status"`
			ErrorMessage string `json:"error_message"`
		}
		err := c.post(ctx, "/transaction/status", payload, &out)
		if err != nil {
			c.log.WithError(err).Warn("failed to check transaction status")
			c.sleep(statusPollDelay)
			continue
		}

		switch Status(out.Status) {
		case StatusCommittedSuccess, StatusCommittedFailure, StatusRejected:
			return &SubmitResult{
				TransactionID: transactionID,
				Status:        Status(out.Status),
				ErrorMessage:  out.ErrorMessage,
			}, nil
		}

		// Pending или Unknown - ждём и пробуем снова
		c.sleep(statusPollDelay)
	}

	return &SubmitResult{
		TransactionID: transactionID,
		Status:        StatusUnknown,
		ErrorMessage:  "timed out waiting for transaction confirmation",
	}, nil
}

func randomNonce() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func signIntent(privateKeyHex string, hash []byte) (string, error) {
	privBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}

	priv := secp256k1.PrivKeyFromBytes(privBytes)
	sig := ecdsa.Sign(priv, hash)

	return hex.EncodeToString(sig.Serialize()), nil
}
