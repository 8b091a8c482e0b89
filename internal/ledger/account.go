package ledger

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/blake2b"
)

// Префикс виртуального аккаунта в хэше адреса
const virtualAccountPrefix = 0xd1

// Account - новая пара ключей с производным адресом
type Account struct {
	Address    string
	PrivateKey string
	PublicKey  string
}

// NewAccount - создаёт ключи secp256k1 и выводит виртуальный адрес аккаунта:
// blake2b-256 от сжатого публичного ключа, первые три байта заменяются
// префиксом типа сущности и ID сети
func NewAccount(networkID uint8) (*Account, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}

	pub := priv.PubKey().SerializeCompressed()
	hash := blake2b.Sum256(pub)

	body := make([]byte, 0, len(hash))
	body = append(body, virtualAccountPrefix, networkID)
	body = append(body, hash[2:]...)

	return &Account{
		Address:    fmt.Sprintf("account_%s", hex.EncodeToString(body)),
		PrivateKey: hex.EncodeToString(priv.Serialize()),
		PublicKey:  hex.EncodeToString(pub),
	}, nil
}
