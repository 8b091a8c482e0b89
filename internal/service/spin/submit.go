package spin

import (
	"context"

	"spinner_backend/internal/ledger"
	"spinner_backend/internal/model"
)

// submitSettlement - отправляет в реестр перевод на чистый итог серии.
// При положительном итоге платит казна, при отрицательном - игрок.
// Нулевой итог не требует перевода
func (s *serv) submitSettlement(ctx context.Context, user *model.User, game *model.GameStats, settlement model.Settlement) (string, error) {
	if settlement.NetResult.IsZero() {
		return "", nil
	}

	manifest := ledger.SettleManifest(s.resource, game.Address, user.Address, settlement.NetResult)

	var signer ledger.Signer
	if settlement.NetResult.IsPositive() {
		signer = ledger.Signer{
			Address:    game.Address,
			PrivateKey: game.PrivateKey,
			PublicKey:  game.PublicKey,
		}
	} else {
		signer = ledger.Signer{
			Address:    user.Address,
			PrivateKey: user.PrivateKey,
			PublicKey:  user.PublicKey,
		}
	}

	result, err := s.ledger.SubmitTransfer(ctx, manifest, signer)
	if err != nil {
		return "", err
	}
	if err := result.Err(); err != nil {
		return "", err
	}
	return result.TransactionID, nil
}
