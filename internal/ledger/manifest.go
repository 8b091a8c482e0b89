package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Шаблон перевода: списание с одного аккаунта и депозит на другой.
// Структура инструкций повторяет формат манифестов сети
const transferManifest = `
CALL_METHOD
    Address("%s")
    "lock_fee"
    Decimal("%s")
;
CALL_METHOD
    Address("%s")
    "withdraw"
    Address("%s")
    Decimal("%s")
;
TAKE_FROM_WORKTOP
    Address("%s")
    Decimal("%s")
    Bucket("%s")
;
CALL_METHOD
    Address("%s")
    "try_deposit_or_abort"
    Bucket("%s")
    Enum<0u8>( )
;`

func buildTransfer(resource, from, to, lockFee string, amount decimal.Decimal, bucket string) string {
	amt := amount.String()
	return fmt.Sprintf(transferManifest,
		from, lockFee,
		from, resource, amt,
		resource, amt, bucket,
		to, bucket,
	)
}

// SettleManifest - единственная инструкция расчёта за батч спинов.
// При положительном netResult казна платит игроку, при отрицательном игрок
// платит казне. Платящая сторона и блокирует сетевую комиссию
func SettleManifest(resource, gameAddress, playerAddress string, netResult decimal.Decimal) string {
	if netResult.IsPositive() {
		return buildTransfer(resource, gameAddress, playerAddress, "0.5", netResult, "winnings")
	}
	return buildTransfer(resource, playerAddress, gameAddress, "0.5", netResult.Abs(), "payment")
}

// PayoutManifest - выплата из казны игроку (возврат проигрыша).
// Из суммы удерживается 0.5 на сетевую комиссию, отрицательной выплата не бывает
func PayoutManifest(resource, gameAddress, playerAddress string, amount decimal.Decimal) string {
	actual := amount.Sub(decimal.RequireFromString("0.5"))
	if actual.IsNegative() {
		actual = decimal.Zero
	}
	return buildTransfer(resource, gameAddress, playerAddress, "2", actual, "winnings")
}

// WithdrawManifest - вывод средств игрока на внешний адрес.
// Комиссия 1.000001 вычитается из суммы внутри манифеста
func WithdrawManifest(resource, playerAddress, destinationAddress string, amount decimal.Decimal) string {
	actual := amount.Sub(decimal.RequireFromString("1.000001"))
	return buildTransfer(resource, playerAddress, destinationAddress, "1", actual, "tokens")
}
