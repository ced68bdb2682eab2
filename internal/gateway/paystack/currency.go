package paystack

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// minorUnitCurrency — валюта, для которой Paystack принимает сумму
// в минимальных единицах (кобо). Остальные поддерживаемые валюты
// передаются как десятичная сумма в основных единицах, без пересчета.
// Это требование API шлюза, таблицу менять нельзя.
const minorUnitCurrency = "NGN"

const minorUnitsPerMajor = 100

// encodeAmount кодирует сумму по правилам шлюза для конкретной валюты.
// NGN: amount * 100, дробная часть отбрасывается.
func encodeAmount(amount decimal.Decimal, currency string) json.Number {
	if currency == minorUnitCurrency {
		minor := amount.Mul(decimal.NewFromInt(minorUnitsPerMajor)).IntPart()
		return json.Number(strconv.FormatInt(minor, 10))
	}
	return json.Number(amount.String())
}

// decodeAmount — обратное преобразование для сумм из ответов шлюза.
func decodeAmount(raw json.Number, currency string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Decimal{}, err
	}

	if currency == minorUnitCurrency {
		return amount.Div(decimal.NewFromInt(minorUnitsPerMajor)), nil
	}
	return amount, nil
}
