// Package nbuqr builds the payment payload of the National Bank of Ukraine
// payment QR code.
//
// The field order and delimiters are the wire format read by the banking apps,
// they must not change.
package nbuqr

import (
	"encoding/base64"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
)

const (
	ServiceTag     = "BCD"
	CodingUTF8     = "1"
	FunctionCode   = "UCT"
	FieldDelimiter = "\n"
	FieldCount     = 13
)

const (
	BaseUrl       = "https://bank.gov.ua/qr/"
	LegacyBaseUrl = "https://qr.bank.gov.ua/"
)

// Encode turns payment data into the NBU payload, its base64url token and the
// link that goes into the QR code.
//
// Encode accepts any input, including empty strings, and never fails.
func Encode(data entities.PaymentData, version entities.QrVersion) entities.EncodingResult {
	fields := []string{
		ServiceTag,
		string(version),
		CodingUTF8,
		FunctionCode,
		"", // bank identifier
		data.RecipientName,
		data.IBAN,
		amountField(data.Currency, data.Amount),
		data.IdentificationCode,
		"", // purpose code
		optional(data.Reference),
		data.Purpose,
		optional(data.Display),
	}

	rawPayload := strings.Join(fields, FieldDelimiter)
	encodedPayload := base64.RawURLEncoding.EncodeToString([]byte(rawPayload))

	return entities.EncodingResult{
		FullUrl:        baseUrlFor(version) + encodedPayload,
		RawPayload:     rawPayload,
		EncodedPayload: encodedPayload,
	}
}

// DecodePayload reverses the token encoding of Encode.
func DecodePayload(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SplitFields splits a raw payload into its fields.
func SplitFields(rawPayload string) []string {
	return strings.Split(rawPayload, FieldDelimiter)
}

// only 002 and 003 live under bank.gov.ua, every other value goes to the legacy host
func baseUrlFor(version entities.QrVersion) string {
	if version == entities.QrVersion002 || version == entities.QrVersion003 {
		return BaseUrl
	}
	return LegacyBaseUrl
}

// amountField is empty for a missing, zero or NaN amount. Otherwise the currency
// is followed directly by the shortest decimal form of the amount, unrounded.
func amountField(currency string, amount *float64) string {
	if amount == nil {
		return ""
	}
	value := *amount
	if value == 0 || math.IsNaN(value) {
		return ""
	}
	return currency + formatAmount(value)
}

func formatAmount(value float64) string {
	if math.IsInf(value, 1) {
		return "Infinity"
	}
	if math.IsInf(value, -1) {
		return "-Infinity"
	}
	return decimal.NewFromFloat(value).String()
}

func optional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
