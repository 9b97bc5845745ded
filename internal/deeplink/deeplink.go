// Package deeplink reads payment details from the query string of a shared link.
package deeplink

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
)

const (
	ParamName    = "name"
	ParamIban    = "iban"
	ParamEdrpou  = "edrpou"
	ParamAmount  = "amount"
	ParamPurpose = "purpose"
)

// ParseQuery overlays the recognized query parameters. A parameter that is present
// but empty clears the field. The second return value reports whether any
// recognized parameter was present at all.
func ParseQuery(values url.Values) (entities.PaymentDataOverlay, bool) {
	overlay := entities.PaymentDataOverlay{}

	overlay.RecipientName = stringParam(values, ParamName)
	overlay.IBAN = stringParam(values, ParamIban)
	overlay.IdentificationCode = stringParam(values, ParamEdrpou)
	overlay.Purpose = stringParam(values, ParamPurpose)

	if values.Has(ParamAmount) {
		raw := values.Get(ParamAmount)
		if raw == "" {
			raw = "0"
		}
		amount := ParseAmount(raw)
		overlay.Amount = &amount
	}

	return overlay, !overlay.IsEmpty()
}

func stringParam(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	return &v
}

var numberPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseAmount reads the longest numeric prefix of s and ignores the rest, so
// "150.5 грн" is 150.5. Input without a numeric prefix yields NaN, which the
// encoder treats like a missing amount.
func ParseAmount(s string) float64 {
	match := numberPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return math.NaN()
	}

	switch strings.TrimLeft(match, "+") {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// the prefix is always valid syntax, out of range values come back as ±Inf
	value, _ := strconv.ParseFloat(match, 64)
	return value
}
