package deeplink

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
)

func TestParseQuery(t *testing.T) {
	values, err := url.ParseQuery("name=%D0%A2%D0%B5%D1%81%D1%82&iban=UA123&edrpou=12345678&amount=150.5&purpose=rent&unknown=1")
	require.NoError(t, err)

	overlay, found := ParseQuery(values)
	require.True(t, found)

	data := overlay.ApplyTo(entities.DefaultPaymentData())
	require.Equal(t, "Тест", data.RecipientName)
	require.Equal(t, "UA123", data.IBAN)
	require.Equal(t, "12345678", data.IdentificationCode)
	require.Equal(t, "rent", data.Purpose)
	require.NotNil(t, data.Amount)
	require.Equal(t, 150.5, *data.Amount)
	require.Equal(t, "UAH", data.Currency)
}

func TestParseQueryNothingRecognized(t *testing.T) {
	values, err := url.ParseQuery("foo=bar&version=003")
	require.NoError(t, err)

	overlay, found := ParseQuery(values)
	require.False(t, found)
	require.True(t, overlay.IsEmpty())
}

func TestParseQueryEmptyValuesClearFields(t *testing.T) {
	values, err := url.ParseQuery("name=&amount=")
	require.NoError(t, err)

	overlay, found := ParseQuery(values)
	require.True(t, found)

	base := entities.DefaultPaymentData()
	base.RecipientName = "old"
	prev := 10.0
	base.Amount = &prev

	data := overlay.ApplyTo(base)
	require.Equal(t, "", data.RecipientName)
	require.NotNil(t, data.Amount)
	require.Equal(t, 0.0, *data.Amount)
	require.Equal(t, 10.0, prev)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Should parse an integer", input: "150", expected: 150},
		{name: "Should parse a fraction", input: "150.25", expected: 150.25},
		{name: "Should ignore trailing text", input: "99.5грн", expected: 99.5},
		{name: "Should ignore surrounding blanks", input: "  7 ", expected: 7},
		{name: "Should parse a leading dot", input: ".5", expected: 0.5},
		{name: "Should parse an exponent", input: "1e3", expected: 1000},
		{name: "Should ignore an incomplete exponent", input: "2e", expected: 2},
		{name: "Should parse negative values", input: "-3", expected: -3},
		{name: "Should parse Infinity", input: "Infinity", expected: math.Inf(1)},
		{name: "Should stop at a comma", input: "1,5", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseAmount(tt.input))
		})
	}
}

func TestParseAmountNotANumber(t *testing.T) {
	require.True(t, math.IsNaN(ParseAmount("abc")))
	require.True(t, math.IsNaN(ParseAmount("")))
	require.True(t, math.IsNaN(ParseAmount("-")))
}
