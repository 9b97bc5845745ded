package v1paymentqr

// PaymentDataDto uses the field names of the saved browser form state.
type PaymentDataDto struct {
	RecipientName      string   `json:"recipientName"`
	IBAN               string   `json:"iban"`
	Amount             *float64 `json:"amount,omitempty"`
	Currency           string   `json:"currency"`
	IdentificationCode string   `json:"identificationCode"`
	Purpose            string   `json:"purpose"`
	Reference          *string  `json:"reference,omitempty"`
	Display            *string  `json:"display,omitempty"`
}

// GenerateQrRequest is the body of POST /qr and POST /qr/image.
//
// Version may be omitted, the configured default version is used then.
type GenerateQrRequest struct {
	Data    PaymentDataDto `json:"data"`
	Version string         `json:"version"`
}

type EncodingResultDto struct {
	FullUrl        string `json:"fullUrl"`
	RawPayload     string `json:"rawPayload"`
	EncodedPayload string `json:"encodedPayload"`
}

type DecodeResultDto struct {
	RawPayload string   `json:"rawPayload"`
	Fields     []string `json:"fields"`
}
