package entities

type QrVersion string

const (
	QrVersion001 QrVersion = "001"
	QrVersion002 QrVersion = "002"
	QrVersion003 QrVersion = "003"
)

const DefaultQrVersion = QrVersion002

const DefaultCurrency = "UAH"

func (v QrVersion) IsValid() bool {
	switch v {
	case QrVersion001, QrVersion002, QrVersion003:
		return true
	}

	return false
}

// PaymentData holds everything that ends up in the NBU payment payload.
//
// Amount, Reference and Display are optional. A nil Amount means the payer
// enters the amount in the banking app.
type PaymentData struct {
	RecipientName      string   `json:"recipientName" validate:"required"`
	IBAN               string   `json:"iban" validate:"required"`
	Amount             *float64 `json:"amount,omitempty"`
	Currency           string   `json:"currency"`
	IdentificationCode string   `json:"identificationCode"`
	Purpose            string   `json:"purpose"`
	Reference          *string  `json:"reference,omitempty"`
	Display            *string  `json:"display,omitempty"`
}

// EncodingResult is derived from PaymentData and a QrVersion, nothing else.
type EncodingResult struct {
	FullUrl        string `json:"fullUrl"`
	RawPayload     string `json:"rawPayload"`
	EncodedPayload string `json:"encodedPayload"`
}

// DefaultPaymentData is the state of an empty form.
func DefaultPaymentData() PaymentData {
	empty := ""
	return PaymentData{
		Currency:  DefaultCurrency,
		Reference: &empty,
		Display:   &empty,
	}
}

// PaymentDataOverlay carries optional replacements for PaymentData fields.
// A nil field leaves the underlying value untouched.
type PaymentDataOverlay struct {
	RecipientName      *string
	IBAN               *string
	Amount             *float64
	Currency           *string
	IdentificationCode *string
	Purpose            *string
	Reference          *string
	Display            *string
}

func (o PaymentDataOverlay) IsEmpty() bool {
	return o == PaymentDataOverlay{}
}

// ApplyTo returns a copy of base with every set overlay field replaced.
func (o PaymentDataOverlay) ApplyTo(base PaymentData) PaymentData {
	result := base
	if o.RecipientName != nil {
		result.RecipientName = *o.RecipientName
	}
	if o.IBAN != nil {
		result.IBAN = *o.IBAN
	}
	if o.Amount != nil {
		amount := *o.Amount
		result.Amount = &amount
	}
	if o.Currency != nil {
		result.Currency = *o.Currency
	}
	if o.IdentificationCode != nil {
		result.IdentificationCode = *o.IdentificationCode
	}
	if o.Purpose != nil {
		result.Purpose = *o.Purpose
	}
	if o.Reference != nil {
		reference := *o.Reference
		result.Reference = &reference
	}
	if o.Display != nil {
		display := *o.Display
		result.Display = &display
	}
	return result
}
