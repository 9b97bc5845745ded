package interaction

import (
	"context"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
)

type Interactor interface {
	// GenerateQr encodes data once recipient name and IBAN are filled in.
	GenerateQr(ctx context.Context, data entities.PaymentData, version entities.QrVersion) (*entities.EncodingResult, error)
	// RenderQrImage encodes data and renders the resulting link as a PNG.
	RenderQrImage(ctx context.Context, data entities.PaymentData, version entities.QrVersion, size int) ([]byte, *entities.EncodingResult, error)
	// DecodeQr turns a token back into its raw payload.
	DecodeQr(ctx context.Context, token string) (string, error)

	DefaultForm() entities.PaymentData
	// LoadForm never fails on missing or corrupt saved state, it falls back to DefaultForm.
	LoadForm(ctx context.Context, key string) (entities.PaymentData, error)
	SaveForm(ctx context.Context, key string, data entities.PaymentData) error
	ClearForm(ctx context.Context, key string) error
	// OpenForm loads the saved state, applies the deep link overlay and saves the result.
	OpenForm(ctx context.Context, key string, overlay entities.PaymentDataOverlay) (entities.PaymentData, error)
}
