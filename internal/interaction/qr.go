package interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eurofurence/reg-ukrpay-service/internal/apierrors"
	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/nbuqr"
	"github.com/eurofurence/reg-ukrpay-service/internal/qrimage"
)

func (s *serviceInteractor) GenerateQr(ctx context.Context, data entities.PaymentData, version entities.QrVersion) (*entities.EncodingResult, error) {
	if err := s.checkRequired(data); err != nil {
		return nil, err
	}

	if version == "" {
		version = s.defaultVersion()
	}

	result := nbuqr.Encode(data, version)
	logging.LoggerFromContext(ctx).Debug("generated qr payload version %s with %d bytes", version, len(result.RawPayload))

	return &result, nil
}

func (s *serviceInteractor) RenderQrImage(ctx context.Context, data entities.PaymentData, version entities.QrVersion, size int) ([]byte, *entities.EncodingResult, error) {
	result, err := s.GenerateQr(ctx, data, version)
	if err != nil {
		return nil, nil, err
	}

	if size == 0 {
		size = s.conf.ImageSize
	}

	png, err := qrimage.RenderPNG(result.FullUrl, size)
	if err != nil {
		return nil, nil, apierrors.NewUnprocessableEntity(err.Error())
	}

	return png, result, nil
}

func (s *serviceInteractor) DecodeQr(ctx context.Context, token string) (string, error) {
	raw, err := nbuqr.DecodePayload(token)
	if err != nil {
		return "", apierrors.NewBadRequest(fmt.Sprintf("invalid payload token: %v", err))
	}
	return raw, nil
}

// checkRequired mirrors the form, which shows a placeholder instead of a code
// until recipient name and IBAN are present.
func (s *serviceInteractor) checkRequired(data entities.PaymentData) error {
	err := s.validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apierrors.NewBadRequest(err.Error())
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		missing = append(missing, fmt.Sprintf("%s is %s", jsonFieldName(fe.Field()), fe.Tag()))
	}
	return apierrors.NewBadRequest(strings.Join(missing, ", "))
}

func jsonFieldName(field string) string {
	switch field {
	case "RecipientName":
		return "recipientName"
	case "IBAN":
		return "iban"
	}
	return field
}
