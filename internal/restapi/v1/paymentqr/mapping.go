package v1paymentqr

import (
	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
)

func PaymentDataDtoFrom(data entities.PaymentData) PaymentDataDto {
	return PaymentDataDto{
		RecipientName:      data.RecipientName,
		IBAN:               data.IBAN,
		Amount:             data.Amount,
		Currency:           data.Currency,
		IdentificationCode: data.IdentificationCode,
		Purpose:            data.Purpose,
		Reference:          data.Reference,
		Display:            data.Display,
	}
}

func PaymentDataFrom(dto PaymentDataDto) entities.PaymentData {
	return entities.PaymentData{
		RecipientName:      dto.RecipientName,
		IBAN:               dto.IBAN,
		Amount:             dto.Amount,
		Currency:           dto.Currency,
		IdentificationCode: dto.IdentificationCode,
		Purpose:            dto.Purpose,
		Reference:          dto.Reference,
		Display:            dto.Display,
	}
}

func EncodingResultDtoFrom(res *entities.EncodingResult) *EncodingResultDto {
	return &EncodingResultDto{
		FullUrl:        res.FullUrl,
		RawPayload:     res.RawPayload,
		EncodedPayload: res.EncodedPayload,
	}
}
