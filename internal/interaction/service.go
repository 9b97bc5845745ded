package interaction

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/eurofurence/reg-ukrpay-service/internal/config"
	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database"
)

var _ Interactor = (*serviceInteractor)(nil)

type serviceInteractor struct {
	logger   logging.Logger
	store    database.Repository
	conf     config.ServiceConfig
	validate *validator.Validate
}

func NewServiceInteractor(r database.Repository, conf config.ServiceConfig, logger logging.Logger) (Interactor, error) {
	if r == nil {
		return nil, errors.New("repository must not be nil")
	}

	if logger == nil {
		logger = logging.NewNoopLogger()
	}

	return &serviceInteractor{
		logger:   logger,
		store:    r,
		conf:     conf,
		validate: validator.New(),
	}, nil
}

func (s *serviceInteractor) defaultVersion() entities.QrVersion {
	if s.conf.DefaultVersion == "" {
		return entities.DefaultQrVersion
	}
	return entities.QrVersion(s.conf.DefaultVersion)
}

func (s *serviceInteractor) DefaultForm() entities.PaymentData {
	data := entities.DefaultPaymentData()
	if s.conf.DefaultCurrency != "" {
		data.Currency = s.conf.DefaultCurrency
	}
	return data
}
