package interaction

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database"
)

func (s *serviceInteractor) LoadForm(ctx context.Context, key string) (entities.PaymentData, error) {
	logger := logging.LoggerFromContext(ctx)

	state, err := s.store.LoadForm(ctx, key)
	if err != nil {
		if errors.Is(err, database.ErrFormNotFound) {
			return s.DefaultForm(), nil
		}
		return entities.PaymentData{}, err
	}

	data := entities.PaymentData{}
	if err := json.Unmarshal([]byte(state.Data), &data); err != nil {
		logger.Warn("Failed to parse saved form %s, discarding it. [error]: %v", key, err)
		return s.DefaultForm(), nil
	}

	return data, nil
}

func (s *serviceInteractor) SaveForm(ctx context.Context, key string, data entities.PaymentData) error {
	raw, err := json.Marshal(storable(data))
	if err != nil {
		return err
	}

	return s.store.SaveForm(ctx, entities.FormState{
		StorageKey: key,
		Data:       string(raw),
	})
}

func (s *serviceInteractor) ClearForm(ctx context.Context, key string) error {
	return s.store.DeleteForm(ctx, key)
}

func (s *serviceInteractor) OpenForm(ctx context.Context, key string, overlay entities.PaymentDataOverlay) (entities.PaymentData, error) {
	data, err := s.LoadForm(ctx, key)
	if err != nil {
		return entities.PaymentData{}, err
	}

	if overlay.IsEmpty() {
		return data, nil
	}

	data = storable(overlay.ApplyTo(data))
	if err := s.SaveForm(ctx, key, data); err != nil {
		return entities.PaymentData{}, err
	}

	return data, nil
}

// storable drops amounts json cannot represent, the same way a browser
// serializes NaN to null.
func storable(data entities.PaymentData) entities.PaymentData {
	if data.Amount != nil && (math.IsNaN(*data.Amount) || math.IsInf(*data.Amount, 0)) {
		data.Amount = nil
	}
	return data
}
