package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database"
)

func (m *mysqlConnector) LoadForm(ctx context.Context, key string) (*entities.FormState, error) {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	var state entities.FormState
	res := m.db.WithContext(tCtx).
		Where(&entities.FormState{StorageKey: key}).
		First(&state)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, database.ErrFormNotFound
		}
		return nil, res.Error
	}

	return &state, nil
}

func (m *mysqlConnector) SaveForm(ctx context.Context, state entities.FormState) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	return m.db.WithContext(tCtx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at", "deleted_at"}),
		}).
		Create(&state).Error
}

func (m *mysqlConnector) DeleteForm(ctx context.Context, key string) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	// hard delete, a soft deleted row would still block the unique storage key
	return m.db.WithContext(tCtx).
		Unscoped().
		Where(&entities.FormState{StorageKey: key}).
		Delete(&entities.FormState{}).Error
}
