package database

import (
	"context"
	"errors"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
)

var ErrFormNotFound = errors.New("no saved form state for this key")

type Repository interface {
	Migrate() error
	Close() error
	FormCRUD
}

type FormCRUD interface {
	// LoadForm returns ErrFormNotFound if nothing was saved under key.
	LoadForm(ctx context.Context, key string) (*entities.FormState, error)
	// SaveForm creates or replaces the state stored under state.StorageKey.
	SaveForm(ctx context.Context, state entities.FormState) error
	// DeleteForm does nothing if the key is unknown.
	DeleteForm(ctx context.Context, key string) error
}
