package interaction

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
)

const formKey = "nbu_qr_generator_data"

func TestLoadFormFallsBackToDefaults(t *testing.T) {
	i, _ := newTestInteractor(t)

	data, err := i.LoadForm(context.Background(), formKey)
	require.NoError(t, err)
	require.Equal(t, i.DefaultForm(), data)
}

func TestSaveAndLoadForm(t *testing.T) {
	i, _ := newTestInteractor(t)
	ctx := context.Background()

	data := validData()
	amount := 150.5
	data.Amount = &amount

	require.NoError(t, i.SaveForm(ctx, formKey, data))

	loaded, err := i.LoadForm(ctx, formKey)
	require.NoError(t, err)
	require.Equal(t, data, loaded)
}

func TestLoadFormDiscardsCorruptState(t *testing.T) {
	i, repo := newTestInteractor(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveForm(ctx, entities.FormState{StorageKey: formKey, Data: "{not json"}))

	data, err := i.LoadForm(ctx, formKey)
	require.NoError(t, err)
	require.Equal(t, i.DefaultForm(), data)
}

func TestLoadFormStorageError(t *testing.T) {
	i, err := NewServiceInteractor(&failingRepository{}, serviceConfig, logging.NewNoopLogger())
	require.NoError(t, err)

	_, err = i.LoadForm(context.Background(), formKey)
	require.ErrorIs(t, err, errStorage)

	require.ErrorIs(t, i.SaveForm(context.Background(), formKey, validData()), errStorage)
	require.ErrorIs(t, i.ClearForm(context.Background(), formKey), errStorage)
}

func TestClearForm(t *testing.T) {
	i, _ := newTestInteractor(t)
	ctx := context.Background()

	require.NoError(t, i.SaveForm(ctx, formKey, validData()))
	require.NoError(t, i.ClearForm(ctx, formKey))

	data, err := i.LoadForm(ctx, formKey)
	require.NoError(t, err)
	require.Equal(t, i.DefaultForm(), data)
}

func TestOpenForm(t *testing.T) {
	i, _ := newTestInteractor(t)
	ctx := context.Background()

	saved := validData()
	require.NoError(t, i.SaveForm(ctx, formKey, saved))

	name := "Новий отримувач"
	amount := 20.0
	data, err := i.OpenForm(ctx, formKey, entities.PaymentDataOverlay{RecipientName: &name, Amount: &amount})
	require.NoError(t, err)
	require.Equal(t, name, data.RecipientName)
	require.Equal(t, saved.IBAN, data.IBAN)
	require.Equal(t, 20.0, *data.Amount)

	reloaded, err := i.LoadForm(ctx, formKey)
	require.NoError(t, err)
	require.Equal(t, data, reloaded)
}

func TestOpenFormWithoutOverlayDoesNotSave(t *testing.T) {
	i, repo := newTestInteractor(t)
	ctx := context.Background()

	data, err := i.OpenForm(ctx, formKey, entities.PaymentDataOverlay{})
	require.NoError(t, err)
	require.Equal(t, i.DefaultForm(), data)

	_, err = repo.LoadForm(ctx, formKey)
	require.Error(t, err)
}

func TestOpenFormDropsUnstorableAmount(t *testing.T) {
	i, _ := newTestInteractor(t)
	ctx := context.Background()

	nan := math.NaN()
	data, err := i.OpenForm(ctx, formKey, entities.PaymentDataOverlay{Amount: &nan})
	require.NoError(t, err)
	require.Nil(t, data.Amount)
}
