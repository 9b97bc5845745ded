// Package dbtest holds the behaviour every Repository implementation must show.
package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database"
)

func RunFormCRUDTests(t *testing.T, repo database.Repository) {
	ctx := context.Background()

	t.Run("Should return not found for an unknown key", func(t *testing.T) {
		state, err := repo.LoadForm(ctx, "unknown")
		require.ErrorIs(t, err, database.ErrFormNotFound)
		require.Nil(t, state)
	})

	t.Run("Should save and load a form", func(t *testing.T) {
		require.NoError(t, repo.SaveForm(ctx, entities.FormState{
			StorageKey: "first",
			Data:       `{"recipientName":"Тест"}`,
		}))

		state, err := repo.LoadForm(ctx, "first")
		require.NoError(t, err)
		require.Equal(t, "first", state.StorageKey)
		require.Equal(t, `{"recipientName":"Тест"}`, state.Data)
		require.NotZero(t, state.ID)
	})

	t.Run("Should replace a form saved under the same key", func(t *testing.T) {
		require.NoError(t, repo.SaveForm(ctx, entities.FormState{StorageKey: "second", Data: "a"}))
		before, err := repo.LoadForm(ctx, "second")
		require.NoError(t, err)

		require.NoError(t, repo.SaveForm(ctx, entities.FormState{StorageKey: "second", Data: "b"}))
		after, err := repo.LoadForm(ctx, "second")
		require.NoError(t, err)

		require.Equal(t, "b", after.Data)
		require.Equal(t, before.ID, after.ID)
	})

	t.Run("Should keep forms under different keys apart", func(t *testing.T) {
		require.NoError(t, repo.SaveForm(ctx, entities.FormState{StorageKey: "third", Data: "3"}))
		require.NoError(t, repo.SaveForm(ctx, entities.FormState{StorageKey: "fourth", Data: "4"}))

		third, err := repo.LoadForm(ctx, "third")
		require.NoError(t, err)
		require.Equal(t, "3", third.Data)
	})

	t.Run("Should treat keys as case sensitive", func(t *testing.T) {
		require.NoError(t, repo.SaveForm(ctx, entities.FormState{StorageKey: "Case", Data: "upper"}))
		require.NoError(t, repo.SaveForm(ctx, entities.FormState{StorageKey: "case", Data: "lower"}))

		upper, err := repo.LoadForm(ctx, "Case")
		require.NoError(t, err)
		require.Equal(t, "upper", upper.Data)

		lower, err := repo.LoadForm(ctx, "case")
		require.NoError(t, err)
		require.Equal(t, "lower", lower.Data)
		require.NotEqual(t, upper.ID, lower.ID)
	})

	t.Run("Should delete a form and tolerate deleting again", func(t *testing.T) {
		require.NoError(t, repo.SaveForm(ctx, entities.FormState{StorageKey: "gone", Data: "x"}))
		require.NoError(t, repo.DeleteForm(ctx, "gone"))

		_, err := repo.LoadForm(ctx, "gone")
		require.ErrorIs(t, err, database.ErrFormNotFound)

		require.NoError(t, repo.DeleteForm(ctx, "gone"))
	})
}
