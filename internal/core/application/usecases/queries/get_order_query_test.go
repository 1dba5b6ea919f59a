package queries_test

import (
	"testing"

	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetOrderQuery(id)
		require.NoError(t, err)
		require.True(t, query.OrderID().IsEqual(id))
		require.NoError(t, query.Validate())
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetOrderQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}
