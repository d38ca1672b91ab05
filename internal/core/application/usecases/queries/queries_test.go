package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/pkg/errs"
)

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	query, err := queries.NewGetCustomerOrdersQuery(7)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(7), query.CustomerID())

	_, err = queries.NewGetCustomerOrdersQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero queries.GetCustomerOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetCustomerOrdersQueryIsNotConstructed)
}

func TestNewGetCleanerOrdersQuery(t *testing.T) {
	query, err := queries.NewGetCleanerOrdersQuery(3)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(3), query.CleanerID())

	_, err = queries.NewGetCleanerOrdersQuery(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero queries.GetCleanerOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetCleanerOrdersQueryIsNotConstructed)
}

func TestNewGetAvailableOrdersQuery(t *testing.T) {
	query := queries.NewGetAvailableOrdersQuery("Almaty")
	require.NoError(t, query.Validate())
	assert.Equal(t, "Almaty", query.City())

	anyCity := queries.NewGetAvailableOrdersQuery("")
	require.NoError(t, anyCity.Validate())
	assert.Empty(t, anyCity.City())

	var zero queries.GetAvailableOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAvailableOrdersQueryIsNotConstructed)
}

func TestNewGetAllOrdersQuery(t *testing.T) {
	pending := order.Pending
	query, err := queries.NewGetAllOrdersQuery(&pending, "Astana")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.Status())
	assert.Equal(t, order.Pending, *query.Status())
	assert.Equal(t, "Astana", query.City())

	unfiltered, err := queries.NewGetAllOrdersQuery(nil, "")
	require.NoError(t, err)
	assert.Nil(t, unfiltered.Status())

	unknown := order.Status(42)
	_, err = queries.NewGetAllOrdersQuery(&unknown, "")
	require.Error(t, err)

	var zero queries.GetAllOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestNewGetAllCleanersQuery(t *testing.T) {
	query := queries.NewGetAllCleanersQuery()
	require.NoError(t, query.Validate())

	var zero queries.GetAllCleanersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAllCleanersQueryIsNotConstructed)
}
