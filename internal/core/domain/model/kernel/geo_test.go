package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{
			name:      "valid point",
			latitude:  43.238949,
			longitude: 76.889709,
		},
		{
			name:      "valid point at min bounds",
			latitude:  kernel.LatitudeMin,
			longitude: kernel.LongitudeMin,
		},
		{
			name:      "valid point at max bounds",
			latitude:  kernel.LatitudeMax,
			longitude: kernel.LongitudeMax,
		},
		{
			name:      "latitude too small",
			latitude:  kernel.LatitudeMin - 0.001,
			longitude: 0,
			wantErr:   true,
		},
		{
			name:      "latitude too large",
			latitude:  kernel.LatitudeMax + 0.001,
			longitude: 0,
			wantErr:   true,
		},
		{
			name:      "longitude too small",
			latitude:  0,
			longitude: kernel.LongitudeMin - 0.001,
			wantErr:   true,
		},
		{
			name:      "longitude too large",
			latitude:  0,
			longitude: kernel.LongitudeMax + 0.001,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			require.NoError(t, point.Validate())
			assert.InDelta(t, tt.latitude, point.Latitude(), 0)
			assert.InDelta(t, tt.longitude, point.Longitude(), 0)
		})
	}
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})

	t.Run("constructed point passes validation", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(51.169392, 71.449074)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(43.238949, 76.889709)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(43.238949, 76.889709)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(51.169392, 71.449074)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
