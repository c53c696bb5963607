//go:build unit

package appointment_test

import (
	"testing"

	"bookline/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrice(t *testing.T) {
	custom := func(v int64) *int64 { return &v }

	cases := []struct {
		name             string
		mode             appointment.PriceMode
		customPriceCents *int64
		servicePrice     int64
		want             int64
		errIs            error
	}{
		{
			name:         "standard mode uses the service price",
			mode:         appointment.PriceModeStandard,
			servicePrice: 4500,
			want:         4500,
		},
		{
			name:             "custom mode uses the override",
			mode:             appointment.PriceModeCustom,
			customPriceCents: custom(9900),
			servicePrice:     4500,
			want:             9900,
		},
		{
			name:             "standard mode rejects an override",
			mode:             appointment.PriceModeStandard,
			customPriceCents: custom(9900),
			servicePrice:     4500,
			errIs:            appointment.ErrCustomPriceNotAllowed,
		},
		{
			name:  "custom mode requires an override",
			mode:  appointment.PriceModeCustom,
			errIs: appointment.ErrInvalidCustomPrice,
		},
		{
			name:             "custom price must be positive",
			mode:             appointment.PriceModeCustom,
			customPriceCents: custom(0),
			errIs:            appointment.ErrInvalidCustomPrice,
		},
		{
			name:             "negative custom price is rejected",
			mode:             appointment.PriceModeCustom,
			customPriceCents: custom(-100),
			errIs:            appointment.ErrInvalidCustomPrice,
		},
		{
			name:  "unknown mode is rejected",
			mode:  appointment.PriceMode("discount"),
			errIs: appointment.ErrInvalidPriceMode,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := appointment.ResolvePrice(tc.mode, tc.customPriceCents, tc.servicePrice)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
