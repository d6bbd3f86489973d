package order

import (
	"testing"

	"blackboxinc-be/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code *int
		want Status
	}{
		{"Zero is pending", utils.IntPtr(0), StatusPending},
		{"One is processing", utils.IntPtr(1), StatusProcessing},
		{"Two is delivered", utils.IntPtr(2), StatusDelivered},
		{"Minus one is cancelled", utils.IntPtr(-1), StatusCancelled},
		{"Minus two is cancelled", utils.IntPtr(-2), StatusCancelled},
		{"Minus three is cancelled", utils.IntPtr(-3), StatusCancelled},
		{"Unknown positive is pending", utils.IntPtr(99), StatusPending},
		{"Unknown negative is pending", utils.IntPtr(-9), StatusPending},
		{"Nil is pending", nil, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromCode(tt.code))
		})
	}
}

func TestOrder_Status(t *testing.T) {
	t.Run("MapsStatusCode", func(t *testing.T) {
		o := &Order{StatusCode: 1}
		assert.Equal(t, StatusProcessing, o.Status())
	})

	t.Run("FulfillmentOverrides", func(t *testing.T) {
		shipped := StatusShipped
		o := &Order{StatusCode: 1, Fulfillment: &shipped}
		assert.Equal(t, StatusShipped, o.Status())
	})

	t.Run("ShippedNeverComesFromCode", func(t *testing.T) {
		// No numeric code maps to shipped.
		for code := -10; code <= 10; code++ {
			c := code
			assert.NotEqual(t, StatusShipped, StatusFromCode(&c))
		}
	})
}
