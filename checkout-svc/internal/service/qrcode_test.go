package service_test

import (
	"bytes"
	"testing"

	"overcooked-checkout/checkout-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupQRGenerator(t *testing.T) {
	png, err := service.PickupQRGenerator{BaseURL: "http://localhost:8080"}.Generate("order-1")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
