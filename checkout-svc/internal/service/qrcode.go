package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// PickupQRGenerator encodes a pickup link the restaurant scans at the counter.
type PickupQRGenerator struct {
	BaseURL string
	Size    int
}

func (g PickupQRGenerator) Generate(orderID string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	data := fmt.Sprintf("%s/pickup?order_id=%s", g.BaseURL, orderID)
	return qrcode.Encode(data, qrcode.Medium, size)
}
