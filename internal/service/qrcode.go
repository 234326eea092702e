package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type ReceiptQRGenerator struct {
	BaseURL string
}

func (g ReceiptQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/receipt.html?order_id=%s", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ QRGenerator = ReceiptQRGenerator{}
