package service

import (
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate() ([]byte, error)
}

// DefaultQRGenerator renders the public menu URL as a PNG, for table cards.
type DefaultQRGenerator struct {
	MenuURL string
}

func (g DefaultQRGenerator) Generate() ([]byte, error) {
	return qrcode.Encode(g.MenuURL, qrcode.Medium, 256)
}
