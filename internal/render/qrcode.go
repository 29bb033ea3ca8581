package render

import (
	"image"
	"image/png"
	"io"

	"github.com/skip2/go-qrcode"
)

const (
	defaultQRCodeSizePx = 256
	maxQRCodeSizePx     = 2048
)

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	if sizePx > maxQRCodeSizePx {
		sizePx = maxQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	return qrCode.Image(sizePx), nil
}

// WriteQRCodePNG encodes the QR code for payload as PNG.
func WriteQRCodePNG(w io.Writer, payload string, sizePx int) error {
	img, err := GenerateQRCodeImage(payload, sizePx)
	if err != nil {
		return err
	}
	if img == nil {
		img = image.NewGray(image.Rect(0, 0, 1, 1))
	}
	return png.Encode(w, img)
}
