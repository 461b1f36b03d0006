// Package qrcode reads the text payload of a QR code from an uploaded image.
package qrcode

import (
	"bytes"
	"errors"
	"image"

	// Registered image formats for uploads.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/mrlokans/businesscards/internal/cards"
)

// Reader extracts QR code text from encoded image bytes.
type Reader struct {
	hints map[gozxing.DecodeHintType]interface{}
}

// NewReader creates a Reader that tries harder on noisy photos.
func NewReader() *Reader {
	return &Reader{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// ReadText decodes the image and returns the QR payload text.
// Undecodable images and images without a QR code are structural errors.
func (r *Reader) ReadText(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", cards.NewStructuralError(cards.KindInvalidImage, "Uploaded file is not a readable image", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", cards.NewStructuralError(cards.KindInvalidImage, "Uploaded file is not a readable image", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, r.hints)
	if err != nil {
		return "", cards.NewStructuralError(cards.KindNoQRCode, "No QR code detected", err)
	}
	if result == nil {
		return "", cards.NewStructuralError(cards.KindNoQRCode, "No QR code detected", errors.New("empty result"))
	}

	return result.GetText(), nil
}
