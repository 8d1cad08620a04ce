package qrcode

import (
	"neighbiz/internal/pkg/errs"

	qr "github.com/skip2/go-qrcode"
)

const DefaultSize = 512

type Renderer struct {
	size int
}

func NewRenderer() *Renderer {
	return &Renderer{size: DefaultSize}
}

func (r *Renderer) PNG(content string) ([]byte, error) {
	png, err := qr.Encode(content, qr.Medium, r.size)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode qr code")
	}
	return png, nil
}
