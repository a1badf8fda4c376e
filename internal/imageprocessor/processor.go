package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // регистрирует декодер GIF
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Result - перекодированное фото и метаданные для ключа в хранилище
type Result struct {
	Data        []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
}

// Processor приводит фото актера к единому размеру
type Processor struct {
	quality      int // JPEG quality (1-100)
	maxDimension int // длинная сторона, px
}

// NewProcessor creates a new image processor
func NewProcessor(quality, maxDimension int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	if maxDimension <= 0 {
		maxDimension = 1200
	}
	return &Processor{
		quality:      quality,
		maxDimension: maxDimension,
	}
}

// Process декодирует, уменьшает (если больше maxDimension) и кодирует обратно.
// JPEG остается JPEG, PNG и GIF сохраняются как PNG.
func (p *Processor) Process(reader io.Reader) (*Result, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	resized := p.fit(img)
	bounds := resized.Bounds()

	var buf bytes.Buffer
	res := &Result{Width: bounds.Dx(), Height: bounds.Dy()}

	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		res.ContentType, res.Extension = "image/jpeg", "jpg"
	case "png", "gif":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
		res.ContentType, res.Extension = "image/png", "png"
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	res.Data = buf.Bytes()
	return res, nil
}

// fit уменьшает с сохранением пропорций; маленькие фото не растягиваются
func (p *Processor) fit(img image.Image) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= p.maxDimension && height <= p.maxDimension {
		return img
	}

	newWidth, newHeight := p.maxDimension, p.maxDimension
	if width >= height {
		newHeight = max(1, height*p.maxDimension/width)
	} else {
		newWidth = max(1, width*p.maxDimension/height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
