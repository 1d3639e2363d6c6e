package imaging

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"image"
	"image/png"

	"provenance/internal/domain/entity"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/domain/service"
	"provenance/internal/errors"

	"golang.org/x/image/draw"
)

// The payload is framed as magic | big-endian length | JSON and written one bit per pixel
// into the least-significant bit of the blue channel, row by row.
var watermarkMagic = [4]byte{'P', 'V', 'W', 'M'}

const (
	watermarkHeaderSize = len(watermarkMagic) + 4
	blueChannelOffset   = 2
	bytesPerPixel       = 4
)

type lsbWatermark struct{}

// NewWatermarkEmbedder creates a new blue-channel LSB watermark embedder
func NewWatermarkEmbedder() service.WatermarkEmbedder {
	return &lsbWatermark{}
}

func (w *lsbWatermark) Embed(data []byte, payload *entity.WatermarkPayload) ([]byte, error) {
	if payload == nil {
		return nil, domainerrors.NewProcessingError("watermark", errors.New("payload is required"))
	}

	img, err := decodeImage(data)
	if err != nil {
		return nil, domainerrors.NewProcessingError("decode", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domainerrors.NewProcessingError("watermark", errors.WithStack(err))
	}

	frame := make([]byte, 0, watermarkHeaderSize+len(body))
	frame = append(frame, watermarkMagic[:]...)
	frame = binary.BigEndian.AppendUint32(frame, uint32(len(body)))
	frame = append(frame, body...)

	canvas := toNRGBA(img)
	if capacity := pixelCount(canvas); len(frame)*8 > capacity {
		return nil, domainerrors.NewProcessingError("watermark",
			errors.Errorf("image too small for payload: need %d pixels, have %d", len(frame)*8, capacity))
	}

	for i, b := range frame {
		for bit := 0; bit < 8; bit++ {
			setBlueLSB(canvas, i*8+bit, (b>>(7-bit))&1)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, domainerrors.NewProcessingError("encode", errors.WithStack(err))
	}

	return buf.Bytes(), nil
}

func (w *lsbWatermark) Extract(data []byte) (*entity.WatermarkPayload, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, domainerrors.NewProcessingError("decode", err)
	}

	canvas := toNRGBA(img)
	capacity := pixelCount(canvas)
	if capacity < watermarkHeaderSize*8 {
		return nil, service.ErrWatermarkNotFound
	}

	header := readBytes(canvas, 0, watermarkHeaderSize)
	if !bytes.Equal(header[:len(watermarkMagic)], watermarkMagic[:]) {
		return nil, service.ErrWatermarkNotFound
	}

	size := int(binary.BigEndian.Uint32(header[len(watermarkMagic):]))
	if size == 0 || (watermarkHeaderSize+size)*8 > capacity {
		return nil, service.ErrWatermarkNotFound
	}

	var payload entity.WatermarkPayload
	if err := json.Unmarshal(readBytes(canvas, watermarkHeaderSize, size), &payload); err != nil {
		return nil, errors.Wrap(service.ErrWatermarkNotFound, err.Error())
	}

	return &payload, nil
}

// toNRGBA returns a private non-premultiplied copy so that bits under transparent pixels survive.
func toNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < bounds.Dy(); y++ {
			srcStart := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(canvas.Pix[y*canvas.Stride:(y+1)*canvas.Stride], src.Pix[srcStart:srcStart+canvas.Stride])
		}

		return canvas
	}

	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)

	return canvas
}

func pixelCount(img *image.NRGBA) int {
	return img.Bounds().Dx() * img.Bounds().Dy()
}

func blueOffset(img *image.NRGBA, index int) int {
	width := img.Bounds().Dx()

	return (index/width)*img.Stride + (index%width)*bytesPerPixel + blueChannelOffset
}

func setBlueLSB(img *image.NRGBA, index int, bit byte) {
	offset := blueOffset(img, index)
	img.Pix[offset] = img.Pix[offset]&^1 | bit
}

func readBytes(img *image.NRGBA, start, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		var b byte
		for bit := 0; bit < 8; bit++ {
			b = b<<1 | img.Pix[blueOffset(img, (start+i)*8+bit)]&1
		}
		out[i] = b
	}

	return out
}
