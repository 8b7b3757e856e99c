package vision

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"sketch-loader/internal/domain/entity"
	"sketch-loader/internal/domain/port"
)

// ImageDecoder декодирует файлы стандартной библиотекой image без OpenCV.
// Поддерживаются PNG, JPEG, GIF, BMP, TIFF и WebP.
type ImageDecoder struct {
	Size int // сторона квадрата, к которому приводится изображение; 0 — без изменения
}

// NewImageDecoder создаёт декодер на чистом Go.
func NewImageDecoder(size int) *ImageDecoder {
	return &ImageDecoder{Size: size}
}

// Decode читает файл и переводит его в оттенки серого (0.299R + 0.587G + 0.114B).
func (d *ImageDecoder) Decode(path string) (*entity.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	gray := toGray(src)
	b := gray.Bounds()
	if d.Size > 0 && (b.Dx() != d.Size || b.Dy() != d.Size) {
		gray = toGray(resize.Resize(uint(d.Size), uint(d.Size), gray, resize.Lanczos3))
	}

	return grayToImage(gray), nil
}

func toGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	b := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	return gray
}

func grayToImage(g *image.Gray) *entity.Image {
	b := g.Bounds()
	img := entity.NewImage(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			img.Set(x, y, g.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
		}
	}
	return img
}

var _ port.ImageDecoder = (*ImageDecoder)(nil)
