//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"sketch-loader/internal/domain/entity"
	"sketch-loader/internal/domain/port"
)

// GoCVDecoder декодирует файлы через OpenCV в режиме IMReadGrayScale.
type GoCVDecoder struct {
	Size int // сторона квадрата, к которому приводится изображение; 0 — без изменения
}

// NewGoCVDecoder создаёт декодер на OpenCV.
func NewGoCVDecoder(size int) *GoCVDecoder {
	return &GoCVDecoder{Size: size}
}

// Decode читает файл как одноканальное изображение.
// OpenCV возвращает пустую матрицу для нераспознанного файла, это считается ошибкой.
func (d *GoCVDecoder) Decode(path string) (*entity.Image, error) {
	mat := gocv.IMRead(path, gocv.IMReadGrayScale)
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("%s: failed to decode image", path)
	}

	if d.Size > 0 && (mat.Cols() != d.Size || mat.Rows() != d.Size) {
		resized := gocv.NewMat()
		defer resized.Close()
		gocv.Resize(mat, &resized, image.Pt(d.Size, d.Size), 0, 0, gocv.InterpolationArea)
		return matToImage(resized)
	}

	return matToImage(mat)
}

func matToImage(mat gocv.Mat) (*entity.Image, error) {
	if mat.Type() != gocv.MatTypeCV8U {
		return nil, fmt.Errorf("unexpected mat type %v", mat.Type())
	}

	img := entity.NewImage(mat.Cols(), mat.Rows())
	data := mat.ToBytes()
	if len(data) < len(img.Pix) {
		return nil, fmt.Errorf("short mat data: %d < %d", len(data), len(img.Pix))
	}
	copy(img.Pix, data)
	return img, nil
}

// NewDefaultDecoder возвращает декодер для сборки с тегом gocv.
func NewDefaultDecoder(size int) *GoCVDecoder {
	return NewGoCVDecoder(size)
}

var _ port.ImageDecoder = (*GoCVDecoder)(nil)
