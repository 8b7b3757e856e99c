//go:build !gocv
// +build !gocv

package vision

// NewDefaultDecoder возвращает декодер для сборки без тега gocv.
func NewDefaultDecoder(size int) *ImageDecoder {
	return NewImageDecoder(size)
}
