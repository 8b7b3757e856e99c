package port

import "sketch-loader/internal/domain/entity"

// ImageDecoder интерфейс декодера изображений в оттенки серого
type ImageDecoder interface {
	// Decode читает файл и возвращает одноканальное изображение
	Decode(path string) (*entity.Image, error)
}
