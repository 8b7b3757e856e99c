package entity

// Image одноканальное изображение в оттенках серого (0..255)
type Image struct {
	Width  int     // ширина в пикселях
	Height int     // высота в пикселях
	Pix    []uint8 // пиксели построчно, len(Pix) == Width*Height
}

// NewImage создаёт пустое изображение заданного размера
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At возвращает яркость пикселя (x, y)
func (i *Image) At(x, y int) uint8 {
	return i.Pix[y*i.Width+x]
}

// Set задаёт яркость пикселя (x, y)
func (i *Image) Set(x, y int, v uint8) {
	i.Pix[y*i.Width+x] = v
}

// Empty сообщает, что в изображении нет ни одного пикселя.
func (i *Image) Empty() bool {
	return i == nil || i.Width <= 0 || i.Height <= 0 || len(i.Pix) < i.Width*i.Height
}
