package app

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"sketch-loader/internal/domain/entity"
)

// MaxIntensity максимальная яркость 8-битного пикселя
const MaxIntensity = 255.0

// NormalizeService переводит яркости датасета из [0, 255] в [0, 1].
type NormalizeService struct{}

// NewNormalizeService создаёт сервис нормализации.
func NewNormalizeService() *NormalizeService {
	return &NormalizeService{}
}

// Normalize строит новый нормализованный датасет, исходный не изменяется.
// Нераспознанные записи не нормализуются и попадают в Skipped.
func (s *NormalizeService) Normalize(ds *entity.Dataset) (*entity.NormalizedDataset, error) {
	out := &entity.NormalizedDataset{
		Records: make([]entity.NormalizedRecord, 0, ds.Len()),
	}

	for _, r := range ds.Records {
		if r.Failed() {
			log.Printf("Not normalizing %s: %v", r.Path, r.Err)
			out.Skipped = append(out.Skipped, r)
			continue
		}

		raw, err := ToDense(r.Image)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Path, err)
		}

		out.Records = append(out.Records, entity.NormalizedRecord{
			Label:  r.Label,
			Path:   r.Path,
			Pixels: Rescale(raw),
		})
	}

	return out, nil
}

// ToDense переносит пиксели изображения в матрицу Height x Width без масштабирования.
func ToDense(img *entity.Image) (*mat.Dense, error) {
	if img.Empty() {
		return nil, fmt.Errorf("%w: empty image", entity.ErrNormalization)
	}

	data := make([]float64, img.Width*img.Height)
	for i := range data {
		data[i] = float64(img.Pix[i])
	}
	return mat.NewDense(img.Height, img.Width, data), nil
}

// Rescale делит каждый элемент на 255 и возвращает новую матрицу.
// Повторный вызов на уже нормализованных данных снова делит на 255.
func Rescale(m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return v / MaxIntensity
	}, m)
	return &out
}

// IntensityStats агрегированные яркости нормализованного датасета
type IntensityStats struct {
	Pixels int
	Mean   float64
	Min    float64
	Max    float64
}

// Stats считает среднюю, минимальную и максимальную яркость по всем записям.
func Stats(nds *entity.NormalizedDataset) IntensityStats {
	var st IntensityStats
	var sum float64
	for _, r := range nds.Records {
		rows, cols := r.Pixels.Dims()
		lo, hi := mat.Min(r.Pixels), mat.Max(r.Pixels)
		if st.Pixels == 0 || lo < st.Min {
			st.Min = lo
		}
		if st.Pixels == 0 || hi > st.Max {
			st.Max = hi
		}
		sum += mat.Sum(r.Pixels)
		st.Pixels += rows * cols
	}
	if st.Pixels > 0 {
		st.Mean = sum / float64(st.Pixels)
	}
	return st
}
