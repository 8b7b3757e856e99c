package entity

import "gonum.org/v1/gonum/mat"

// NormalizedRecord запись с яркостями, приведёнными к диапазону [0, 1].
// Pixels имеет Height строк и Width столбцов.
type NormalizedRecord struct {
	Label  string
	Path   string
	Pixels *mat.Dense
}

// NormalizedDataset результат нормализации датасета
type NormalizedDataset struct {
	Records []NormalizedRecord // нормализованные записи в исходном порядке
	Skipped []Record           // нераспознанные записи, которые не нормализовались
}

// Len возвращает число нормализованных записей
func (d *NormalizedDataset) Len() int {
	return len(d.Records)
}
