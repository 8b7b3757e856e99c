package entity

import "sort"

// Record пара (метка, изображение), найденная при обходе датасета.
// Запись либо декодирована (Image != nil), либо помечена ошибкой (Err != nil).
type Record struct {
	Label string // имя каталога, в котором лежит файл
	Path  string // путь к файлу
	Image *Image // nil для нераспознанного файла
	Err   error  // причина, по которой файл не декодирован
}

// NewDecodedRecord создаёт запись с успешно декодированным изображением
func NewDecodedRecord(label, path string, img *Image) Record {
	return Record{Label: label, Path: path, Image: img}
}

// NewFailedRecord создаёт запись для файла, который не удалось декодировать
func NewFailedRecord(label, path string, err error) Record {
	return Record{Label: label, Path: path, Err: err}
}

// Failed сообщает, что файл записи не декодирован
func (r Record) Failed() bool {
	return r.Err != nil || r.Image == nil
}

// Dataset записи в порядке обхода каталогов
type Dataset struct {
	Root    string   // корневой каталог датасета
	Records []Record // записи в порядке обхода
	Failed  int      // число пропущенных нераспознанных файлов
}

// Len возвращает число записей
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Counts возвращает число записей для каждой метки
func (d *Dataset) Counts() map[string]int {
	counts := make(map[string]int)
	for _, r := range d.Records {
		counts[r.Label]++
	}
	return counts
}

// Labels возвращает отсортированный список различных меток
func (d *Dataset) Labels() []string {
	counts := d.Counts()
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
