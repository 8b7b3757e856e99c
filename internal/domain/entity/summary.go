package entity

// LabelCount число записей с одной меткой
type LabelCount struct {
	Label string
	Count int
}

// Summary сводка по загруженному датасету
type Summary struct {
	Path   string       // путь к датасету
	Total  int          // число записей
	Failed int          // число нераспознанных файлов (пропущенных или сохранённых)
	Labels []LabelCount // счётчики по меткам, отсортированы по метке
}

// UniqueLabels возвращает число различных меток
func (s Summary) UniqueLabels() int {
	return len(s.Labels)
}

// Count возвращает число записей с меткой label
func (s Summary) Count(label string) int {
	for _, lc := range s.Labels {
		if lc.Label == label {
			return lc.Count
		}
	}
	return 0
}
