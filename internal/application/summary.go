package app

import (
	"fmt"
	"io"
	"strings"

	"sketch-loader/internal/domain/entity"
)

// Summarize считает общее число записей и число записей по каждой метке.
func Summarize(ds *entity.Dataset) entity.Summary {
	counts := ds.Counts()
	labels := ds.Labels()

	summary := entity.Summary{
		Path:   ds.Root,
		Total:  ds.Len(),
		Failed: ds.Failed,
		Labels: make([]entity.LabelCount, 0, len(labels)),
	}
	for _, l := range labels {
		summary.Labels = append(summary.Labels, entity.LabelCount{Label: l, Count: counts[l]})
	}

	return summary
}

// FormatSummary возвращает текстовую сводку в том виде, в каком она печатается.
func FormatSummary(s entity.Summary) string {
	var b strings.Builder
	WriteSummary(&b, s)
	return b.String()
}

// WriteSummary печатает число изображений, число меток и счётчик по каждой метке.
func WriteSummary(w io.Writer, s entity.Summary) {
	fmt.Fprintf(w, "Number of images read: %d\n", s.Total)
	if s.Failed > 0 {
		fmt.Fprintf(w, "Number of unreadable files: %d\n", s.Failed)
	}
	fmt.Fprintf(w, "Number of unique labels: %d\n", s.UniqueLabels())
	for _, lc := range s.Labels {
		fmt.Fprintf(w, "  Label: %s, Count: %d\n", lc.Label, lc.Count)
	}
}
