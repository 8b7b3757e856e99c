package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sketch-loader/internal/domain/entity"
)

func catsAndDogs(t *testing.T) string {
	root := filepath.Join(t.TempDir(), "data")
	writeFile(t, root, "cat/1.png", []byte{0, 255})
	writeFile(t, root, "cat/2.png", []byte{128})
	writeFile(t, root, "dog/1.png", []byte{1})
	writeFile(t, root, "dog/2.png", []byte{2})
	writeFile(t, root, "dog/3.png", []byte{3})
	return root
}

func TestIngestService_CatsAndDogs(t *testing.T) {
	root := catsAndDogs(t)
	svc := NewIngestService(rawDecoder{}, entity.PolicySkip)

	ds, err := svc.Ingest(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, 5, ds.Len())

	summary := Summarize(ds)
	require.Equal(t, 5, summary.Total)
	require.Equal(t, 2, summary.UniqueLabels())
	require.Equal(t, 2, summary.Count("cat"))
	require.Equal(t, 3, summary.Count("dog"))
}

func TestIngestService_TraversalOrderAndLabels(t *testing.T) {
	root := catsAndDogs(t)
	svc := NewIngestService(rawDecoder{}, entity.PolicySkip)

	ds, err := svc.Ingest(context.Background(), root)
	require.NoError(t, err)

	var labels, names []string
	for _, r := range ds.Records {
		labels = append(labels, r.Label)
		names = append(names, filepath.Base(r.Path))
		require.Equal(t, filepath.Base(filepath.Dir(r.Path)), r.Label)
	}
	require.Equal(t, []string{"cat", "cat", "dog", "dog", "dog"}, labels)
	require.Equal(t, []string{"1.png", "2.png", "1.png", "2.png", "3.png"}, names)
}

func TestIngestService_NestedDirectoriesUseImmediateParent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sketches")
	writeFile(t, root, "top.png", []byte{9})
	writeFile(t, root, "shapes/circle/a.png", []byte{1})
	writeFile(t, root, "shapes/square/b.png", []byte{2})

	ds, err := NewIngestService(rawDecoder{}, entity.PolicySkip).Ingest(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, []string{"circle", "sketches", "square"}, ds.Labels())
}

func TestIngestService_SkipPolicy(t *testing.T) {
	root := catsAndDogs(t)
	writeFile(t, root, "cat/notes.txt", []byte("bad"))

	ds, err := NewIngestService(rawDecoder{}, entity.PolicySkip).Ingest(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, 5, ds.Len())
	require.Equal(t, 1, ds.Failed)

	summary := Summarize(ds)
	require.Equal(t, 2, summary.Count("cat"))
	require.Equal(t, 1, summary.Failed)
}

func TestIngestService_KeepPolicy(t *testing.T) {
	root := catsAndDogs(t)
	writeFile(t, root, "cat/notes.txt", []byte("bad"))

	ds, err := NewIngestService(rawDecoder{}, entity.PolicyKeep).Ingest(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, 6, ds.Len())
	require.Equal(t, 1, ds.Failed)

	var failed []entity.Record
	for _, r := range ds.Records {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	require.Len(t, failed, 1)
	require.Equal(t, "cat", failed[0].Label)
	require.Equal(t, 3, Summarize(ds).Count("cat"))
}

func TestIngestService_FailPolicy(t *testing.T) {
	root := catsAndDogs(t)
	writeFile(t, root, "dog/broken.png", []byte("bad"))

	_, err := NewIngestService(rawDecoder{}, entity.PolicyFail).Ingest(context.Background(), root)
	require.Error(t, err)
	require.True(t, errors.Is(err, entity.ErrDecode))
}

func TestIngestService_InvalidRoot(t *testing.T) {
	svc := NewIngestService(rawDecoder{}, entity.PolicySkip)

	_, err := svc.Ingest(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.True(t, errors.Is(err, entity.ErrInvalidRoot))

	file := writeFile(t, t.TempDir(), "file.png", []byte{1})
	_, err = svc.Ingest(context.Background(), file)
	require.True(t, errors.Is(err, entity.ErrInvalidRoot))
}

func TestIngestService_Cancelled(t *testing.T) {
	root := catsAndDogs(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewIngestService(rawDecoder{}, entity.PolicySkip).Ingest(ctx, root)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestLabelOf(t *testing.T) {
	require.Equal(t, "cat", LabelOf(filepath.Join("data", "cat", "1.png")))
	require.Equal(t, "data", LabelOf(filepath.Join("data", "1.png")))
}
