package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sketch-loader/internal/domain/entity"
)

// rawDecoder трактует байты файла как одну строку пикселей, "bad" даёт ошибку.
type rawDecoder struct{}

func (rawDecoder) Decode(path string) (*entity.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if string(data) == "bad" {
		return nil, errors.New("not an image")
	}
	img := entity.NewImage(len(data), 1)
	copy(img.Pix, data)
	return img, nil
}

func writeFile(t *testing.T, root, rel string, data []byte) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
