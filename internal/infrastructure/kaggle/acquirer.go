package kaggle

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"sketch-loader/internal/domain/entity"
	"sketch-loader/internal/domain/port"
)

// DefaultBaseURL адрес публичного API Kaggle
const DefaultBaseURL = "https://www.kaggle.com/api/v1"

// Acquirer скачивает датасеты Kaggle в локальный кэш и распаковывает их.
// Повторный вызов для уже распакованного датасета не обращается к сети.
type Acquirer struct {
	BaseURL  string
	Username string
	Key      string
	CacheDir string
	Client   *http.Client
}

// NewAcquirer создаёт загрузчик с кэшем в cacheDir
func NewAcquirer(baseURL, username, key, cacheDir string) *Acquirer {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Acquirer{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Username: username,
		Key:      key,
		CacheDir: cacheDir,
		Client:   http.DefaultClient,
	}
}

// Acquire возвращает путь к распакованному датасету datasetID вида "owner/name".
func (a *Acquirer) Acquire(ctx context.Context, datasetID string) (string, error) {
	owner, name, err := ParseID(datasetID)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(a.CacheDir, "datasets", owner, name)
	marker := dir + ".complete"
	if _, err := os.Stat(marker); err == nil {
		log.Printf("Using cached dataset %s", dir)
		return dir, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create cache dir: %v", entity.ErrAcquisition, err)
	}

	archive := dir + ".zip"
	log.Printf("Downloading dataset %s...", datasetID)
	if err := a.download(ctx, owner, name, archive); err != nil {
		return "", fmt.Errorf("%w: %s: %v", entity.ErrAcquisition, datasetID, err)
	}
	defer os.Remove(archive)

	if err := extract(archive, dir); err != nil {
		return "", fmt.Errorf("%w: %s: %v", entity.ErrAcquisition, datasetID, err)
	}

	if err := os.WriteFile(marker, nil, 0o644); err != nil {
		return "", fmt.Errorf("%w: write marker: %v", entity.ErrAcquisition, err)
	}

	return dir, nil
}

// ParseID разбирает идентификатор датасета "owner/name"
func ParseID(datasetID string) (owner, name string, err error) {
	parts := strings.Split(datasetID, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" || parts[0] == ".." || parts[1] == ".." {
		return "", "", fmt.Errorf("%w: invalid dataset id %q, want owner/name", entity.ErrAcquisition, datasetID)
	}
	return parts[0], parts[1], nil
}

// download сохраняет архив датасета в файл dst
func (a *Acquirer) download(ctx context.Context, owner, name, dst string) error {
	url := fmt.Sprintf("%s/datasets/download/%s/%s", a.BaseURL, owner, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if a.Username != "" && a.Key != "" {
		req.SetBasicAuth(a.Username, a.Key)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: unexpected status %s", resp.Status)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("write archive: %w", err)
	}
	return f.Close()
}

// extract распаковывает zip-архив в dir, не выпуская файлы за его пределы
func extract(archive, dir string) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	base := filepath.Clean(dir) + string(os.PathSeparator)
	for _, f := range zr.File {
		target := filepath.Join(dir, f.Name)
		if !strings.HasPrefix(target, base) {
			return fmt.Errorf("archive entry %q escapes %s", f.Name, dir)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}

	return nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Проверка реализации интерфейса
var _ port.DatasetAcquirer = (*Acquirer)(nil)
