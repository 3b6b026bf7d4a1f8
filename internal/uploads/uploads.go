package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// MaxFileSize caps fitting files at 10 MiB.
const MaxFileSize = 10 << 20

var (
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Fitting data arrives as PDFs, photos, or measurement spreadsheets. The
// content is stored as-is and never parsed.
var allowedTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"text/csv":        {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
}

// Store writes fitting files to a local directory under generated unique
// names.
type Store struct {
	dir string
}

// NewStore creates the upload directory if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save validates the file's declared MIME type and size, then persists it as
// <epoch-millis>-<uuid>-<original-name>. It returns the generated filename;
// only that name is attached to the order.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	mediaType := fh.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = mt
	}
	if _, ok := allowedTypes[mediaType]; !ok {
		return "", ErrUnsupportedType
	}

	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.New().String(), filepath.Base(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	log.WithFields(log.Fields{
		"filename": name,
		"size":     fh.Size,
		"type":     mediaType,
	}).Info("fitting file stored")

	return name, nil
}

// Dir returns the storage directory path.
func (s *Store) Dir() string {
	return s.dir
}
