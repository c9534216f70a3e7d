package imagestore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Uploads larger than this bound on either axis are scaled down before
// storage; phone camera originals are far bigger than the gallery needs.
const maxImageDimension = 1600

const storedImageQuality = 85

// LocalStore keeps re-encoded JPEGs on disk under a single directory and
// serves them from a static URL prefix.
type LocalStore struct {
	directory string
	urlPrefix string
}

func NewLocalStore(directory string, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory: %w", err)
	}
	return &LocalStore{
		directory: directory,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// Save decodes, bounds, and re-encodes the upload as JPEG under a fresh
// id. Re-encoding strips whatever the original format and metadata were.
func (store *LocalStore) Save(data []byte, contentType string) (Object, error) {
	decoded, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		log.Debug("image decode failed", "content_type", contentType, "error", err)
		return Object{}, ErrUnsupportedImage
	}

	bounds := decoded.Bounds()
	if bounds.Dx() > maxImageDimension || bounds.Dy() > maxImageDimension {
		decoded = imaging.Fit(decoded, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	id := uuid.NewString()
	path := store.imagePath(id)
	if err := imaging.Save(decoded, path, imaging.JPEGQuality(storedImageQuality)); err != nil {
		return Object{}, fmt.Errorf("save image %s: %w", id, err)
	}

	return Object{
		ID:  id,
		URL: fmt.Sprintf("%s/%s.jpg", store.urlPrefix, id),
	}, nil
}

func (store *LocalStore) Remove(id string) error {
	if strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("malformed image id %q", id)
	}
	if err := os.Remove(store.imagePath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image %s: %w", id, err)
	}
	return nil
}

// Directory is where the HTTP layer mounts the static file route.
func (store *LocalStore) Directory() string {
	return store.directory
}

func (store *LocalStore) imagePath(id string) string {
	return filepath.Join(store.directory, id+".jpg")
}
