package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidImage = errors.New("invalid base64 image payload")

// extensions for the data-URI media types the API accepts
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore decodes base64 image payloads and writes them under a
// local media directory. It stands in for whatever object storage a
// deployment fronts the media path with.
type ImageStore struct {
	dir     string
	baseURL string
}

func NewImageStore(dir, baseURL string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &ImageStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// SaveBase64 accepts a "data:image/png;base64,...." payload, writes the
// decoded bytes to a fresh file and returns the served URL path.
func (s *ImageStore) SaveBase64(payload string) (string, error) {
	mediaType, data, err := splitDataURI(payload)
	if err != nil {
		return "", err
	}

	ext, ok := imageExtensions[mediaType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported media type %q", ErrInvalidImage, mediaType)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

func splitDataURI(payload string) (mediaType, data string, err error) {
	if !strings.HasPrefix(payload, "data:") {
		return "", "", fmt.Errorf("%w: missing data URI prefix", ErrInvalidImage)
	}
	rest := strings.TrimPrefix(payload, "data:")
	meta, data, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", fmt.Errorf("%w: missing payload separator", ErrInvalidImage)
	}
	mediaType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return "", "", fmt.Errorf("%w: not base64 encoded", ErrInvalidImage)
	}
	return mediaType, data, nil
}
