// Package storage keeps product images on local disk and hands back
// public URLs. The interface mirrors the upload/public-URL contract of a
// hosted object store so one can replace this implementation later.
package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrUnsupportedType = errors.New("unsupported image type")

// PublicPath is where main mounts the static file handler.
const PublicPath = "/uploads"

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type ImageStore interface {
	// Save persists the uploaded file and returns its public URL.
	Save(c *fiber.Ctx, file *multipart.FileHeader) (string, error)
}

type diskStore struct {
	dir string
}

func NewDiskStore(dir string) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &diskStore{dir: dir}, nil
}

func (s *diskStore) Save(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExts[ext] {
		return "", ErrUnsupportedType
	}

	// Timestamped names keep uploads sortable; the uuid fragment avoids
	// collisions within the same millisecond.
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)
	if err := c.SaveFile(file, filepath.Join(s.dir, name)); err != nil {
		return "", err
	}

	return PublicPath + "/" + name, nil
}
