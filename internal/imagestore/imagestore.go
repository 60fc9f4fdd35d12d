// Package imagestore keeps product images on disk under a single directory.
// Files are stored under random names so uploads cannot collide or traverse
// paths.
package imagestore

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	_ "image/gif"
	_ "image/png"
)

const defaultImage = "default.jpg"

// Store manages the product image directory.
type Store struct {
	dir string
}

// New creates the image directory if needed and makes sure the default
// placeholder image exists.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	s := &Store{dir: dir}
	if err := s.ensureDefault(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultPath returns the path of the placeholder image.
func (s *Store) DefaultPath() string {
	return filepath.Join(s.dir, defaultImage)
}

// Save validates that src is a decodable image and copies it into the store
// under a fresh name, keeping the original extension. It returns the stored
// path.
func (s *Store) Save(src string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return "", fmt.Errorf("not a supported image: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind image: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(src))
	dst := filepath.Join(s.dir, uuid.New().String()+ext)
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, f); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("copy image: %w", err)
	}
	return dst, nil
}

// Remove deletes a stored image. The default placeholder is kept, and a
// path that is already gone is not an error.
func (s *Store) Remove(path string) error {
	if path == "" || filepath.Base(path) == defaultImage {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

func (s *Store) ensureDefault() error {
	path := s.DefaultPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat default image: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 300, 300))
	fill := color.RGBA{R: 0xd7, G: 0xcc, B: 0xc8, A: 0xff}
	for y := 0; y < 300; y++ {
		for x := 0; x < 300; x++ {
			img.Set(x, y, fill)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create default image: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, nil); err != nil {
		return fmt.Errorf("encode default image: %w", err)
	}
	return nil
}
