// Package media stores uploaded product images on local disk.
package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/mayra-Sanchez/wm-backend/models"
)

// ProductDir is the folder under the media root that holds product images.
const ProductDir = "productos"

var ErrUnsupportedImage = errors.New("unsupported image type, allowed: png, jpg, jpeg")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ValidImageName reports whether filename carries an allowed image extension.
func ValidImageName(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ValidImagePath reports whether rel is a clean relative path inside the
// product folder with an allowed image extension.
func ValidImagePath(rel string) bool {
	if rel == "" || path.IsAbs(rel) || strings.Contains(rel, "\\") {
		return false
	}
	if path.Clean(rel) != rel || !strings.HasPrefix(rel, ProductDir+"/") {
		return false
	}
	return ValidImageName(rel)
}

type Store struct {
	Root string
	URL  string
}

func NewStore(root, url string) *Store {
	return &Store{Root: root, URL: url}
}

// SaveProductImage writes the upload to <root>/productos/<unixnano>_<name>
// and returns the relative path to store on the product.
func (s *Store) SaveProductImage(fh *multipart.FileHeader) (string, error) {
	if !ValidImageName(fh.Filename) {
		return "", ErrUnsupportedImage
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.Root, ProductDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	base := slug.Make(strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename)))
	if base == "" {
		base = "image"
	}
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return path.Join(ProductDir, name), nil
}

// Remove deletes a stored image. The shared default image and missing files
// are left alone.
func (s *Store) Remove(rel string) error {
	if rel == "" || rel == models.DefaultProductImage {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return nil
	}
	if err := os.Remove(filepath.Join(s.Root, clean)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicURL joins the media URL prefix with a relative image path.
func (s *Store) PublicURL(rel string) string {
	if rel == "" {
		return ""
	}
	return strings.TrimSuffix(s.URL, "/") + "/" + strings.TrimPrefix(rel, "/")
}
