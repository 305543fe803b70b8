// Package images stores uploaded drink images. With an upload dir configured
// the file lands on disk under a public URL; without one the image degrades
// to a self-contained data URI, so the kiosk works with no storage credential
// at all.
package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

var ErrNotAnImage = errors.New("uploaded file is not a decodable image")

// Store persists image bytes and returns a usable URL.
type Store interface {
	Store(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

// DirStore writes images under a directory served as static files.
type DirStore struct {
	dir     string
	baseURL string
	maxDim  int
}

func NewDirStore(dir, baseURL string, maxDim int) *DirStore {
	return &DirStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), maxDim: maxDim}
}

func (s *DirStore) Store(_ context.Context, data []byte, filename, _ string) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotAnImage
	}
	img = s.shrink(img)

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(filename))
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	if err := imaging.Save(img, filepath.Join(s.dir, name)); err != nil {
		return "", err
	}
	return s.baseURL + "/" + name, nil
}

// shrink bounds oversized uploads; kiosk screens never need more.
func (s *DirStore) shrink(img image.Image) image.Image {
	if s.maxDim <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= s.maxDim && b.Dy() <= s.maxDim {
		return img
	}
	return imaging.Fit(img, s.maxDim, s.maxDim, imaging.Lanczos)
}

// DataURIStore is the no-credential fallback: the image is embedded whole.
type DataURIStore struct{}

func NewDataURIStore() *DataURIStore {
	return &DataURIStore{}
}

func (s *DataURIStore) Store(_ context.Context, data []byte, _ string, contentType string) (string, error) {
	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return "", ErrNotAnImage
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// sanitizeName keeps word characters, dots and hyphens; everything else
// becomes an underscore. The extension decides the stored format, so an
// unknown one falls back to jpg.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range filepath.Base(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if _, err := imaging.FormatFromFilename(out); err != nil {
		out = strings.TrimSuffix(out, filepath.Ext(out)) + ".jpg"
	}
	return out
}

var (
	_ Store = (*DirStore)(nil)
	_ Store = (*DataURIStore)(nil)
)
