package graphic

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/zyfsa/graphic/internal/logging"
)

// ErrUnknownImageFormat is returned when no encoder is registered for a
// format name or file extension.
var ErrUnknownImageFormat = errors.New("graphic: unknown image format")

// Encoder writes img to w in one image format.
type Encoder func(w io.Writer, img image.Image) error

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	encoders   = make(map[string]Encoder)
)

func init() {
	RegisterEncoder("png", png.Encode)
	RegisterEncoder("bmp", bmp.Encode)
	RegisterEncoder("tiff", func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	})
}

// RegisterEncoder registers an encoder under a lower-case format name,
// which is also the file extension SaveFile matches.
//
//	graphic.RegisterEncoder("jpeg", func(w io.Writer, img image.Image) error {
//	    return jpeg.Encode(w, img, nil)
//	})
//
// RegisterEncoder panics if enc is nil or the name is already taken.
func RegisterEncoder(name string, enc Encoder) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if enc == nil {
		panic("graphic: RegisterEncoder encoder is nil")
	}
	if _, dup := encoders[name]; dup {
		panic("graphic: RegisterEncoder called twice for " + name)
	}
	encoders[name] = enc
}

// UnregisterEncoder removes an encoder from the registry.
// If the format is not registered, this is a no-op.
func UnregisterEncoder(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(encoders, name)
}

// Formats returns the registered format names in alphabetical order.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupEncoder(format string) (Encoder, error) {
	registryMu.RLock()
	enc, ok := encoders[format]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownImageFormat, format)
	}
	return enc, nil
}

// Encode writes img to w using the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	enc, err := lookupEncoder(strings.ToLower(format))
	if err != nil {
		return err
	}
	if pm, ok := img.(*Pixmap); ok {
		img = pm.ToImage()
	}
	return enc(w, img)
}

// FormatFromPath returns the format name implied by the extension of path.
// ".tif" maps to "tiff".
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "tif" {
		return "tiff"
	}
	return ext
}

// SaveFile writes img to path, choosing the encoder from the extension.
func SaveFile(img image.Image, path string) error {
	format := FormatFromPath(path)
	if _, err := lookupEncoder(format); err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("graphic: encode %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	b := img.Bounds()
	logging.Logger().Info("graphic: export", "path", path, "format", format, "width", b.Dx(), "height", b.Dy())
	return nil
}
