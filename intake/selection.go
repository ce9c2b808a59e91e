package intake

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrNoSelection means the gesture yielded no file
	ErrNoSelection = errors.New("no file selected")
	// ErrNotImage means the selected file's content is not an image type
	ErrNotImage = errors.New("selected file is not an image")
)

// Options controls how a selection is turned into a SelectedImage
type Options struct {
	// PreviewWidth is the thumbnail width in terminal cells; 0 disables thumbnails
	PreviewWidth int
}

// SelectedImage is the user-chosen image plus its display-only preview handles
type SelectedImage struct {
	Name        string
	Path        string
	ContentType string
	Size        int64
	PreviewURI  string
	Thumbnail   string

	data     []byte
	released bool
}

// Data returns the raw image bytes, or nil once released
func (s *SelectedImage) Data() []byte {
	return s.data
}

// Release drops the image bytes and rendered preview.
// Callers release the image a new selection discards.
func (s *SelectedImage) Release() {
	if s == nil {
		return
	}
	s.data = nil
	s.Thumbnail = ""
	s.released = true
}

// Released reports whether Release has been called
func (s *SelectedImage) Released() bool {
	return s != nil && s.released
}

// Select resolves one user gesture into at most one image.
// Only the first path on the line is used; the rest are ignored.
func Select(line string, opts Options) (*SelectedImage, error) {
	path, ok := FirstPath(line)
	if !ok {
		return nil, ErrNoSelection
	}
	return Open(path, opts)
}

// Open reads path and accepts it only if its content is an image
func Open(path string, opts Options) (*SelectedImage, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, ErrNotImage)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	contentType, ok := detectImage(data)
	if !ok {
		return nil, fmt.Errorf("%s (%s): %w", filepath.Base(abs), contentType, ErrNotImage)
	}

	img := &SelectedImage{
		Name:        filepath.Base(abs),
		Path:        abs,
		ContentType: contentType,
		Size:        int64(len(data)),
		PreviewURI:  (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(),
		data:        data,
	}

	if opts.PreviewWidth > 0 {
		// Formats the decoder doesn't know (HEIC, SVG...) simply get no thumbnail.
		if thumb, err := RenderThumbnail(data, opts.PreviewWidth); err == nil {
			img.Thumbnail = thumb
		}
	}

	return img, nil
}

func detectImage(data []byte) (string, bool) {
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return stripParams(detected.String()), true
		}
	}
	return stripParams(detected.String()), false
}

func stripParams(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		return strings.TrimSpace(contentType[:i])
	}
	return contentType
}
