package controller

import (
	"fmt"
	"strings"
)

// PosterResolver turns a work's poster_path into something displayable.
// TMDb returns paths relative to its image CDN ("/abc.jpg"); absolute URLs
// are passed through unchanged.
type PosterResolver struct {
	BaseURL     string
	Size        string
	Placeholder string
}

// Resolve returns the poster URL and true, or the placeholder and false
func (r PosterResolver) Resolve(path string) (string, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return r.Placeholder, false
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path, true
	}
	if r.BaseURL == "" {
		return path, true
	}

	base := strings.TrimRight(r.BaseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if r.Size == "" {
		return base + path, true
	}
	return fmt.Sprintf("%s/%s%s", base, strings.Trim(r.Size, "/"), path), true
}
