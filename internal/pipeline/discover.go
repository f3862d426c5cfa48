package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SupportedExtensions lists the media formats the pipeline accepts.
var SupportedExtensions = []string{".mov", ".mp4", ".webm", ".m4a", ".mp3"}

// IsMediaFile reports whether path has a supported media extension.
func IsMediaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// DiscoverMedia returns the supported media files in inputDir, sorted by
// name so batches process in a stable order.
func DiscoverMedia(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsMediaFile(e.Name()) {
			files = append(files, filepath.Join(inputDir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
