package fs

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

type FileInfo struct {
	Path string
	Size int64
}

// Resolve expands a dataset location into regular files in ascending path
// order. The location is either an existing file or a doublestar pattern
// such as "data/**/*.csv". No match yields an empty slice.
func Resolve(pattern string) ([]FileInfo, error) {
	if info, err := os.Stat(pattern); err == nil && !info.IsDir() {
		return []FileInfo{toFileInfo(pattern, info)}, nil
	}

	if !doublestar.ValidatePathPattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	files := make([]FileInfo, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		files = append(files, toFileInfo(path, info))
	}
	return files, nil
}

func toFileInfo(path string, info os.FileInfo) FileInfo {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return FileInfo{
		Path: path,
		Size: info.Size(),
	}
}
