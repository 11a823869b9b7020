package fileingest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"lensx/internal/models"
)

// FileMeta names a local regular file.
type FileMeta struct {
	Path string
	Name string
}

/*
ExtractFileMeta stats path and rejects directories.

Returns FileMeta with Path and Name.
*/
func ExtractFileMeta(path string) (FileMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileMeta{}, err
	}
	if info.IsDir() {
		return FileMeta{}, fmt.Errorf("%s is a directory", path)
	}
	return FileMeta{Path: path, Name: info.Name()}, nil
}

/*
CheckFiles verifies that every path names a readable regular file.

All problems are reported together, wrapped in models.ErrArtifactMissing.
*/
func CheckFiles(paths ...string) error {
	var missing []string
	for _, p := range paths {
		if _, err := ExtractFileMeta(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				missing = append(missing, p)
			} else {
				missing = append(missing, fmt.Sprintf("%s (%v)", p, err))
			}
			continue
		}
		f, err := os.Open(p)
		if err != nil {
			missing = append(missing, fmt.Sprintf("%s (%v)", p, err))
			continue
		}
		f.Close()
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", models.ErrArtifactMissing, strings.Join(missing, ", "))
	}
	return nil
}
