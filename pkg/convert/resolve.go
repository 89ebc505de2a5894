package convert

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/xml2struct/pkg/errors"
	"github.com/arthur-debert/xml2struct/pkg/filesystem"
	"github.com/samber/lo"
)

// ResolvePath locates the file to read for path. The path is used as is
// when it names an existing file. Otherwise, if its extension is not a
// recognized one, the default extension is appended and tried. When
// neither exists the error has code ErrFileNotFound and lists the
// candidates tried.
func (c *Converter) ResolvePath(path string) (string, error) {
	candidates := []string{path}
	if filesystem.IsFile(c.fs, path) {
		c.logger.Debug().Str("path", path).Msg("Resolved input path")
		return path, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !lo.Contains(c.extensions, ext) {
		withExt := path + c.defaultExt
		candidates = append(candidates, withExt)
		if filesystem.IsFile(c.fs, withExt) {
			c.logger.Debug().Str("path", path).Str("resolved", withExt).Msg("Resolved input path with default extension")
			return withExt, nil
		}
	}

	return "", errors.Newf(errors.ErrFileNotFound, "file not found: %s", path).
		WithDetail("path", path).
		WithDetail("candidates", candidates)
}
