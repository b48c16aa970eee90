package generator

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type TemplateFile struct {
	// Path is absolute.
	Path string
	// RelativePath is relative to the templates directory and uses the
	// platform separator.
	RelativePath string
}

// OutputName is the relative path with the template suffix removed.
func (f TemplateFile) OutputName(suffix string) string {
	return strings.TrimSuffix(f.RelativePath, suffix)
}

// Discover walks templatesDir and returns every file ending with suffix in
// lexical path order. Directories are never templates, even when their name
// ends with suffix.
func Discover(templatesDir, suffix string) ([]TemplateFile, error) {
	root, err := filepath.Abs(templatesDir)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve templates directory %s", templatesDir)
	}

	// a missing directory is the same as an empty one
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var templates []TemplateFile

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				return errors.Wrapf(err, "cannot follow symlink %s", path)
			}
			if info.IsDir() {
				return nil
			}
		}

		relativePath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		templates = append(templates, TemplateFile{
			Path:         path,
			RelativePath: relativePath,
		})

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot read templates directory")
	}

	return templates, nil
}
