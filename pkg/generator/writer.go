package generator

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type FileWriter struct {
	OutputDir string
	Suffix    string
	FileMode  os.FileMode
	DirMode   os.FileMode
}

// OutputPath mirrors the template's location below OutputDir, without the
// template suffix.
func (w FileWriter) OutputPath(tpl TemplateFile) (string, error) {
	name := tpl.OutputName(w.Suffix)
	if name == "" || filepath.Base(name) == "." || os.IsPathSeparator(name[len(name)-1]) {
		return "", errors.Errorf("template %s has no file name besides its suffix", tpl.RelativePath)
	}

	return filepath.Join(w.OutputDir, name), nil
}

// Write replaces the contents of outputPath, creating missing parent
// directories.
func (w FileWriter) Write(outputPath string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), w.DirMode); err != nil {
		return errors.Wrapf(err, "cannot create directory for %s", outputPath)
	}

	if err := ioutil.WriteFile(outputPath, content, w.FileMode); err != nil {
		return errors.Wrapf(err, "cannot write %s", outputPath)
	}

	return nil
}
