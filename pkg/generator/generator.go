package generator

import (
	"io/ioutil"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Generator struct {
	Config Config
	Env    Environment
	Logger logrus.FieldLogger
}

// RenderResult is the outcome of rendering and writing one template. Err is
// set when either step failed; it is always a *TemplateError.
type RenderResult struct {
	Template   TemplateFile
	OutputPath string
	Err        error
}

func (r RenderResult) Failed() bool {
	return r.Err != nil
}

type Summary struct {
	Templates []TemplateFile
	Generated []string
}

// Run renders every template below Config.TemplatesDir into Config.OutputDir.
//
// Missing required variables stop the run before anything is read or
// written. Otherwise templates are processed one by one and the run stops at
// the first template that cannot be rendered or written; files generated
// before it are kept.
func (g Generator) Run() (Summary, error) {
	summary := Summary{}

	if err := g.Config.Validate(); err != nil {
		return summary, errors.Wrap(err, "invalid configuration")
	}

	g.Logger.WithField("variables", g.Env.Len()).Debug("environment captured")
	// names only, values may hold credentials
	g.Logger.WithField("names", g.Env.Keys()).Trace("environment variable names")

	if err := Validate(g.Env, g.Config.RequiredVariables); err != nil {
		return summary, err
	}

	g.Logger.Info("Generating configuration files...")

	templates, err := Discover(g.Config.TemplatesDir, g.Config.Suffix)
	if err != nil {
		return summary, err
	}
	summary.Templates = templates

	if len(templates) == 0 {
		g.Logger.Warnf("No template files found in %s", g.Config.TemplatesDir)
		return summary, nil
	}

	if logger, ok := g.Logger.(*logrus.Logger); ok && logger.IsLevelEnabled(logrus.TraceLevel) {
		logger.Trace("discovered templates:\n" + spew.Sdump(templates))
	}

	writer := g.writer()

	outputs, err := planOutputs(templates, writer)
	if err != nil {
		var templateErr *TemplateError
		if errors.As(err, &templateErr) {
			g.reportFailure(templateErr)
		}
		return summary, err
	}

	for i, tpl := range templates {
		result := g.generate(tpl, outputs[i], writer)

		if result.Failed() {
			g.reportFailure(result.Err)
			return summary, result.Err
		}

		summary.Generated = append(summary.Generated, result.OutputPath)
		g.Logger.Infof("Generated: %s", result.OutputPath)
	}

	g.Logger.Infof("Configuration generation complete! Generated %d file(s).", len(summary.Generated))

	return summary, nil
}

func (g Generator) reportFailure(err error) {
	var templateErr *TemplateError
	if !errors.As(err, &templateErr) {
		g.Logger.Errorf("ERROR: %s", err)
		return
	}

	g.Logger.Errorf("ERROR generating %s: %s", templateErr.Path, errors.Cause(templateErr.Err))
	g.Logger.Debugf("%+v", templateErr.Err)
}

func (g Generator) writer() FileWriter {
	return FileWriter{
		OutputDir: g.Config.OutputDir,
		Suffix:    g.Config.Suffix,
		FileMode:  g.Config.FileMode,
		DirMode:   g.Config.DirMode,
	}
}

func (g Generator) generate(tpl TemplateFile, outputPath string, writer FileWriter) RenderResult {
	result := RenderResult{Template: tpl, OutputPath: outputPath}

	fail := func(err error) RenderResult {
		result.Err = &TemplateError{Path: tpl.Path, Err: err}
		return result
	}

	source, err := ioutil.ReadFile(tpl.Path)
	if err != nil {
		return fail(errors.Wrap(err, "cannot read template"))
	}

	renderer := Renderer{TrimControlLines: g.Config.TrimControlLines}

	content, err := renderer.Render(tpl.RelativePath, source, NewRenderContext(g.Env))
	if err != nil {
		return fail(err)
	}

	if err := writer.Write(outputPath, content); err != nil {
		return fail(err)
	}

	g.Logger.WithFields(logrus.Fields{
		"template": tpl.RelativePath,
		"output":   outputPath,
		"bytes":    len(content),
	}).Debug("template rendered")

	return result
}

// planOutputs computes every output path before anything is rendered. A
// template without a usable output name, or an output file that another
// template needs as a directory, fails the run with no files written.
// Paths from one walk stay unique once the suffix is stripped, so only the
// file/directory overlap has to be checked.
func planOutputs(templates []TemplateFile, writer FileWriter) ([]string, error) {
	outputs := make([]string, len(templates))
	sources := make(map[string]string, len(templates))

	for i, tpl := range templates {
		outputPath, err := writer.OutputPath(tpl)
		if err != nil {
			return nil, &TemplateError{Path: tpl.Path, Err: err}
		}
		outputs[i] = outputPath
		sources[outputPath] = tpl.Path
	}

	root := filepath.Clean(writer.OutputDir)

	for i, outputPath := range outputs {
		for dir := filepath.Dir(outputPath); dir != root && dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
			if fileTemplate, ok := sources[dir]; ok {
				return nil, &OutputConflictError{
					OutputPath:        dir,
					FileTemplate:      fileTemplate,
					DirectoryTemplate: templates[i].Path,
				}
			}
		}
	}

	return outputs, nil
}
