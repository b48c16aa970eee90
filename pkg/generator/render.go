package generator

import (
	"bytes"
	"regexp"
	"text/template"

	"github.com/pkg/errors"
)

// controlLine matches a line holding only whitespace and one control or
// assignment action, including its line break. Actions carrying their own
// {{- or -}} trim markers are left to the engine.
var controlLine = regexp.MustCompile(
	`(?m)^[ \t]*(\{\{\s*(?:(?:if|else|end|range|with|define|block|break|continue)\b|/\*|\$\w*\s*:?=)(?:[^{}\n]*[^{}\n-])?\}\})[ \t]*(?:\r?\n|\z)`,
)

type Renderer struct {
	TrimControlLines bool
}

// Render executes source against ctx. name is used in error messages.
func (r Renderer) Render(name string, source []byte, ctx *RenderContext) ([]byte, error) {
	text := string(source)
	if r.TrimControlLines {
		text = trimControlLines(text)
	}

	tpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(ctx.FuncMap()).
		Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse template")
	}
	resolveFieldNames(tpl)

	buf := bytes.NewBuffer(nil)
	if err := tpl.Execute(buf, ctx.Data()); err != nil {
		return nil, errors.Wrap(err, "cannot render template")
	}

	return buf.Bytes(), nil
}

func trimControlLines(text string) string {
	return controlLine.ReplaceAllString(text, "$1")
}
