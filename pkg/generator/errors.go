package generator

import (
	"fmt"
	"strings"
)

type MissingVariablesError struct {
	Names []string
}

func (e *MissingVariablesError) Error() string {
	return "Missing required environment variables: " + strings.Join(e.Names, ", ")
}

// TemplateError ties a render or write failure to the template that caused it.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *TemplateError) Cause() error {
	return e.Err
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// OutputConflictError is returned when one template renders to a file whose
// path another template needs as a directory.
type OutputConflictError struct {
	OutputPath        string
	FileTemplate      string
	DirectoryTemplate string
}

func (e *OutputConflictError) Error() string {
	return fmt.Sprintf(
		"%s is generated from %s but is also a directory for %s",
		e.OutputPath, e.FileTemplate, e.DirectoryTemplate,
	)
}
