package generator

import (
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/pkg/errors"
)

// RenderContext is what a single template sees while rendering. Every lookup
// is backed by the same read-only Environment.
//
// Templates reach values three ways:
//
//	{{.sculptor_host}}            direct access, the name is upper-cased first
//	{{env "LOG_LEVEL" "info"}}    lookup with a default
//	{{if envBool "TLS_ENABLED"}}  true only for the literal value "true"
type RenderContext struct {
	env Environment
}

func NewRenderContext(env Environment) *RenderContext {
	return &RenderContext{env: env}
}

// Env returns the value of key, or the default when key is not set. Without a
// default an unset key yields an empty string.
func (c *RenderContext) Env(key string, fallback ...string) (string, error) {
	if len(fallback) > 1 {
		return "", errors.Errorf("env %q: expected at most one default, got %d", key, len(fallback))
	}

	def := ""
	if len(fallback) == 1 {
		def = fallback[0]
	}

	return c.env.Get(key, def), nil
}

func (c *RenderContext) EnvBool(key string) bool {
	return c.env.Bool(key)
}

func (c *RenderContext) FuncMap() template.FuncMap {
	return template.FuncMap{
		"env":     c.Env,
		"envBool": c.EnvBool,
	}
}

// Data is the template's dot. Field references are upper-cased at parse time
// by resolveFieldNames, so a map keyed by the exact variable names is enough.
func (c *RenderContext) Data() map[string]string {
	return c.env.Map()
}

// resolveFieldNames rewrites every field reference rooted at the template
// data (".name" and "$.name") to its upper-cased form, in all templates
// associated with tmpl.
func resolveFieldNames(tmpl *template.Template) {
	for _, t := range tmpl.Templates() {
		if t.Tree == nil {
			continue
		}
		resolveNode(t.Tree.Root)
	}
}

func resolveNode(node parse.Node) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			resolveNode(child)
		}
	case *parse.ActionNode:
		resolveNode(n.Pipe)
	case *parse.IfNode:
		resolveBranch(&n.BranchNode)
	case *parse.RangeNode:
		resolveBranch(&n.BranchNode)
	case *parse.WithNode:
		resolveBranch(&n.BranchNode)
	case *parse.TemplateNode:
		resolveNode(n.Pipe)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			resolveNode(cmd)
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			resolveNode(arg)
		}
	case *parse.ChainNode:
		resolveNode(n.Node)
	case *parse.FieldNode:
		n.Ident[0] = strings.ToUpper(n.Ident[0])
	case *parse.VariableNode:
		if len(n.Ident) > 1 && n.Ident[0] == "$" {
			n.Ident[1] = strings.ToUpper(n.Ident[1])
		}
	}
}

func resolveBranch(b *parse.BranchNode) {
	resolveNode(b.Pipe)
	resolveNode(b.List)
	resolveNode(b.ElseList)
}
