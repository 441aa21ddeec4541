package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-schemaform/pkg/fields"
	"github.com/goliatone/go-schemaform/pkg/form"
	"github.com/goliatone/go-schemaform/pkg/render"
	rendertemplate "github.com/goliatone/go-schemaform/pkg/render/template"
	"github.com/goliatone/go-schemaform/pkg/render/template/pongo"
)

// Name is the registry name of the HTML renderer.
const Name = "vanilla"

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	themes           theme.ThemeSelector
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemes resolves RenderOptions.Theme through selector.
func WithThemes(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		cfg.themes = selector
	}
}

// WithDefaultStyles inlines the bundled stylesheet into the form.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// Renderer draws a form view as an HTML fragment.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	themes       theme.ThemeSelector
	inlineStyles bool
}

var _ render.Renderer = (*Renderer)(nil)

// New builds the renderer. Without a custom engine the embedded templates are
// loaded through pongo2.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tpl"),
			pongo.WithSetName("vanilla"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure templates: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates:    templates,
		themes:       cfg.themes,
		inlineStyles: cfg.inlineStyles,
	}, nil
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render draws the error summary, the field tree, and the submit control.
func (r *Renderer) Render(ctx context.Context, view form.FormView, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chrome := render.LocalizeChrome(opts)
	mapping := render.MapErrors(view, view.Errors, opts.Errors)

	body, err := r.renderField(view.Root, mapping, chrome)
	if err != nil {
		return nil, err
	}
	summary, err := r.renderSummary(view, opts, chrome)
	if err != nil {
		return nil, err
	}

	formData := map[string]any{
		"class":        view.Class,
		"method":       opts.MethodOrDefault(),
		"action":       opts.Action,
		"hidden":       hiddenData(opts.Hidden),
		"errors":       summary,
		"body":         body,
		"submit":       chrome.Submit,
		"actionsClass": string(ClassActions),
	}
	if formData["class"] == "" {
		formData["class"] = string(ClassForm)
	}
	if r.inlineStyles {
		formData["inlineStyles"] = defaultStylesheet()
	}
	if err := r.applyTheme(formData, opts.Theme); err != nil {
		return nil, err
	}

	out, err := r.templates.Render("form", map[string]any{"form": formData})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render form: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) renderSummary(view form.FormView, opts render.RenderOptions, chrome render.Chrome) (string, error) {
	var items []string
	if summary := render.ErrorList(view.Errors); summary != nil {
		items = summary.Items
	}
	if len(opts.Errors) > 0 {
		external := render.MapErrors(view, nil, opts.Errors)
		items = render.MergeFormErrors(items, external.Form...)
	}
	if len(items) == 0 {
		return "", nil
	}
	out, err := r.templates.Render("errors", map[string]any{
		"summary": map[string]any{
			"class":   string(ClassErrors),
			"heading": chrome.ErrorsHeading,
			"items":   items,
		},
	})
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render errors: %w", err)
	}
	return out, nil
}

func (r *Renderer) applyTheme(formData map[string]any, selection render.ThemeSelection) error {
	if selection.Name == "" || r.themes == nil {
		return nil
	}
	selected, err := r.themes.Select(selection.Name, selection.Variant)
	if err != nil {
		return fmt.Errorf("vanilla renderer: select theme: %w", err)
	}
	formData["theme"] = selected.Theme
	formData["style"] = cssVarsStyle(cssVars(themeTokens(selected)))
	formData["stylesheet"] = stylesheetURL(selected)
	return nil
}

func (r *Renderer) renderField(view fields.View, mapping render.ErrorMapping, chrome render.Chrome) (string, error) {
	data := map[string]any{
		"errorClass": string(ClassFieldError),
	}
	field := map[string]any{
		"class":  view.Class,
		"path":   view.Path,
		"errors": mapping.For(view.Path),
	}
	data["field"] = field

	var name string
	switch view.Kind {
	case fields.KindObject:
		name = "object"
		children, err := r.renderChildren(view.Children, mapping, chrome)
		if err != nil {
			return "", err
		}
		field["legend"] = view.Legend
		field["description"] = sanitizeText(view.Description)
		field["children"] = children
	case fields.KindArray:
		name = "array"
		items := make([]map[string]any, 0, len(view.Children))
		for _, child := range view.Children {
			body, err := r.renderField(child, mapping, chrome)
			if err != nil {
				return "", err
			}
			items = append(items, map[string]any{"index": *child.Index, "body": body})
		}
		field["legend"] = view.Legend
		field["description"] = sanitizeText(view.Description)
		field["itemTitle"] = view.ItemTitle
		field["items"] = items
		data["classes"] = map[string]any{
			"list":   string(ClassItemList),
			"item":   string(ClassItem),
			"add":    string(ClassItemAdd),
			"remove": string(ClassItemRemove),
		}
		data["chrome"] = map[string]any{"add": chrome.AddItem, "remove": chrome.RemoveItem}
	case fields.KindUnsupported:
		name = "unsupported"
		field["diagnostic"] = view.Diagnostic
	default:
		name = "field"
		if view.Control == nil {
			return "", fmt.Errorf("vanilla renderer: field %q has no control", view.Path)
		}
		control := view.Control
		field["id"] = controlID(view.Path)
		field["name"] = InputName(view.Path)
		field["widget"] = control.Widget
		field["inputType"] = control.InputType
		field["label"] = control.DisplayLabel()
		field["required"] = control.Required
		field["placeholder"] = control.Placeholder
		field["help"] = control.Help
		field["value"] = control.Text()
		field["checked"] = control.Checked()
		options := make([]map[string]any, 0, len(control.Options))
		for _, option := range control.Options {
			options = append(options, map[string]any{"label": option.Label, "selected": option.Selected})
		}
		field["options"] = options
	}

	out, err := r.templates.Render(name, data)
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render %s %q: %w", name, view.Path, err)
	}
	return out, nil
}

func (r *Renderer) renderChildren(children []fields.View, mapping render.ErrorMapping, chrome render.Chrome) (string, error) {
	var b strings.Builder
	for _, child := range children {
		markup, err := r.renderField(child, mapping, chrome)
		if err != nil {
			return "", err
		}
		b.WriteString(markup)
	}
	return b.String(), nil
}

func hiddenData(hidden map[string]string) []map[string]any {
	fieldsOut := render.HiddenFields(hidden)
	if len(fieldsOut) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(fieldsOut))
	for _, field := range fieldsOut {
		out = append(out, map[string]any{"name": field.Name, "value": field.Value})
	}
	return out
}
