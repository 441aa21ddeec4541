package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-schemaform/internal/schema/loader"
	"github.com/goliatone/go-schemaform/pkg/form"
	"github.com/goliatone/go-schemaform/pkg/render"
	"github.com/goliatone/go-schemaform/pkg/renderers/tui"
	"github.com/goliatone/go-schemaform/pkg/renderers/vanilla"
	"github.com/goliatone/go-schemaform/pkg/schema"
	"github.com/goliatone/go-schemaform/pkg/validation"
)

type options struct {
	schema    string
	data      string
	renderer  string
	validator string
	output    string
	theme     string
	variant   string
	action    string
	timeout   time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.schema, "schema", "", "JSON Schema path or URL")
	flag.StringVar(&opts.data, "data", "", "seed document (JSON or YAML); opens the form in edit mode")
	flag.StringVar(&opts.renderer, "renderer", vanilla.Name, "renderer to use (vanilla or tui)")
	flag.StringVar(&opts.validator, "validator", "openapi", "validator backend (openapi or gojsonschema)")
	flag.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flag.StringVar(&opts.theme, "theme", "", "theme manifest YAML")
	flag.StringVar(&opts.variant, "variant", "", "theme variant")
	flag.StringVar(&opts.action, "action", "", "form action URL")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout for remote schemas")
	flag.Parse()

	if strings.TrimSpace(opts.schema) == "" {
		log.Fatal("missing -schema")
	}

	out, err := run(context.Background(), opts, os.Stdout)
	if err != nil {
		log.Fatalf("schemaform: %v", err)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", opts.output)
		return
	}
	fmt.Println(string(out))
}

func run(ctx context.Context, opts options, stdout io.Writer) ([]byte, error) {
	node, err := loader.New(loader.WithHTTP(), loader.WithTimeout(opts.timeout)).
		LoadNode(ctx, schema.SourceFromArg(opts.schema))
	if err != nil {
		return nil, err
	}

	validator, err := selectValidator(opts.validator)
	if err != nil {
		return nil, err
	}
	formOpts := []form.Option{form.WithValidator(validator)}
	if opts.data != "" {
		seed, err := loadSeed(opts.data)
		if err != nil {
			return nil, err
		}
		formOpts = append(formOpts, form.WithSeed(seed))
	}

	switch opts.renderer {
	case "tui":
		formOpts = append(formOpts, form.WithOnError(func([]validation.Error) {}))
		controller, err := form.New(node, formOpts...)
		if err != nil {
			return nil, err
		}
		state, err := tui.New(tui.WithPromptDriver(tui.NewSurveyDriver(stdout))).Run(ctx, controller)
		if err != nil {
			return nil, err
		}
		return json.MarshalIndent(state.Document, "", "  ")
	default:
		controller, err := form.New(node, formOpts...)
		if err != nil {
			return nil, err
		}
		return renderHTML(ctx, controller, opts)
	}
}

func renderHTML(ctx context.Context, controller *form.Controller, opts options) ([]byte, error) {
	var rendererOpts []vanilla.Option
	renderOpts := render.RenderOptions{Action: opts.action}
	if opts.theme != "" {
		manifest, err := loadManifest(opts.theme)
		if err != nil {
			return nil, err
		}
		themes, err := vanilla.NewThemeSet(manifest)
		if err != nil {
			return nil, err
		}
		rendererOpts = append(rendererOpts, vanilla.WithThemes(themes))
		renderOpts.Theme = render.ThemeSelection{Name: manifest.Name, Variant: opts.variant}
	} else {
		rendererOpts = append(rendererOpts, vanilla.WithDefaultStyles())
	}

	renderer, err := vanilla.New(rendererOpts...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return nil, err
	}

	out, _, err := registry.Render(ctx, opts.renderer, controller.View(), renderOpts)
	return out, err
}

func selectValidator(name string) (validation.Validator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "openapi":
		return validation.NewOpenAPI(), nil
	case "gojsonschema":
		return validation.NewGoJSONSchema(), nil
	default:
		return nil, fmt.Errorf("unknown validator %q", name)
	}
}

func loadSeed(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var decoded any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", path, err)
	}
	return validation.Normalize(decoded)
}
