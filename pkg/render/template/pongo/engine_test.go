package pongo_test

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-schemaform/pkg/render/template/pongo"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func newEngine(t *testing.T, opts ...pongo.Option) *pongo.Engine {
	t.Helper()
	files, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	engine, err := pongo.New(append([]pongo.Option{pongo.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderWritesToWriters(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	got, err := engine.Render("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!" || buf.String() != got {
		t.Fatalf("unexpected output %q / %q", got, buf.String())
	}
}

func TestEngine_GlobalsAndStructData(t *testing.T) {
	engine := newEngine(t, pongo.WithGlobals(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	got, err := engine.Render("use-global.tpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "staging" {
		t.Fatalf("unexpected output %q", got)
	}

	type payload struct {
		Name string `json:"name"`
	}
	got, err = engine.Render("hello", payload{Name: "Grace"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Grace!" {
		t.Fatalf("struct data should use json names, got %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil && !errors.Is(err, pongo.ErrFilterExists) {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.Render("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected output %q", got)
	}

	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); !errors.Is(err, pongo.ErrFilterExists) {
		t.Fatalf("expected ErrFilterExists, got %v", err)
	}
}

func TestEngine_InlineContentAndErrors(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.Render("{{ a|trim }}-{{ b }}", map[string]any{"a": "  x ", "b": 2})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "x-2" {
		t.Fatalf("unexpected output %q", got)
	}

	if _, err := engine.Render("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if _, err := pongo.New(); !errors.Is(err, pongo.ErrNoTemplates) {
		t.Fatalf("expected ErrNoTemplates, got %v", err)
	}
}

func TestEngine_ConcurrentConstruction(t *testing.T) {
	files, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	const workers = 8
	engines := make([]*pongo.Engine, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			engines[idx], errs[idx] = pongo.New(pongo.WithFS(files), pongo.WithSetName(fmt.Sprintf("set-%d", idx)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("engine %d: %v", i, errs[i])
		}
		got, err := engines[i].RenderString(`{{ name|trim }}`, map[string]any{"name": "  Ada  "})
		if err != nil {
			t.Fatalf("engine %d render: %v", i, err)
		}
		if got != "Ada" {
			t.Fatalf("engine %d: unexpected output %q", i, got)
		}
	}
}
