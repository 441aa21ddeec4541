package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-schemaform/pkg/form"
	"github.com/goliatone/go-schemaform/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, view form.FormView, _ render.RenderOptions) ([]byte, error) {
	return []byte(s.name + ":" + view.SubmitLabel), nil
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(stubRenderer{name: "b"})
	reg.MustRegister(stubRenderer{name: "a"})

	if err := reg.Register(stubRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if diff := cmp.Diff([]string{"a", "b"}, reg.List()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	out, contentType, err := reg.Render(context.Background(), "a", form.FormView{SubmitLabel: "Go"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "a:Go" || contentType != "text/plain" {
		t.Fatalf("unexpected output %q %q", out, contentType)
	}

	if _, err := reg.Get("missing"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}
