package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-schemaform/pkg/form"
	"github.com/goliatone/go-schemaform/pkg/render"
	"github.com/goliatone/go-schemaform/pkg/schema"
	"github.com/goliatone/go-schemaform/pkg/validation"
)

func TestErrorList(t *testing.T) {
	if render.ErrorList(nil) != nil {
		t.Fatalf("expected nil summary for no errors")
	}

	errs := []validation.Error{
		validation.NewError("/name", "is required"),
		{Message: "bare message"},
	}
	summary := render.ErrorList(errs)
	want := &render.ErrorSummary{
		Heading: "Errors",
		Items:   []string{"instance.name: is required", "bare message"},
	}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrors(t *testing.T) {
	node := schema.MustParse(`{
	  "type": "object",
	  "properties": {
	    "name": {"type": "string"},
	    "owner": {"type": "object", "properties": {"email": {"type": "string"}}},
	    "tags": {"type": "array", "items": {"type": "string"}}
	  }
	}`)
	c, err := form.New(node, form.WithSeed(map[string]any{"tags": []any{"a"}}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	errs := []validation.Error{
		validation.NewError("/name", "Name is required"),
		validation.NewError("/tags/0", "too short"),
		validation.NewError("/tags/7", "unknown item"),
		validation.NewError("", "root problem"),
	}
	external := map[string][]string{
		"owner.email":      {" Email invalid ", "Email invalid"},
		"non_field_errors": {"Server said no"},
		"/nowhere":         {"Lost field"},
	}

	mapped := render.MapErrors(c.View(), errs, external)

	wantFields := map[string][]string{
		"name":        {"Name is required"},
		"tags.0":      {"too short"},
		"tags":        {"unknown item"},
		"owner.email": {"Email invalid"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	for _, msg := range []string{"root problem", "Server said no", "Lost field"} {
		found := false
		for _, got := range mapped.Form {
			if got == msg {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected form-level %q in %v", msg, mapped.Form)
		}
	}
	if got := mapped.For("name"); len(got) != 1 {
		t.Fatalf("For(name) = %v", got)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	if diff := cmp.Diff([]string{"First", "Second", "third"}, merged); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestHiddenFields(t *testing.T) {
	got := render.HiddenFields(
		map[string]string{" existing ": "keep", "": "ignored"},
		render.CSRFToken("_csrf", "token123"),
		render.Hidden("version", 4),
		render.Hidden("  ", "skip"),
	)
	want := []render.HiddenField{
		{Name: "_csrf", Value: "token123"},
		{Name: "existing", Value: "keep"},
		{Name: "version", Value: "4"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if render.HiddenFields(nil) != nil {
		t.Fatalf("expected nil for no fields")
	}
}

func TestLocalizeChrome(t *testing.T) {
	if diff := cmp.Diff(render.DefaultChrome, render.LocalizeChrome(render.RenderOptions{})); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	translator := render.TranslatorFunc(func(locale, key string, _ ...any) (string, error) {
		if locale == "es" && key == render.KeySubmit {
			return "Enviar", nil
		}
		return "", render.ErrMissingTranslator
	})
	chrome := render.LocalizeChrome(render.RenderOptions{Locale: "es", Translator: translator})
	if chrome.Submit != "Enviar" || chrome.ErrorsHeading != "Errors" {
		t.Fatalf("unexpected chrome %+v", chrome)
	}
}
