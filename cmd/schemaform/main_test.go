package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cliSchema = `{
  "type": "object",
  "title": "Contact",
  "required": ["email"],
  "properties": {
    "email": {"type": "string", "title": "Email"},
    "newsletter": {"type": "boolean", "title": "Newsletter"}
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun_VanillaWithSeedAndTheme(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		schema:    writeFile(t, dir, "schema.json", cliSchema),
		data:      writeFile(t, dir, "seed.yaml", "newsletter: true\n"),
		renderer:  "vanilla",
		validator: "gojsonschema",
		theme: writeFile(t, dir, "theme.yaml", `
name: acme
version: "1.0"
tokens:
  brand: "#123456"
variants:
  dark:
    tokens:
      brand: "#000000"
`),
		variant: "dark",
		action:  "/contact",
	}

	out, err := run(context.Background(), opts, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	html := string(out)
	for _, want := range []string{`class="generic-form`, `action="/contact"`, "--brand: #000000", `class="errors"`, "Contact"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestRun_UnknownRendererAndValidator(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", cliSchema)

	if _, err := run(context.Background(), options{schema: schemaPath, renderer: "react"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected unknown renderer error")
	}
	if _, err := run(context.Background(), options{schema: schemaPath, renderer: "vanilla", validator: "ajv"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected unknown validator error")
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	manifest, err := loadManifest(writeFile(t, dir, "theme.yaml", "name: plain\ntokens:\n  radius: 4px\nassets:\n  prefix: /static\n  files:\n    vanilla.stylesheet: plain.css\n"))
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if manifest.Name != "plain" || manifest.Tokens["radius"] != "4px" || manifest.Assets.Files["vanilla.stylesheet"] != "plain.css" {
		t.Fatalf("unexpected manifest %+v", manifest)
	}

	if _, err := loadManifest(writeFile(t, dir, "nameless.yaml", "tokens: {}\n")); err == nil {
		t.Fatal("expected error for nameless manifest")
	}
}
