package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-schemaform/pkg/form"
	"github.com/goliatone/go-schemaform/pkg/testsupport"
	"github.com/goliatone/go-schemaform/pkg/validation"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	inputErr     error

	prompts    []string
	inputPos   int
	selectPos  int
	confirmPos int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, "input:"+cfg.Message)
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, "confirm:"+cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, "select:"+cfg.Message+":"+strings.Join(cfg.Options, "|"))
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func signupController(t *testing.T, opts ...form.Option) *form.Controller {
	t.Helper()
	return testsupport.MustNewController(t, testsupport.MustLoadSchema(t, "testdata/signup.json"), opts...)
}

func TestSession_RetriesUntilValid(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "go", "Ada", "go"},
		selectIdx: []int{1, 1},
		confirm:   []bool{true, true, false, true, false, false},
	}
	var submitted []form.SessionState
	c := signupController(t, form.WithOnSubmit(func(s form.SessionState) {
		submitted = append(submitted, s)
	}), form.WithOnError(func(_ []validation.Error) {}))

	state, err := New(WithPromptDriver(driver)).Run(testsupport.Context(), c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := map[string]any{"name": "Ada", "plan": "pro", "agree": true, "tags": []any{"go"}}
	if diff := cmp.Diff(want, state.Document); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
	if len(submitted) != 1 {
		t.Fatalf("expected one successful submit, got %d", len(submitted))
	}
	if state.Status != form.StatusInitial {
		t.Fatalf("expected status initial, got %q", state.Status)
	}

	if len(driver.infoMessages) != 3 {
		t.Fatalf("unexpected info messages %q", driver.infoMessages)
	}
	if driver.infoMessages[0] != "== Signup" || !strings.HasPrefix(driver.infoMessages[1], "Errors\n  - ") {
		t.Fatalf("unexpected info messages %q", driver.infoMessages)
	}
	if driver.prompts[0] != "input:Name*" || driver.prompts[1] != "select:Plan:free|pro" {
		t.Fatalf("unexpected prompts %q", driver.prompts)
	}
}

func TestSession_RemoveShiftsItems(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"a", "b"},
		confirm: []bool{true, false, false},
	}
	node := testsupport.MustParseSchema(t, `{"type":"object","properties":{"tags":{"type":"array","title":"Tags","items":{"type":"string","title":"Tag"}}}}`)
	c := testsupport.MustNewController(t, node, form.WithSeed(testsupport.MustLoadDocument(t, "testdata/tags_seed.json")))

	state, err := New(WithPromptDriver(driver)).Run(testsupport.Context(), c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"tags": []any{"b"}}, state.Document); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
	wantPrompts := []string{
		"input:Tag",
		"confirm:Remove Tag 1?",
		"input:Tag",
		"confirm:Remove Tag 1?",
		"confirm:Add Tag?",
	}
	if diff := cmp.Diff(wantPrompts, driver.prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_Errors(t *testing.T) {
	aborted := &stubDriver{inputErr: ErrAborted}
	c := signupController(t)
	if _, err := New(WithPromptDriver(aborted)).Run(testsupport.Context(), c); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	driver := &stubDriver{
		inputs:    []string{""},
		selectIdx: []int{0},
		confirm:   []bool{false, false},
	}
	c = signupController(t, form.WithOnError(func(_ []validation.Error) {}))
	_, err := New(WithPromptDriver(driver), WithMaxAttempts(1)).Run(testsupport.Context(), c)
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}

	ctx, cancel := context.WithCancel(testsupport.Context())
	cancel()
	if _, err := New(WithPromptDriver(&stubDriver{})).Run(ctx, signupController(t)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSession_UnsupportedFieldPrintsDiagnostic(t *testing.T) {
	driver := &stubDriver{}
	c := testsupport.MustNewController(t, testsupport.MustParseSchema(t, `{"type":"object","properties":{"x":{"type":"frobnicate"}}}`))
	if _, err := New(WithPromptDriver(driver)).Run(testsupport.Context(), c); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(driver.infoMessages) != 2 || !strings.Contains(driver.infoMessages[1], "Unsupported field schema") {
		t.Fatalf("unexpected info messages %q", driver.infoMessages)
	}
}
