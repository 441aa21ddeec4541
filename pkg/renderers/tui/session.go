package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-schemaform/pkg/fields"
	"github.com/goliatone/go-schemaform/pkg/form"
	"github.com/goliatone/go-schemaform/pkg/render"
	"github.com/goliatone/go-schemaform/pkg/widgets"
)

// Session fills a form interactively: one prompt per control, add/remove
// confirmations per array, then submit.
type Session struct {
	driver      PromptDriver
	maxAttempts int
	theme       Theme
}

// New builds a session. Without WithPromptDriver it talks to the terminal
// through survey.
func New(options ...Option) *Session {
	s := &Session{
		maxAttempts: DefaultMaxAttempts,
		theme:       Theme{SectionPrefix: "== ", ErrorPrefix: "  - "},
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// Run walks the form until a submit passes validation. Every failed attempt
// prints the error list and starts over with the current values as defaults.
func (s *Session) Run(ctx context.Context, c *form.Controller) (form.SessionState, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := s.edit(ctx, c, c.View().Root); err != nil {
			return c.State(), err
		}
		errs := c.Submit()
		if len(errs) == 0 {
			return c.State(), nil
		}
		if err := s.printErrors(ctx, c.View()); err != nil {
			return c.State(), err
		}
	}
	return c.State(), fmt.Errorf("%w (%d attempts)", ErrTooManyAttempts, s.maxAttempts)
}

func (s *Session) edit(ctx context.Context, c *form.Controller, view fields.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch view.Kind {
	case fields.KindObject:
		if err := s.section(ctx, view.Legend, view.Description); err != nil {
			return err
		}
		for _, child := range view.Children {
			if err := s.edit(ctx, c, child); err != nil {
				return err
			}
		}
		return nil
	case fields.KindArray:
		return s.editArray(ctx, c, view.Path)
	case fields.KindUnsupported:
		return s.driver.Info(ctx, view.Diagnostic)
	default:
		return s.editControl(ctx, c, view)
	}
}

func (s *Session) editControl(ctx context.Context, c *form.Controller, view fields.View) error {
	control := view.Control
	if control == nil {
		return nil
	}
	path := fields.ParsePath(view.Path)
	message := promptLabel(view, control)

	switch control.Widget {
	case widgets.WidgetCheckbox:
		answer, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: control.Checked(),
			Help:    control.Help,
		})
		if err != nil {
			return err
		}
		return c.Dispatch(fields.Change{Path: path, Value: answer})
	case widgets.WidgetSelect:
		labels := make([]string, 0, len(control.Options))
		current := 0
		for idx, option := range control.Options {
			labels = append(labels, option.Label)
			if option.Selected {
				current = idx
			}
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels,
			DefaultIndex: current,
			Help:         control.Help,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(control.Options) || control.Options[idx].Selected {
			return nil
		}
		return c.Dispatch(fields.Change{Path: path, Value: control.Options[idx].Value})
	default:
		answer, err := s.driver.Input(ctx, InputConfig{
			Message: message,
			Default: control.Text(),
			Help:    control.Placeholder,
		})
		if err != nil {
			return err
		}
		if answer == control.Text() {
			return nil
		}
		return c.Dispatch(fields.Input{Path: path, Raw: answer})
	}
}

func (s *Session) editArray(ctx context.Context, c *form.Controller, path string) error {
	view, ok := findView(c.View().Root, path)
	if !ok {
		return nil
	}
	if err := s.section(ctx, view.Legend, view.Description); err != nil {
		return err
	}
	target := fields.ParsePath(path)

	for idx := 0; ; {
		view, _ = findView(c.View().Root, path)
		if idx >= len(view.Children) {
			break
		}
		if err := s.edit(ctx, c, view.Children[idx]); err != nil {
			return err
		}
		remove, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Remove %s %d?", view.ItemTitle, idx+1),
		})
		if err != nil {
			return err
		}
		if remove {
			if err := c.Dispatch(fields.Remove{Path: target, Index: idx}); err != nil {
				return err
			}
			continue
		}
		idx++
	}

	for {
		add, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add %s?", view.ItemTitle),
		})
		if err != nil {
			return err
		}
		if !add {
			return nil
		}
		if err := c.Dispatch(fields.Add{Path: target}); err != nil {
			return err
		}
		view, _ = findView(c.View().Root, path)
		if len(view.Children) == 0 {
			return nil
		}
		if err := s.edit(ctx, c, view.Children[len(view.Children)-1]); err != nil {
			return err
		}
	}
}

func (s *Session) section(ctx context.Context, title, description string) error {
	if title == "" {
		return nil
	}
	line := s.theme.SectionPrefix + title
	if description != "" {
		line += " (" + description + ")"
	}
	return s.driver.Info(ctx, line)
}

func (s *Session) printErrors(ctx context.Context, view form.FormView) error {
	summary := render.ErrorList(view.Errors)
	if summary == nil {
		return nil
	}
	lines := []string{summary.Heading}
	for _, item := range summary.Items {
		lines = append(lines, s.theme.ErrorPrefix+item)
	}
	return s.driver.Info(ctx, strings.Join(lines, "\n"))
}

func promptLabel(view fields.View, control *widgets.Control) string {
	if label := control.DisplayLabel(); label != "" {
		return label
	}
	if view.Index != nil {
		return fmt.Sprintf("#%d", *view.Index+1)
	}
	if view.Name != "" {
		return view.Name
	}
	return "Value"
}

func findView(root fields.View, path string) (fields.View, bool) {
	var (
		found fields.View
		ok    bool
	)
	root.Walk(func(v fields.View) bool {
		if ok {
			return false
		}
		if v.Path == path {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}
