package fields

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// ArrayField owns the ordered item list for an array subschema. Item
// positions are not stable identities: removing an item shifts the ones
// after it down and remounts them under their new paths.
type ArrayField struct {
	base
	items    []any
	children []Field
}

func newArrayField(ctx *mountContext, node *schema.Node, value any, path Path, required bool, notify Notify) Field {
	field := &ArrayField{
		base: base{
			ctx:      ctx,
			node:     node,
			path:     path,
			required: required,
			notify:   notify,
		},
		items: seedArray(node, value),
	}
	field.remountFrom(0)
	return field
}

func seedArray(node *schema.Node, value any) []any {
	if typed, ok := value.([]any); ok {
		return cloneSlice(typed)
	}
	if typed, ok := node.Default.([]any); ok {
		return cloneSlice(typed)
	}
	return []any{}
}

func (f *ArrayField) Kind() Kind { return KindArray }
func (f *ArrayField) Value() any { return cloneSlice(f.items) }

// Len returns the number of items.
func (f *ArrayField) Len() int { return len(f.items) }

// Item returns the mounted field at idx.
func (f *ArrayField) Item(idx int) (Field, bool) {
	if idx < 0 || idx >= len(f.children) {
		return nil, false
	}
	return f.children[idx], true
}

// ItemTitle is the heading shown for each item.
func (f *ArrayField) ItemTitle() string {
	items := f.node.Items
	switch {
	case items == nil:
		return "Item"
	case items.Title != "":
		return items.Title
	case items.Description != "":
		return items.Description
	default:
		return "Item"
	}
}

// Add appends a synthesized default item.
func (f *ArrayField) Add() {
	f.items = appendItem(f.items, f.ctx.defaultItem(f.node.Items))
	f.remountFrom(len(f.items) - 1)
	f.notify(cloneSlice(f.items))
}

// Remove deletes the item at idx, shifting later items down by one.
func (f *ArrayField) Remove(idx int) error {
	if idx < 0 || idx >= len(f.items) {
		return f.outOfRange(idx)
	}
	f.items = removeItem(f.items, idx)
	f.remountFrom(idx)
	f.notify(cloneSlice(f.items))
	return nil
}

// Update replaces the item at idx; every other position is unchanged.
func (f *ArrayField) Update(idx int, value any) error {
	if idx < 0 || idx >= len(f.items) {
		return f.outOfRange(idx)
	}
	f.items = replaceItem(f.items, idx, value)
	f.notify(cloneSlice(f.items))
	return nil
}

func (f *ArrayField) View() View {
	view := f.viewBase(KindArray)
	view.Legend = f.title()
	view.Class = "field field-array field-array-of-" + typeClass(f.node.Items)
	view.ItemTitle = f.ItemTitle()
	view.CanAdd = true
	view.Children = make([]View, 0, len(f.children))
	for idx, child := range f.children {
		item := child.View()
		position := idx
		item.Index = &position
		item.Removable = true
		view.Children = append(view.Children, item)
	}
	return view
}

func (f *ArrayField) Handle(rel Path, ev Event) error {
	if len(rel) == 0 {
		switch typed := ev.(type) {
		case Add:
			f.Add()
			return nil
		case Remove:
			return f.Remove(typed.Index)
		default:
			return unsupportedEvent(f.path, ev)
		}
	}
	idx, err := strconv.Atoi(rel[0])
	if err != nil {
		return pathNotFound(f.path.Child(rel[0]))
	}
	child, ok := f.Item(idx)
	if !ok {
		return f.outOfRange(idx)
	}
	return child.Handle(rel[1:], ev)
}

// remountFrom rebuilds children at positions >= start so their paths and
// update callbacks match the current positions.
func (f *ArrayField) remountFrom(start int) {
	if start > len(f.children) {
		start = len(f.children)
	}
	children := make([]Field, start, len(f.items))
	copy(children, f.children[:start])
	required := f.ctx.isItemRequired(f.node.Items)
	for idx := start; idx < len(f.items); idx++ {
		position := idx
		children = append(children, mount(f.ctx, f.node.Items, f.items[idx], f.path.Index(idx), required, func(next any) {
			_ = f.Update(position, next)
		}))
	}
	f.children = children
}

func (f *ArrayField) outOfRange(idx int) error {
	return fmt.Errorf("%w: %d (len %d) at %q", ErrIndexOutOfRange, idx, len(f.items), f.path.String())
}

func appendItem(items []any, item any) []any {
	next := make([]any, len(items), len(items)+1)
	copy(next, items)
	return append(next, item)
}

func removeItem(items []any, idx int) []any {
	next := make([]any, 0, len(items)-1)
	next = append(next, items[:idx]...)
	return append(next, items[idx+1:]...)
}

func replaceItem(items []any, idx int, value any) []any {
	next := make([]any, len(items))
	copy(next, items)
	next[idx] = value
	return next
}
