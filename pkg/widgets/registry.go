package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// HintKey is the schema extension that forces a widget by name.
const HintKey = "x-widget"

// Matcher decides whether a widget should handle the supplied subschema.
type Matcher func(node *schema.Node) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	build    Builder
	order    int
}

// Registry selects widget builders for scalar subschemas based on explicit
// hints or registered matchers. Higher priority wins; ties fall back to
// registration order. Unmatched nodes get the text widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widgets registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

var defaultRegistry = NewRegistry()

// Default returns the shared registry used when callers do not supply one.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a widget with the provided name, priority, matcher, and
// builder. The latest registration for a name wins when hints reference it.
func (r *Registry) Register(name string, priority int, matcher Matcher, build Builder) {
	if r == nil || matcher == nil || build == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		build:    build,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a node. An "x-widget" hint naming a
// registered widget is honoured before matcher evaluation.
func (r *Registry) Resolve(node *schema.Node) (string, bool) {
	entry, ok := r.lookup(node)
	if !ok {
		return "", false
	}
	return entry.name, true
}

// Build resolves the widget for node and builds its control. Nodes no rule
// matches fall back to Text.
func (r *Registry) Build(node *schema.Node, value any, c Constraints) Control {
	if c.Schema == nil {
		c.Schema = node
	}
	entry, ok := r.lookup(node)
	if !ok {
		return Text(value, c)
	}
	return entry.build(value, c)
}

func (r *Registry) lookup(node *schema.Node) (rule, bool) {
	if r == nil {
		return rule{}, false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	if len(rules) == 0 {
		return rule{}, false
	}

	if hint := explicitWidget(node); hint != "" {
		for idx := len(rules) - 1; idx >= 0; idx-- {
			if rules[idx].name == hint {
				return rules[idx], true
			}
		}
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(node) {
			return entry, true
		}
	}
	return rule{}, false
}

func explicitWidget(node *schema.Node) string {
	value, ok := node.Extension(HintKey)
	if !ok {
		return ""
	}
	name, _ := value.(string)
	return strings.TrimSpace(name)
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetSelect, 90, func(node *schema.Node) bool {
		return node.HasEnum()
	}, Select)

	r.Register(WidgetCheckbox, 80, func(node *schema.Node) bool {
		return node != nil && node.Type == schema.TypeBoolean
	}, Checkbox)

	r.Register(WidgetText, 10, func(node *schema.Node) bool {
		return node != nil
	}, Text)
}
