// Package registry tracks the UI elements that take part in the concentric
// layout.
//
// The registry is an arena keyed by caller-assigned id. A presentation layer
// brackets each element's lifetime with [Registry.Register] and
// [Registry.Unregister] and reports size changes through
// [Registry.UpdateBounds] and [Registry.SetExpanded]. The registry stores
// base state only; territories and rings are derived from it elsewhere and
// are never cached here.
package registry

import (
	"cmp"
	"reflect"
	"slices"
	"strings"

	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/geom"
)

// Category determines how an element is grouped and along which axis it is
// sorted when territories are computed.
type Category string

const (
	// CategoryNav elements form the navigation row (or column).
	CategoryNav Category = "nav"
	// CategoryContent elements form the vertical content stack.
	CategoryContent Category = "content-section"
	// CategorySocial elements form the bottom row.
	CategorySocial Category = "social"
)

// Categories lists the known categories in layout order.
var Categories = []Category{CategoryNav, CategoryContent, CategorySocial}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// ParseCategory converts a user-supplied name to a Category. The short form
// "section" is accepted for content sections.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nav":
		return CategoryNav, nil
	case "content-section", "content", "section":
		return CategoryContent, nil
	case "social":
		return CategorySocial, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidCategory, "unknown category %q (must be one of: nav, content-section, social)", s)
	}
}

// Measurer reports an element's current on-screen rectangle in viewport
// coordinates, including any visual transform applied to it.
type Measurer interface {
	Measure() geom.Rect
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func() geom.Rect

// Measure calls f.
func (f MeasurerFunc) Measure() geom.Rect { return f() }

// Element is one UI region participating in the layout.
type Element struct {
	ID       string
	Category Category

	// Bounds is the element's base rectangle: document-relative for
	// scrolling elements, viewport-relative when Pinned.
	Bounds geom.Rect

	// Measured is false until bounds have been captured at least once.
	Measured bool

	// LockedX holds the horizontal anchor once captured. It only changes
	// after UnlockAll, which callers invoke on a real layout-width change.
	LockedX float64
	XLocked bool

	// Expanded mirrors the presentation layer's open/closed state.
	Expanded bool

	// Pinned elements are fixed to the viewport and keep viewport-relative
	// coordinates.
	Pinned bool
}

// Option configures an element at registration.
type Option func(*Element)

// WithPinned marks the element as fixed to the viewport.
func WithPinned(pinned bool) Option {
	return func(e *Element) { e.Pinned = pinned }
}

type entry struct {
	elem     Element
	measurer Measurer
}

// Registry is the id-keyed arena of mounted elements.
// It is not safe for concurrent use; all mutation happens on one goroutine.
type Registry struct {
	entries map[string]*entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register adds or replaces an element. The measurer is sampled once to
// seed the element's bounds. Registration without a measurer, including a
// nil pointer or func wrapped in the interface, is a no-op and reports
// false.
func (r *Registry) Register(id string, category Category, m Measurer, opts ...Option) bool {
	if isNil(m) {
		return false
	}

	elem := Element{
		ID:       id,
		Category: category,
		Bounds:   m.Measure(),
		Measured: true,
	}
	for _, opt := range opts {
		opt(&elem)
	}
	r.entries[id] = &entry{elem: elem, measurer: m}
	return true
}

func isNil(m Measurer) bool {
	if m == nil {
		return true
	}
	switch v := reflect.ValueOf(m); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Unregister removes an element. It reports whether the element existed.
func (r *Registry) Unregister(id string) bool {
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// UpdateBounds replaces one element's base rectangle without touching any
// other element.
func (r *Registry) UpdateBounds(id string, rect geom.Rect) bool {
	e, ok := r.entries[id]
	if !ok {
		return false
	}
	e.elem.Bounds = rect
	e.elem.Measured = true
	return true
}

// SetExpanded records the element's expansion state. It reports whether the
// state changed.
func (r *Registry) SetExpanded(id string, expanded bool) bool {
	e, ok := r.entries[id]
	if !ok || e.elem.Expanded == expanded {
		return false
	}
	e.elem.Expanded = expanded
	return true
}

// LockX freezes the element's horizontal anchor at x.
func (r *Registry) LockX(id string, x float64) {
	if e, ok := r.entries[id]; ok {
		e.elem.LockedX = x
		e.elem.XLocked = true
	}
}

// UnlockAll releases every horizontal anchor so the next measurement
// recaptures it.
func (r *Registry) UnlockAll() {
	for _, e := range r.entries {
		e.elem.XLocked = false
		e.elem.LockedX = 0
	}
}

// Get returns a copy of the element with the given id.
func (r *Registry) Get(id string) (Element, bool) {
	e, ok := r.entries[id]
	if !ok {
		return Element{}, false
	}
	return e.elem, true
}

// Measurer returns the measurer registered for id.
func (r *Registry) Measurer(id string) (Measurer, bool) {
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return e.measurer, true
}

// Len returns the number of registered elements.
func (r *Registry) Len() int { return len(r.entries) }

// IDs returns the registered ids in ascending order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Elements returns copies of all elements ordered by id, so the result never
// depends on map iteration order.
func (r *Registry) Elements() []Element {
	out := make([]Element, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.elem)
	}
	slices.SortFunc(out, func(a, b Element) int { return cmp.Compare(a.ID, b.ID) })
	return out
}
