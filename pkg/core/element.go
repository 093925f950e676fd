package core

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Children is the result of rendering a component: nothing, one child
// element, or a list of child elements.
type Children struct {
	kind childrenKind
	one  Element
	many []Element
}

type childrenKind int

const (
	childrenNone childrenKind = iota
	childrenOne
	childrenMany
)

// None returns an empty render result, used by leaf components.
func None() Children {
	return Children{kind: childrenNone}
}

// One wraps a single child element.
func One(el Element) Children {
	return Children{kind: childrenOne, one: el}
}

// Many wraps a list of child elements, rendered in order.
func Many(els ...Element) Children {
	return Children{kind: childrenMany, many: els}
}

// Element is an immutable descriptor of one component invocation: a render
// function plus the props it closes over. Elements are pure data, recreated
// on every render; persistent state lives in the node the reconciler
// assigns to the element's position.
type Element struct {
	render   func(rc *RenderContext) Children
	props    any
	key      string
	typeName string
}

// Of builds an element from a component function and its props. The
// element's type name, used for identity assignment, is derived from the
// function's name; anonymous functions get a stable synthetic name.
func Of[P any](fn func(rc *RenderContext, props P) Children, props P) Element {
	return Element{
		render:   func(rc *RenderContext) Children { return fn(rc, props) },
		props:    props,
		typeName: funcTypeName(reflect.ValueOf(fn).Pointer()),
	}
}

// New builds an element from a component function without props.
func New(fn func(rc *RenderContext) Children) Element {
	return Element{
		render:   fn,
		typeName: funcTypeName(reflect.ValueOf(fn).Pointer()),
	}
}

// WithKey returns a copy of the element with an explicit identity key.
// The key replaces the derived type name during identity assignment;
// reorderable sibling lists need explicit keys to keep their state.
func (e Element) WithKey(key string) Element {
	e.key = key
	return e
}

// Key returns the explicit identity key, "" when unset.
func (e Element) Key() string {
	return e.key
}

// Props returns the props value the element was built with.
func (e Element) Props() any {
	return e.props
}

// TypeName returns the identity name derived from the component function.
func (e Element) TypeName() string {
	return e.typeName
}

// IsZero reports whether the element is the zero value, which renders
// nothing and is used as "no element".
func (e Element) IsZero() bool {
	return e.render == nil
}

// identityName returns the name used for id derivation: the explicit key
// when present, the type name otherwise.
func (e Element) identityName() string {
	if e.key != "" {
		return e.key
	}
	return e.typeName
}

// sameIdentity reports whether two elements occupy the same logical
// position type: equal keys and type names. A node whose element identity
// changes remounts.
func sameIdentity(a, b Element) bool {
	return a.key == b.key && a.typeName == b.typeName
}

// anonNames assigns stable synthetic names to anonymous component
// functions, keyed by function identity. Shared across instances, hence
// the lock.
var anonNames struct {
	sync.Mutex
	names map[uintptr]string
	next  int
}

// funcTypeName resolves a component function's declared name, or a
// synthetic "anonN" tag the first time an anonymous function is seen.
func funcTypeName(pc uintptr) string {
	name := ""
	if f := runtime.FuncForPC(pc); f != nil {
		name = f.Name()
	}
	// Trim generic instantiation and the package path:
	// "pkg/path.Counter[...]" becomes "Counter".
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name != "" && !isAnonName(name) {
		return name
	}

	anonNames.Lock()
	defer anonNames.Unlock()
	if anonNames.names == nil {
		anonNames.names = make(map[uintptr]string)
	}
	if existing, ok := anonNames.names[pc]; ok {
		return existing
	}
	anonNames.next++
	synthetic := "anon" + strconv.Itoa(anonNames.next)
	anonNames.names[pc] = synthetic
	return synthetic
}

// isAnonName matches the runtime's naming for function literals: a "funcN"
// segment, or a bare index for literals nested inside one.
func isAnonName(name string) bool {
	rest, ok := strings.CutPrefix(name, "func")
	if !ok {
		rest = name
	}
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
