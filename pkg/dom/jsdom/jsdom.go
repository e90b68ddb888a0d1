//go:build js && wasm

// Package jsdom implements the dom contract on top of the browser's
// document through syscall/js.
package jsdom

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/go-drift/slider/pkg/dom"
)

// Document wraps the global document.
type Document struct {
	v js.Value
}

// New returns the page's document.
func New() *Document {
	return &Document{v: js.Global().Get("document")}
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	return wrap(d.v.Call("createElement", tag))
}

// QuerySelector implements dom.Document.
func (d *Document) QuerySelector(sel string) (dom.Element, error) {
	return querySelector(d.v, sel)
}

// QuerySelectorAll implements dom.Document.
func (d *Document) QuerySelectorAll(sel string) ([]dom.Element, error) {
	return querySelectorAll(d.v, sel)
}

// Element wraps a browser element.
type Element struct {
	v     js.Value
	funcs []js.Func
}

// Value exposes the underlying JS object.
func (e *Element) Value() js.Value { return e.v }

func wrap(v js.Value) *Element {
	return &Element{v: v}
}

func (e *Element) Tag() string { return strings.ToLower(e.v.Get("tagName").String()) }

func (e *Element) ID() string { return e.v.Get("id").String() }

func (e *Element) SetID(id string) { e.v.Set("id", id) }

func (e *Element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *Element) RemoveAttr(name string) { e.v.Call("removeAttribute", name) }

func (e *Element) SetClass(names ...string) {
	e.v.Set("className", strings.Join(fields(names), " "))
}

func (e *Element) AddClass(names ...string) {
	list := e.v.Get("classList")
	for _, name := range fields(names) {
		list.Call("add", name)
	}
}

func (e *Element) RemoveClass(names ...string) {
	list := e.v.Get("classList")
	for _, name := range fields(names) {
		list.Call("remove", name)
	}
}

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) Classes() []string {
	return strings.Fields(e.v.Get("className").String())
}

func (e *Element) SetStyle(prop, value string) {
	style := e.v.Get("style")
	if value == "" {
		style.Call("removeProperty", prop)
		return
	}
	style.Call("setProperty", prop, value)
}

func (e *Element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *Element) Data(key string) (string, bool) {
	v := e.v.Get("dataset").Get(key)
	if v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (e *Element) SetData(key, value string) { e.v.Get("dataset").Set(key, value) }

func (e *Element) Text() string { return e.v.Get("textContent").String() }

func (e *Element) SetText(text string) { e.v.Set("textContent", text) }

func (e *Element) Append(children ...dom.Element) {
	for _, child := range children {
		c, ok := child.(*Element)
		if !ok {
			panic(fmt.Sprintf("jsdom: cannot append %T to a browser element", child))
		}
		e.v.Call("appendChild", c.v)
	}
}

func (e *Element) Children() []dom.Element {
	return collect(e.v.Get("children"))
}

func (e *Element) Parent() dom.Element {
	p := e.v.Get("parentElement")
	if p.IsNull() || p.IsUndefined() {
		return nil
	}
	return wrap(p)
}

func (e *Element) QuerySelector(sel string) (dom.Element, error) {
	return querySelector(e.v, sel)
}

func (e *Element) QuerySelectorAll(sel string) ([]dom.Element, error) {
	return querySelectorAll(e.v, sel)
}

// AddEventListener binds fn to the element. The callback lives as long as
// the page; sliders never unmount.
func (e *Element) AddEventListener(event string, fn dom.Listener) {
	if fn == nil {
		return
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(dom.Event{Type: event, Target: e})
		return nil
	})
	e.funcs = append(e.funcs, cb)
	e.v.Call("addEventListener", event, cb)
}

func (e *Element) Click() { e.v.Call("click") }

func querySelector(v js.Value, sel string) (el dom.Element, err error) {
	defer func() {
		if r := recover(); r != nil {
			el, err = nil, selectorError(sel, r)
		}
	}()
	found := v.Call("querySelector", sel)
	if found.IsNull() {
		return nil, nil
	}
	return wrap(found), nil
}

func querySelectorAll(v js.Value, sel string) (els []dom.Element, err error) {
	defer func() {
		if r := recover(); r != nil {
			els, err = nil, selectorError(sel, r)
		}
	}()
	return collect(v.Call("querySelectorAll", sel)), nil
}

// selectorError converts the SyntaxError the browser throws for a bad
// selector, which syscall/js surfaces as a panic.
func selectorError(sel string, r any) error {
	if jsErr, ok := r.(js.Error); ok {
		return fmt.Errorf("invalid selector %q: %s", sel, jsErr.Get("message").String())
	}
	return fmt.Errorf("invalid selector %q: %v", sel, r)
}

func collect(list js.Value) []dom.Element {
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, wrap(list.Index(i)))
	}
	return out
}

func fields(names []string) []string {
	var out []string
	for _, name := range names {
		out = append(out, strings.Fields(name)...)
	}
	return out
}
