package dom

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const blankPage = `<!DOCTYPE html><html><head></head><body></body></html>`

// HTMLDocument is an in-memory Document backed by an x/net/html node tree.
//
// Event listeners live on the Node wrappers, so the same *html.Node always
// maps to the same *Node for the lifetime of the document.
type HTMLDocument struct {
	root      *html.Node
	nodes     map[*html.Node]*Node
	selectors map[string]cascadia.Selector
}

// NewDocument returns an empty page with a head and a body.
func NewDocument() *HTMLDocument {
	doc, err := ParseString(blankPage)
	if err != nil {
		panic(fmt.Sprintf("dom: parsing blank page: %v", err))
	}
	return doc
}

// Parse reads an HTML page into a document.
func Parse(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &HTMLDocument{
		root:      root,
		nodes:     make(map[*html.Node]*Node),
		selectors: make(map[string]cascadia.Selector),
	}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*HTMLDocument, error) {
	return Parse(strings.NewReader(s))
}

// CreateElement returns a new detached element.
func (d *HTMLDocument) CreateElement(tag string) Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// Body returns the body element.
func (d *HTMLDocument) Body() Element {
	el, err := d.QuerySelector("body")
	if err != nil || el == nil {
		return nil
	}
	return el
}

// QuerySelector returns the first element matching sel, or nil.
func (d *HTMLDocument) QuerySelector(sel string) (Element, error) {
	m, err := d.compile(sel)
	if err != nil {
		return nil, err
	}
	found := cascadia.Query(d.root, m)
	if found == nil {
		return nil, nil
	}
	return d.wrap(found), nil
}

// QuerySelectorAll returns every element matching sel in document order.
func (d *HTMLDocument) QuerySelectorAll(sel string) ([]Element, error) {
	m, err := d.compile(sel)
	if err != nil {
		return nil, err
	}
	return d.wrapAll(cascadia.QueryAll(d.root, m)), nil
}

// Render writes the whole document as HTML.
func (d *HTMLDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the whole document.
func (d *HTMLDocument) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// OuterHTML renders a single element and its subtree.
func OuterHTML(el Element) string {
	n, ok := el.(*Node)
	if !ok || n == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n.n); err != nil {
		return ""
	}
	return buf.String()
}

func (d *HTMLDocument) compile(sel string) (cascadia.Selector, error) {
	if m, ok := d.selectors[sel]; ok {
		return m, nil
	}
	m, err := cascadia.Compile(sel)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", sel, err)
	}
	d.selectors[sel] = m
	return m, nil
}

func (d *HTMLDocument) wrap(n *html.Node) *Node {
	if w, ok := d.nodes[n]; ok {
		return w
	}
	w := &Node{doc: d, n: n}
	d.nodes[n] = w
	return w
}

func (d *HTMLDocument) wrapAll(nodes []*html.Node) []Element {
	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

// Node is an element of an HTMLDocument.
type Node struct {
	doc       *HTMLDocument
	n         *html.Node
	listeners map[string][]Listener
}

// HTMLNode exposes the underlying x/net/html node.
func (e *Node) HTMLNode() *html.Node { return e.n }

func (e *Node) Tag() string { return e.n.Data }

func (e *Node) ID() string {
	id, _ := e.Attr("id")
	return id
}

func (e *Node) SetID(id string) { e.SetAttr("id", id) }

func (e *Node) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Node) SetAttr(name, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Node) RemoveAttr(name string) {
	attrs := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		attrs = append(attrs, a)
	}
	e.n.Attr = attrs
}

func (e *Node) Classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

func (e *Node) SetClass(names ...string) {
	var list []string
	for _, name := range names {
		list = appendUnique(list, strings.Fields(name)...)
	}
	if len(list) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(list, " "))
}

func (e *Node) AddClass(names ...string) {
	e.SetClass(append(e.Classes(), names...)...)
}

func (e *Node) RemoveClass(names ...string) {
	var kept []string
	for _, c := range e.Classes() {
		if !slices.Contains(names, c) {
			kept = append(kept, c)
		}
	}
	e.SetClass(kept...)
}

func (e *Node) HasClass(name string) bool {
	return slices.Contains(e.Classes(), name)
}

func (e *Node) Style(prop string) string {
	for _, d := range e.declarations() {
		if d[0] == prop {
			return d[1]
		}
	}
	return ""
}

func (e *Node) SetStyle(prop, value string) {
	decls := e.declarations()
	found := false
	out := decls[:0]
	for _, d := range decls {
		if d[0] == prop {
			found = true
			if value == "" {
				continue
			}
			d[1] = value
		}
		out = append(out, d)
	}
	if !found && value != "" {
		out = append(out, [2]string{prop, value})
	}
	if len(out) == 0 {
		e.RemoveAttr("style")
		return
	}
	parts := make([]string, len(out))
	for i, d := range out {
		parts[i] = d[0] + ": " + d[1]
	}
	e.SetAttr("style", strings.Join(parts, "; ")+";")
}

// declarations parses the inline style attribute into ordered pairs.
func (e *Node) declarations() [][2]string {
	v, _ := e.Attr("style")
	var out [][2]string
	for _, part := range strings.Split(v, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		out = append(out, [2]string{prop, strings.TrimSpace(value)})
	}
	return out
}

func (e *Node) Data(key string) (string, bool) {
	return e.Attr(dataAttr(key))
}

func (e *Node) SetData(key, value string) {
	e.SetAttr(dataAttr(key), value)
}

func (e *Node) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return sb.String()
}

func (e *Node) SetText(text string) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
	if text != "" {
		e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func (e *Node) Append(children ...Element) {
	for _, child := range children {
		c, ok := child.(*Node)
		if !ok {
			panic(fmt.Sprintf("dom: cannot append %T to an in-memory document", child))
		}
		if c.n.Parent != nil {
			c.n.Parent.RemoveChild(c.n)
		}
		e.n.AppendChild(c.n)
	}
}

func (e *Node) Children() []Element {
	var out []Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

func (e *Node) Parent() Element {
	p := e.n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.wrap(p)
}

func (e *Node) QuerySelector(sel string) (Element, error) {
	m, err := e.doc.compile(sel)
	if err != nil {
		return nil, err
	}
	found := cascadia.Query(e.n, m)
	if found == nil {
		return nil, nil
	}
	return e.doc.wrap(found), nil
}

func (e *Node) QuerySelectorAll(sel string) ([]Element, error) {
	m, err := e.doc.compile(sel)
	if err != nil {
		return nil, err
	}
	return e.doc.wrapAll(cascadia.QueryAll(e.n, m)), nil
}

func (e *Node) AddEventListener(event string, fn Listener) {
	if fn == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[event] = append(e.listeners[event], fn)
}

// Click dispatches a click that bubbles from e up through its ancestors.
func (e *Node) Click() {
	e.Dispatch("click")
}

// Dispatch sends an event of the given type to e and then to each ancestor.
func (e *Node) Dispatch(event string) {
	ev := Event{Type: event, Target: e}
	for n := e.n; n != nil; n = n.Parent {
		w, ok := e.doc.nodes[n]
		if !ok {
			continue
		}
		listeners := append([]Listener(nil), w.listeners[event]...)
		for _, fn := range listeners {
			fn(ev)
		}
	}
}

// dataAttr maps a dataset key such as "slideCount" to "data-slide-count".
func dataAttr(key string) string {
	var sb strings.Builder
	sb.WriteString("data-")
	for _, r := range key {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func appendUnique(list []string, names ...string) []string {
	for _, name := range names {
		if name != "" && !slices.Contains(list, name) {
			list = append(list, name)
		}
	}
	return list
}
