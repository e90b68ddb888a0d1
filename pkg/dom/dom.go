// Package dom defines the host document contract the slider renders into.
//
// A Document creates elements and resolves selectors; an Element is a node
// the slider can style, fill with text, nest and bind click listeners to.
// Two implementations exist: HTMLDocument, an in-memory tree backed by
// golang.org/x/net/html that also serves native tests and the CLI, and
// package jsdom, which forwards to the browser DOM under js/wasm.
//
// All methods are expected to be called from the host's UI goroutine.
package dom

import "sync"

// Listener handles an event dispatched to an element.
type Listener func(ev Event)

// Event describes a dispatched event.
type Event struct {
	// Type is the event name (e.g., "click").
	Type string
	// Target is the element the event was dispatched to.
	Target Element
}

// Element is a node in the host document.
type Element interface {
	// Tag returns the lower-case tag name.
	Tag() string
	// ID returns the id attribute.
	ID() string
	// SetID sets the id attribute.
	SetID(id string)

	// Attr returns the named attribute and whether it is present.
	Attr(name string) (string, bool)
	// SetAttr sets the named attribute.
	SetAttr(name, value string)
	// RemoveAttr removes the named attribute.
	RemoveAttr(name string)

	// SetClass replaces the class list.
	SetClass(names ...string)
	// AddClass adds names not already present.
	AddClass(names ...string)
	// RemoveClass removes names if present.
	RemoveClass(names ...string)
	// HasClass reports whether name is in the class list.
	HasClass(name string) bool
	// Classes returns the class list in order.
	Classes() []string

	// SetStyle sets an inline style property. An empty value removes it.
	SetStyle(prop, value string)
	// Style returns an inline style property.
	Style(prop string) string

	// Data returns a data-* attribute by its dataset key.
	Data(key string) (string, bool)
	// SetData sets a data-* attribute by its dataset key.
	SetData(key, value string)

	// Text returns the concatenated text content.
	Text() string
	// SetText replaces all children with a single text node.
	SetText(text string)

	// Append adds children at the end, detaching them from any previous parent.
	Append(children ...Element)
	// Children returns the element children in order.
	Children() []Element
	// Parent returns the parent element, or nil.
	Parent() Element

	// QuerySelector returns the first descendant matching sel, or nil.
	QuerySelector(sel string) (Element, error)
	// QuerySelectorAll returns every descendant matching sel in document order.
	QuerySelectorAll(sel string) ([]Element, error)

	// AddEventListener registers fn for events of the given type.
	AddEventListener(event string, fn Listener)
	// Click dispatches a click event to the element's listeners.
	Click()
}

// Document is the host document.
type Document interface {
	// CreateElement returns a new detached element.
	CreateElement(tag string) Element
	// QuerySelector returns the first element matching sel, or nil.
	QuerySelector(sel string) (Element, error)
	// QuerySelectorAll returns every element matching sel in document order.
	QuerySelectorAll(sel string) ([]Element, error)
}

var (
	defaultMu  sync.RWMutex
	defaultDoc Document
)

// SetDefault registers the document used by widgets that are not given one
// explicitly. Pass nil to restore a fresh empty in-memory document.
func SetDefault(doc Document) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDoc = doc
}

// Default returns the registered document, creating an empty in-memory
// document on first use.
func Default() Document {
	defaultMu.RLock()
	doc := defaultDoc
	defaultMu.RUnlock()
	if doc != nil {
		return doc
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultDoc == nil {
		defaultDoc = NewDocument()
	}
	return defaultDoc
}
