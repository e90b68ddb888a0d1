package slidertest

import (
	"fmt"
	"strings"

	"github.com/go-drift/slider/pkg/dom"
)

// Finder locates elements in the host document.
type Finder interface {
	// Evaluate returns all matching elements in document order.
	Evaluate(doc dom.Document) []dom.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []dom.Element
	finder   Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() dom.Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.describe()))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() dom.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) dom.Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.describe()))
	}
	return r.elements[index]
}

// All returns all matches in document order.
func (r FinderResult) All() []dom.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Text returns the text of the first match, or "" if none.
func (r FinderResult) Text() string {
	if len(r.elements) == 0 {
		return ""
	}
	return r.elements[0].Text()
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// selectorFinder matches elements by CSS selector.
type selectorFinder struct {
	sel string
}

func (f *selectorFinder) Evaluate(doc dom.Document) []dom.Element {
	found, err := doc.QuerySelectorAll(f.sel)
	if err != nil {
		return nil
	}
	return found
}

func (f *selectorFinder) Description() string {
	return fmt.Sprintf("BySelector(%q)", f.sel)
}

// BySelector returns a finder that matches elements by CSS selector.
// An invalid selector matches nothing.
func BySelector(sel string) Finder {
	return &selectorFinder{sel: sel}
}

// textFinder matches elements of a selector whose trimmed text equals text.
type textFinder struct {
	sel  string
	text string
}

func (f *textFinder) Evaluate(doc dom.Document) []dom.Element {
	var out []dom.Element
	for _, el := range (&selectorFinder{sel: f.sel}).Evaluate(doc) {
		if strings.TrimSpace(el.Text()) == f.text {
			out = append(out, el)
		}
	}
	return out
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q, %q)", f.sel, f.text)
}

// ByText returns a finder that matches elements of sel with exact text.
func ByText(sel, text string) Finder {
	return &textFinder{sel: sel, text: text}
}

// withinFinder scopes a selector to the subtrees of another finder's matches.
type withinFinder struct {
	of  Finder
	sel string
}

func (f *withinFinder) Evaluate(doc dom.Document) []dom.Element {
	var out []dom.Element
	seen := make(map[dom.Element]bool)
	for _, ancestor := range f.of.Evaluate(doc) {
		found, err := ancestor.QuerySelectorAll(f.sel)
		if err != nil {
			continue
		}
		for _, el := range found {
			if !seen[el] {
				seen[el] = true
				out = append(out, el)
			}
		}
	}
	return out
}

func (f *withinFinder) Description() string {
	return fmt.Sprintf("Within(of: %s, matching: %q)", f.of.Description(), f.sel)
}

// Within returns a finder that matches sel inside the matches of of.
func Within(of Finder, sel string) Finder {
	return &withinFinder{of: of, sel: sel}
}
