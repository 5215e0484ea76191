// Package svgtree models one SVG document as a mutable element tree, together
// with the namespace bindings declared in the markup and a per-document
// unique id. Normalization passes mutate the tree in place; cross-references
// between elements stay plain identifier strings, never pointers.
package svgtree

import (
	"encoding/xml"
	"sort"
	"strings"
)

type (
	// Attr is one attribute. Name.Space holds the namespace URI for
	// prefixed attributes and is empty otherwise.
	Attr struct {
		Name  xml.Name
		Value string
	}

	// Element is one node of the tree. Text is the character data before the
	// first child; Tail is the character data between this element's end tag
	// and the next sibling.
	Element struct {
		Name     xml.Name
		Attrs    []Attr
		Text     string
		Tail     string
		Children []*Element
	}

	// Document owns an element tree, the prefix to URI bindings captured at
	// parse time, and the unique id spliced into identifiers so documents
	// merged into one page cannot collide.
	Document struct {
		Root       *Element
		Namespaces map[string]string // prefix -> URI, "" for the default
		UID        string
	}
)

// Get returns the value of the named unprefixed attribute.
func (el *Element) Get(local string) (string, bool) {
	for _, a := range el.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Set replaces the named unprefixed attribute, appending it when absent.
func (el *Element) Set(local, value string) {
	for i, a := range el.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			el.Attrs[i].Value = value
			return
		}
	}
	el.Attrs = append(el.Attrs, Attr{Name: xml.Name{Local: local}, Value: value})
}

// Pop removes the named unprefixed attribute and returns its value, or ""
// when the element does not carry it.
func (el *Element) Pop(local string) string {
	for i, a := range el.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			el.Attrs = append(el.Attrs[:i], el.Attrs[i+1:]...)
			return a.Value
		}
	}
	return ""
}

// Walk visits el and its descendants depth-first, pre-order.
func (el *Element) Walk(visit func(*Element)) {
	visit(el)
	for _, c := range el.Children {
		c.Walk(visit)
	}
}

// FindAll returns every descendant of the root whose local tag name matches
// tag, depth-first pre-order. "*" matches every element. The walk reads the
// current tree state, so FindAll stays valid between mutating passes.
func (d *Document) FindAll(tag string) []*Element {
	var out []*Element
	for _, c := range d.Root.Children {
		c.Walk(func(el *Element) {
			if tag == "*" || el.Name.Local == tag {
				out = append(out, el)
			}
		})
	}
	return out
}

// StyleElement returns the <style> child of the root's <defs>, or nil.
func (d *Document) StyleElement() *Element {
	for _, defs := range d.Root.Children {
		if defs.Name.Local != "defs" {
			continue
		}
		for _, style := range defs.Children {
			if style.Name.Local == "style" {
				return style
			}
		}
	}
	return nil
}

// AddClasses merges class tokens into a whitespace-separated attribute,
// deduplicating and sorting so repeated classification is stable. The
// attribute is only set when the merged list is non-empty.
func AddClasses(el *Element, attr, classes string) {
	have, _ := el.Get(attr)
	merged := append(strings.Fields(have), strings.Fields(classes)...)
	sort.Strings(merged)
	out := merged[:0]
	for i, c := range merged {
		if i == 0 || c != merged[i-1] {
			out = append(out, c)
		}
	}
	if len(out) > 0 {
		el.Set(attr, strings.Join(out, " "))
	}
}
