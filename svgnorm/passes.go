// Package svgnorm rewrites renderer-emitted SVG in place. Four passes run in
// a fixed order: Classify turns inline styles into vocabulary classes, Slim
// collapses insignificant whitespace, Delegalize modernizes deprecated xlink
// cross-references and Uniquify makes identifiers safe to merge across
// documents. Normalize composes them; every failure is fatal for the run.
package svgnorm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fourpoints/mpl-svg/svgstyle"
	"github.com/fourpoints/mpl-svg/svgtree"
)

const xlinkNS = "http://www.w3.org/1999/xlink"

// fontIDPrefix marks glyph paths of text rendered as vector outlines; such
// elements carry no style attribute but still belong to the text class.
const fontIDPrefix = "DejaVuSans"

var (
	// ErrNoStylesheet reports a document without the <defs><style> element
	// the classify pass writes to.
	ErrNoStylesheet = errors.New("svgnorm: document has no defs/style element")

	// ErrResidualStyle reports a style attribute surviving classification.
	// That means an element kind was missed by the pass, not bad input.
	ErrResidualStyle = errors.New("svgnorm: style attribute left after classify")
)

// Classify replaces every inline style on path, use and text elements with
// class references, gives text-bearing elements the text class, and writes
// the vocabulary stylesheet into <defs><style>.
func Classify(doc *svgtree.Document) error {
	for _, tag := range []string{"path", "use"} {
		for _, el := range doc.FindAll(tag) {
			if err := classifyElement(el); err != nil {
				return err
			}
		}
	}
	// text drawn as vector outlines
	for _, el := range doc.FindAll("*") {
		if id, ok := el.Get("id"); ok && strings.HasPrefix(id, fontIDPrefix) {
			svgtree.AddClasses(el, "class", "text")
		}
	}
	// text drawn as text
	for _, el := range doc.FindAll("text") {
		if err := classifyElement(el); err != nil {
			return err
		}
		svgtree.AddClasses(el, "class", "text")
	}
	for _, el := range doc.FindAll("*") {
		if _, ok := el.Get("style"); ok {
			return fmt.Errorf("%w (on <%s>)", ErrResidualStyle, el.Name.Local)
		}
	}
	style := doc.StyleElement()
	if style == nil {
		return ErrNoStylesheet
	}
	style.Text = svgstyle.Stylesheet()
	return nil
}

func classifyElement(el *svgtree.Element) error {
	classes, err := svgstyle.Classify(el.Pop("style"))
	if err != nil {
		return err
	}
	svgtree.AddClasses(el, "class", classes)
	return nil
}

// Slim trims element text, drops the purely cosmetic inter-tag tails and
// collapses whitespace runs in attribute values. Slimming twice is a no-op.
func Slim(doc *svgtree.Document) {
	doc.Root.Walk(func(el *svgtree.Element) {
		el.Text = strings.TrimSpace(el.Text)
		el.Tail = ""
		for i, a := range el.Attrs {
			el.Attrs[i].Value = collapseSpace(a.Value)
		}
	})
}

// collapseSpace rewrites " a  b c " to "a b c".
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Delegalize moves xlink-namespaced attributes to their plain SVG 2 names;
// the prefixed form is deprecated.
// https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute/xlink:href
func Delegalize(doc *svgtree.Document) {
	doc.Root.Walk(func(el *svgtree.Element) {
		for i := 0; i < len(el.Attrs); i++ {
			a := el.Attrs[i]
			if a.Name.Space != xlinkNS {
				continue
			}
			el.Attrs = append(el.Attrs[:i], el.Attrs[i+1:]...)
			i--
			el.Set(a.Name.Local, a.Value)
		}
	})
}

// Uniquify rewrites every id, href and clip-path value so documents sharing a
// page cannot collide: the document uid is spliced in just before the last
// hyphen-delimited suffix of the identifier. It must run last, once all
// attribute values are final.
func Uniquify(doc *svgtree.Document) {
	for _, el := range doc.FindAll("*") {
		for _, attr := range [...]string{"id", "href", "clip-path"} {
			if v, ok := el.Get(attr); ok {
				el.Set(attr, insertUID(v, doc.UID))
			}
		}
	}
}

// insertUID splices uid into an identifier after the last "#" and before the
// last "-", keeping the recognizable suffix:
//
//	insertUID("hello-world", "what") == "hello-what-world"
//	insertUID("#hey", "world") == "#world-hey"
//	insertUID("#a-b-c", "x") == "#a-b-x-c"
//
// Underscores become hyphens first, and empty segments drop out along with
// their separators.
func insertUID(s, uid string) string {
	s = strings.ReplaceAll(s, "_", "-")

	parts := make([]string, 0, 7)
	if i := strings.LastIndex(s, "#"); i >= 0 {
		parts = append(parts, s[:i], "#")
		s = s[i+1:]
	}
	before, dash := "", ""
	if i := strings.LastIndex(s, "-"); i >= 0 {
		before, dash, s = s[:i], "-", s[i+1:]
	}
	parts = append(parts, before, dash, uid, "-", s)

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}

// Normalize runs the four passes in their required order. The first failing
// pass aborts the run; the document is then half-rewritten and must be
// discarded, never serialized.
func Normalize(doc *svgtree.Document) error {
	if err := Classify(doc); err != nil {
		return err
	}
	Slim(doc)
	Delegalize(doc)
	Uniquify(doc)
	return nil
}
