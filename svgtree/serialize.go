package svgtree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Write serializes the document to w, with no XML declaration. Namespace
// declarations for every URI still used in the tree are emitted on the root
// element, reusing the prefixes captured at parse time; bindings the passes
// made obsolete (such as xlink after the cross-reference fixup) are dropped.
func (d *Document) Write(w io.Writer) error {
	if d.Root == nil {
		return errNoRoot
	}
	prefixes, decls := d.namespacePrefixes()
	var b strings.Builder
	writeElement(&b, d.Root, prefixes, decls)
	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the serialized document.
func (d *Document) String() (string, error) {
	var b strings.Builder
	if err := d.Write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// namespacePrefixes maps every namespace URI used in the tree to a prefix,
// preferring the captured bindings and inventing ns0, ns1, ... otherwise, and
// returns the matching xmlns declarations for the root in first-use order.
func (d *Document) namespacePrefixes() (map[string]string, []Attr) {
	captured := make(map[string]string, len(d.Namespaces))
	for prefix, uri := range d.Namespaces {
		// two prefixes may bind one URI; prefer the default, then the
		// lexically first, so output stays deterministic
		if old, ok := captured[uri]; !ok || prefix < old {
			captured[uri] = prefix
		}
	}
	prefixes := map[string]string{}
	var order []string
	invented := 0
	claim := func(uri string) {
		if uri == "" {
			return
		}
		if _, ok := prefixes[uri]; ok {
			return
		}
		prefix, ok := captured[uri]
		if !ok {
			prefix = fmt.Sprintf("ns%d", invented)
			invented++
		}
		prefixes[uri] = prefix
		order = append(order, uri)
	}
	d.Root.Walk(func(el *Element) {
		claim(el.Name.Space)
		for _, a := range el.Attrs {
			claim(a.Name.Space)
		}
	})
	decls := make([]Attr, 0, len(order))
	for _, uri := range order {
		name := xml.Name{Local: "xmlns"}
		if prefix := prefixes[uri]; prefix != "" {
			name = xml.Name{Space: "xmlns", Local: prefix}
		}
		decls = append(decls, Attr{Name: name, Value: uri})
	}
	return prefixes, decls
}

func writeElement(b *strings.Builder, el *Element, prefixes map[string]string, decls []Attr) {
	b.WriteByte('<')
	b.WriteString(qname(el.Name, prefixes))
	for _, a := range decls {
		writeAttr(b, a, prefixes)
	}
	for _, a := range el.Attrs {
		writeAttr(b, a, prefixes)
	}
	if el.Text == "" && len(el.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	escapeInto(b, el.Text)
	for _, c := range el.Children {
		writeElement(b, c, prefixes, nil)
		escapeInto(b, c.Tail)
	}
	b.WriteString("</")
	b.WriteString(qname(el.Name, prefixes))
	b.WriteByte('>')
}

func writeAttr(b *strings.Builder, a Attr, prefixes map[string]string) {
	b.WriteByte(' ')
	b.WriteString(qname(a.Name, prefixes))
	b.WriteString(`="`)
	escapeInto(b, a.Value)
	b.WriteByte('"')
}

// qname renders a name under the prefix assigned to its namespace. Names in
// the default namespace and unprefixed names render bare.
func qname(name xml.Name, prefixes map[string]string) string {
	switch {
	case name.Space == "":
		return name.Local
	case name.Space == "xmlns":
		return "xmlns:" + name.Local
	}
	if prefix := prefixes[name.Space]; prefix != "" {
		return prefix + ":" + name.Local
	}
	return name.Local
}

func escapeInto(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	xml.EscapeText(b, []byte(s)) // writes to a Builder cannot fail
}
