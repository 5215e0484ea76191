package svgtree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

var errNoRoot = errors.New("svgtree: document has no root element")

// Read parses one SVG document from stream. Namespace declarations are lifted
// off the elements into Document.Namespaces, and the document is stamped with
// a fresh unique id. Comments, directives and processing instructions are
// dropped: only the element tree matters to normalization.
func Read(stream io.Reader) (*Document, error) {
	doc := &Document{Namespaces: map[string]string{}, UID: makeUID()}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var stack []*Element
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("svgtree: malformed document: %w", err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			el := &Element{Name: se.Name}
			for _, a := range se.Attr {
				if prefix, uri, ok := xmlns(a); ok {
					doc.Namespaces[prefix] = uri
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Name: a.Name, Value: a.Value})
			}
			if len(stack) == 0 {
				if doc.Root != nil {
					return nil, errors.New("svgtree: malformed document: multiple root elements")
				}
				doc.Root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			if n := len(parent.Children); n > 0 {
				parent.Children[n-1].Tail += string(se)
			} else {
				parent.Text += string(se)
			}
		}
	}
	if doc.Root == nil {
		return nil, errNoRoot
	}
	return doc, nil
}

// ReadFile parses the SVG document in the named file.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// xmlns reports whether a is a namespace declaration, returning the bound
// prefix ("" for the default namespace) and URI.
func xmlns(a xml.Attr) (prefix, uri string, ok bool) {
	switch {
	case a.Name.Space == "xmlns":
		return a.Name.Local, a.Value, true
	case a.Name.Space == "" && a.Name.Local == "xmlns":
		return "", a.Value, true
	}
	return "", "", false
}
