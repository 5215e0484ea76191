// Package svgstyle maps the closed set of inline style values emitted by the
// plot renderer to CSS class names, and renders the matching stylesheet.
//
// The renderer emits no semantic classes, only literal presentation values,
// so the vocabulary is keyed by those literals. It is a closed world: a value
// outside the tables is an unsupported input, not something to guess at.
package svgstyle

import (
	"fmt"
	"strings"
)

// UnknownStyleError reports a style declaration absent from the vocabulary.
type UnknownStyleError struct {
	Attr, Value string
}

func (e UnknownStyleError) Error() string {
	return fmt.Sprintf("svgstyle: no class for %q: %q", e.Attr, e.Value)
}

type (
	// rule maps one literal attribute value to its class name.
	rule struct {
		Value, Class string
	}

	// family groups the rules of one presentation attribute.
	family struct {
		Attr  string
		Rules []rule
	}
)

// vocabulary is the single declaration both Classify and Stylesheet derive
// from. Families and rules keep their declared order so the stylesheet is
// deterministic.
var vocabulary = []family{
	{"fill", []rule{
		{"none", "no-fill"},
		{"#ffffff", "bg"},
	}},
	{"stroke", []rule{
		{"#ffffff", "primary"},
		{"#000000", "primary-text"},
		{"#cccccc", "secondary"},

		// default matplotlib color cycle
		{"#1f77b4", "blue"},
		{"#ff7f0e", "orange"},
		{"#2ca02c", "green"},
		{"#d62728", "red"},
		{"#9467bd", "purple"},
		{"#8c564b", "brown"},
		{"#e377c2", "pink"},
		{"#7f7f7f", "grey"},
		{"#bcbd22", "olive"},
		{"#17becf", "cyan"},
	}},
	{"stroke-width", []rule{
		{"0.8", "thin"},
		{"1.5", "thick"},
	}},
	{"stroke-linejoin", []rule{
		{"round", "rounded"},
		{"miter", "miter"},
	}},
	{"stroke-linecap", []rule{
		{"butt", "butt"},
		{"square", "square"},
	}},
	{"font", []rule{
		{"10px 'sans-serif'", "regular"},
	}},
	{"text-anchor", []rule{
		{"start", "left-align"},
		{"middle", "center-align"},
		{"end", "right-align"},
	}},
}

// globalDefaults apply to every classified element; the renderer relies on
// them instead of emitting the attributes explicitly.
var globalDefaults = [...][2]string{
	{"stroke-linecap", "butt"},
	{"stroke-linejoin", "round"},
}

// textDefaults describe the baseline look of text elements, rendered as the
// single catch-all .text rule.
var textDefaults = [...][2]string{
	{"stroke", "none"},
	{"fill", "#000000"},
}

// classes is the flat (attribute, value) lookup derived from vocabulary.
var classes = map[string]map[string]string{}

func init() {
	for _, f := range vocabulary {
		m := make(map[string]string, len(f.Rules))
		for _, r := range f.Rules {
			m[r.Value] = r.Class
		}
		classes[f.Attr] = m
	}
}

func lookup(attr, value string) (string, error) {
	if class, ok := classes[attr][value]; ok {
		return class, nil
	}
	return "", UnknownStyleError{Attr: attr, Value: value}
}

// Classify resolves an inline style attribute to a space-joined class list.
// Classes for the global defaults come first, then one class per declaration
// in input order. The empty string classifies to the default classes alone.
func Classify(style string) (string, error) {
	var out []string
	for _, d := range globalDefaults {
		class, err := lookup(d[0], d[1])
		if err != nil {
			return "", err
		}
		out = append(out, class)
	}
	if style = strings.TrimSpace(style); style != "" {
		for _, decl := range strings.Split(style, ";") {
			attr, value, ok := strings.Cut(decl, ":")
			if !ok {
				return "", UnknownStyleError{Attr: strings.TrimSpace(decl)}
			}
			class, err := lookup(strings.TrimSpace(attr), strings.TrimSpace(value))
			if err != nil {
				return "", err
			}
			out = append(out, class)
		}
	}
	return strings.Join(out, " "), nil
}

// Stylesheet renders one ".class { attr: value; }" rule per vocabulary entry,
// families in declared order, plus the .text rule. There are no separators
// between rules; the output is meant to be compact, and it is byte-identical
// across calls.
func Stylesheet() string {
	var b strings.Builder
	for _, f := range vocabulary {
		for _, r := range f.Rules {
			fmt.Fprintf(&b, ".%s { %s: %s; }", r.Class, f.Attr, r.Value)
		}
	}
	pairs := make([]string, 0, len(textDefaults))
	for _, d := range textDefaults {
		pairs = append(pairs, d[0]+": "+d[1])
	}
	fmt.Fprintf(&b, ".text { %s; }", strings.Join(pairs, "; "))
	return b.String()
}
