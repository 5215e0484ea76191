package svgtree

import (
	"strings"
	"testing"
)

func serialize(t *testing.T, doc *Document) string {
	t.Helper()
	got, err := doc.String()
	if err != nil {
		t.Fatalf("can't serialize document: %s", err)
	}
	return got
}

func TestRoundTrip(t *testing.T) {
	// already-compact markup serializes back to itself
	source := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="10"><defs><style type="text/css"/></defs><g id="a"><use xlink:href="#m1" x="1"/></g></svg>`
	doc := parse(t, source)
	if got := serialize(t, doc); got != source {
		t.Errorf("round trip changed the document:\ngot  %s\nwant %s", got, source)
	}
}

func TestWriteDropsUnusedNamespaces(t *testing.T) {
	source := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><g/></svg>`
	doc := parse(t, source)
	got := serialize(t, doc)
	if strings.Contains(got, "xlink") {
		t.Errorf("unused xlink binding survived: %s", got)
	}
	if !strings.Contains(got, `xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("default namespace declaration missing: %s", got)
	}
}

func TestWriteEscapes(t *testing.T) {
	doc := parse(t, `<svg><text label="say &quot;hi&quot;">a &lt; b &amp; c</text></svg>`)
	got := serialize(t, doc)
	if !strings.Contains(got, "a &lt; b &amp; c") {
		t.Errorf("text content not escaped: %s", got)
	}

	// values survive a reparse unchanged
	doc2 := parse(t, got)
	text := doc2.FindAll("text")[0]
	if text.Text != "a < b & c" {
		t.Errorf("text = %q after round trip", text.Text)
	}
	if label, _ := text.Get("label"); label != `say "hi"` {
		t.Errorf("label = %q after round trip", label)
	}
}

func TestWriteSelfCloses(t *testing.T) {
	doc := parse(t, "<svg><g></g><path></path></svg>")
	got := serialize(t, doc)
	if !strings.Contains(got, "<g/>") || !strings.Contains(got, "<path/>") {
		t.Errorf("childless empty elements not self-closed: %s", got)
	}
}

func TestWriteTextAndTails(t *testing.T) {
	doc := parse(t, "<svg><g>head<text>hello</text>tail</g></svg>")
	got := serialize(t, doc)
	want := "<svg><g>head<text>hello</text>tail</g></svg>"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
