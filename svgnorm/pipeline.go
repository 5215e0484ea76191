package svgnorm

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fourpoints/mpl-svg/svgtree"
)

// Renderer is the external plotting collaborator: anything able to serialize
// a figure description as SVG markup. The markup must stay within the style
// vocabulary or normalization fails.
type Renderer interface {
	RenderSVG(w io.Writer) error
}

// SaveFigure renders a figure, normalizes the markup and writes it to path.
// The document is serialized fully in memory first, so a failing stage leaves
// nothing behind.
func SaveFigure(fig Renderer, path string) error {
	var buf bytes.Buffer
	if err := fig.RenderSVG(&buf); err != nil {
		return fmt.Errorf("svgnorm: render figure: %w", err)
	}
	doc, err := svgtree.Read(&buf)
	if err != nil {
		return err
	}
	return writeNormalized(doc, path)
}

// MinifyFile normalizes the SVG file at path and writes the result beside it
// with a "-min" stem suffix, returning the written path.
func MinifyFile(path string) (string, error) {
	doc, err := svgtree.ReadFile(path)
	if err != nil {
		return "", err
	}
	out := minPath(path)
	if err := writeNormalized(doc, out); err != nil {
		return "", err
	}
	return out, nil
}

func writeNormalized(doc *svgtree.Document, path string) error {
	if err := Normalize(doc); err != nil {
		return err
	}
	text, err := doc.String()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// minPath turns dir/plot.svg into dir/plot-min.svg.
func minPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-min" + ext
}
