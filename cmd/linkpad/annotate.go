package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iw2rmb/linkpad/span"
)

// AnnotateCmd prints one line per span: kind, start, end and covered text.
// Offsets are rune offsets.
type AnnotateCmd struct {
	File  string `arg:"" optional:"" help:"Text file to annotate (default stdin)" type:"existingfile"`
	Links bool   `name:"links" help:"Print link spans only"`
}

func (c *AnnotateCmd) Run() error {
	var (
		data []byte
		err  error
	)
	if c.File == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(c.File)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return writeSpans(os.Stdout, string(data), c.Links)
}

func writeSpans(w io.Writer, text string, linksOnly bool) error {
	spans := span.Annotate(text)
	if linksOnly {
		spans = span.Links(spans)
	}
	for _, sp := range spans {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", sp.Kind, sp.Start, sp.End, quoteLines(sp.Text(text))); err != nil {
			return err
		}
	}
	return nil
}

// quoteLines keeps multi-line fence bodies on one output line.
func quoteLines(s string) string {
	if !strings.ContainsAny(s, "\n\t") {
		return s
	}
	return strconv.Quote(s)
}
