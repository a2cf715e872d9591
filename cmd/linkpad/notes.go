package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iw2rmb/linkpad/internal/notestore"
	"github.com/iw2rmb/linkpad/span"
)

// ListCmd lists notes, optionally only those matching a query. Matching
// ignores case; without --strict a query word also matches words a few
// edits away.
type ListCmd struct {
	Query  string `name:"query" short:"q" help:"Only notes whose name or text matches"`
	Strict bool   `name:"strict" help:"Require the query as an exact substring"`
}

func (c *ListCmd) Run(s *settings) error {
	ctx := context.Background()
	store, err := openStore(ctx, s)
	if err != nil {
		return err
	}
	defer store.Close()

	notes, err := c.notes(ctx, store)
	if err != nil {
		return err
	}
	return writeList(os.Stdout, notes, time.Now())
}

func (c *ListCmd) notes(ctx context.Context, store *notestore.Store) ([]notestore.Note, error) {
	return store.Search(ctx, c.Query, c.Strict)
}

func writeList(w io.Writer, notes []notestore.Note, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE\tLINKS\tUPDATED")
	for _, n := range notes {
		links := len(span.Links(span.Annotate(n.Body)))
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			n.Name,
			humanize.Bytes(uint64(len(n.Body))),
			links,
			humanize.RelTime(n.UpdatedAt, now, "ago", "from now"),
		)
	}
	return tw.Flush()
}

type CatCmd struct {
	Name string `arg:"" help:"Note name"`
}

func (c *CatCmd) Run(s *settings) error {
	ctx := context.Background()
	store, err := openStore(ctx, s)
	if err != nil {
		return err
	}
	defer store.Close()

	note, err := store.Get(ctx, c.Name)
	if errors.Is(err, notestore.ErrNotFound) {
		return fmt.Errorf("no note called %q", c.Name)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(os.Stdout, note.Body)
	return err
}

type RmCmd struct {
	Name string `arg:"" help:"Note name"`
}

func (c *RmCmd) Run(s *settings) error {
	ctx := context.Background()
	store, err := openStore(ctx, s)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(ctx, c.Name); errors.Is(err, notestore.ErrNotFound) {
		return fmt.Errorf("no note called %q", c.Name)
	} else if err != nil {
		return err
	}
	return nil
}
