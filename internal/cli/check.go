package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/runnerr0/idcheck/internal/catalog"
	"github.com/runnerr0/idcheck/internal/config"
	"github.com/runnerr0/idcheck/internal/dataset"
	"github.com/runnerr0/idcheck/internal/session"
)

// batch is one raw query plus the mode it should be parsed with.
type batch struct {
	input string
	mode  session.Mode
}

// Execute implements the go-flags Commander interface for CheckCommand.
func (c *CheckCommand) Execute(args []string) error {
	cfg, err := resolveConfig(c.globals)
	if err != nil {
		return err
	}
	if c.LookupURL == "" {
		c.LookupURL = cfg.Output.LookupURL
	}
	if c.Dataset == "" {
		c.Dataset = cfg.Dataset.Path
	}
	c.maxRows = cfg.Output.MaxRows

	cat, err := c.loadCatalog(cfg)
	if err != nil {
		return err
	}

	return c.executeWithCatalog(cat, args)
}

// loadCatalog builds the catalogue from the --dataset snapshot file when
// given, otherwise from the local cache.
func (c *CheckCommand) loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if c.Dataset != "" {
		d, err := dataset.LoadFile(c.Dataset)
		if err != nil {
			return nil, fmt.Errorf("load dataset: %w", err)
		}
		return d.Catalog()
	}

	store, db, _, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	defer store.Close()

	d, err := store.LoadDataset(context.Background())
	if err != nil {
		if errors.Is(err, dataset.ErrNoSnapshot) {
			return nil, fmt.Errorf("no dataset available: run 'idcheck import' first or pass --dataset")
		}
		return nil, fmt.Errorf("load cached dataset: %w", err)
	}
	return d.Catalog()
}

// executeWithCatalog runs the check against a provided catalogue (used by tests).
func (c *CheckCommand) executeWithCatalog(cat *catalog.Catalog, args []string) error {
	batches, err := c.collectBatches(args)
	if err != nil {
		return err
	}
	if len(batches) == 0 {
		return fmt.Errorf("no input: pass identifiers as arguments, --input, --file, or on stdin")
	}

	sess := session.New(cat)

	var all []session.Result
	for _, b := range batches {
		results, err := sess.Search(b.input, b.mode)
		if err != nil {
			if errors.Is(err, session.ErrEmptyInput) {
				fmt.Fprintln(os.Stderr, "Warning: input contained no valid identifiers, skipping.")
				continue
			}
			return err
		}
		all = append(all, results...)
	}

	if len(all) == 0 {
		return session.ErrEmptyInput
	}

	stats := sess.Stats()
	if c.globals != nil && c.globals.JSON {
		return c.printJSON(all, stats)
	}
	return c.printHuman(all, stats)
}

// collectBatches assembles query batches from flags, positional args, and
// stdin (when nothing else was provided and stdin is not a terminal).
func (c *CheckCommand) collectBatches(args []string) ([]batch, error) {
	mode := session.Single
	if c.Bulk {
		mode = session.Bulk
	}

	var batches []batch
	for _, in := range c.Input {
		batches = append(batches, batch{input: in, mode: mode})
	}

	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return nil, fmt.Errorf("read input file: %w", err)
		}
		batches = append(batches, batch{input: string(data), mode: session.Bulk})
	}

	if len(args) > 0 {
		m := mode
		if len(args) > 1 {
			m = session.Bulk
		}
		batches = append(batches, batch{input: strings.Join(args, "\n"), mode: m})
	}

	if len(batches) == 0 {
		if info, err := os.Stdin.Stat(); err == nil && info.Mode()&os.ModeCharDevice == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			if len(data) > 0 {
				batches = append(batches, batch{input: string(data), mode: session.Bulk})
			}
		}
	}

	return batches, nil
}

func (c *CheckCommand) printHuman(results []session.Result, stats session.Stats) error {
	truncated := 0
	if c.maxRows > 0 && len(results) > c.maxRows {
		truncated = len(results) - c.maxRows
		results = results[:c.maxRows]
	}

	for _, r := range results {
		status := "not found"
		if r.Found {
			status = "found"
		}
		line := fmt.Sprintf("%-12d %s", r.ID, status)
		if c.LookupURL != "" {
			line += "   " + fmt.Sprintf(c.LookupURL, r.ID)
		}
		fmt.Println(line)
	}
	if truncated > 0 {
		fmt.Printf("... and %s more\n", formatNumber(int64(truncated)))
	}

	fmt.Println()
	fmt.Printf("Found: %s · Not found: %s · Catalogue size: %s\n",
		formatNumber(int64(stats.FoundCount)),
		formatNumber(int64(stats.NotFoundCount)),
		formatNumber(int64(stats.TotalCount)),
	)
	return nil
}

type jsonCheckResult struct {
	ID        int64  `json:"id"`
	Found     bool   `json:"found"`
	LookupURL string `json:"lookup_url,omitempty"`
}

type jsonCheckOutput struct {
	Results []jsonCheckResult `json:"results"`
	Stats   session.Stats     `json:"stats"`
}

func (c *CheckCommand) printJSON(results []session.Result, stats session.Stats) error {
	out := jsonCheckOutput{
		Results: make([]jsonCheckResult, len(results)),
		Stats:   stats,
	}

	for i, r := range results {
		out.Results[i] = jsonCheckResult{ID: r.ID, Found: r.Found}
		if c.LookupURL != "" {
			out.Results[i].LookupURL = fmt.Sprintf(c.LookupURL, r.ID)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
