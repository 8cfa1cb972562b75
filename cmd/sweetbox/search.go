package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"sweetbox/internal/filter"
	"sweetbox/internal/model"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Filter the catalogue interactively",
	Long: `Filter the catalogue interactively, one edit per input line.

A plain line replaces the search text. Text and price edits are applied
once no further edit arrives for the debounce window, so pasted or rapidly
typed lines produce a single result. Commands start with a colon:

  :vegan, :sugar-free, :lactose-free   toggle a dietary filter at once
  :min <price>, :max <price>           set a price bound (empty clears it)
  :reset                               clear every filter at once

Examples:
  sweetbox search
  printf 'choc\n:vegan\n' | sweetbox search`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// syncWriter serialises result blocks; debounced results arrive on a timer
// goroutine.
type syncWriter struct {
	mu     sync.Mutex
	out    io.Writer
	suffix string
}

func (w *syncWriter) results(products []model.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fmt.Fprintf(w.out, "-- %d product(s)\n", len(products))
	printProducts(w.out, products, w.suffix)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := openCLI(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	products, err := a.products.List(commandContext(cmd), model.DefaultFilterCriteria())
	if err != nil {
		return err
	}

	w := &syncWriter{out: cmd.OutOrStdout(), suffix: a.cfg.Shop.CurrencySuffix}
	w.results(products)

	ctrl := filter.NewController(products, w.results)
	defer ctrl.Stop()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if err := searchEdit(ctrl, scanner.Text()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	// Input ended inside the window: show the last edit rather than drop it.
	ctrl.Flush()
	return nil
}

func searchEdit(ctrl *filter.Controller, line string) error {
	if !strings.HasPrefix(line, ":") {
		ctrl.SearchInput(strings.TrimSpace(line))
		return nil
	}

	command, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case model.TagVegan, model.TagSugarFree, model.TagLactoseFree:
		ctrl.ToggleFlag(command, !ctrl.Criteria().HasFlag(command))
	case "min":
		ctrl.PriceMinInput(arg)
	case "max":
		ctrl.PriceMaxInput(arg)
	case "reset":
		ctrl.Reset()
	default:
		return fmt.Errorf("unknown command %q", line)
	}
	return nil
}
