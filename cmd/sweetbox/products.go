package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"sweetbox/internal/config"
	"sweetbox/internal/filter"
	"sweetbox/internal/model"
	"sweetbox/internal/view"

	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List and filter the catalogue",
	Long: `List the catalogue, optionally filtered.

All filters combine: a product is listed only when it matches the search
text, carries every selected dietary tag and is priced within the range.

Examples:
  sweetbox products
  sweetbox products --q cake --vegan
  sweetbox products --min 100 --max 300`,
	Args: cobra.NoArgs,
	RunE: runProducts,
}

var (
	productsQuery       string
	productsVegan       bool
	productsSugarFree   bool
	productsLactoseFree bool
	productsMin         string
	productsMax         string
)

func init() {
	productsCmd.Flags().StringVar(&productsQuery, "q", "", "search text matched against product names")
	productsCmd.Flags().BoolVar(&productsVegan, "vegan", false, "only vegan products")
	productsCmd.Flags().BoolVar(&productsSugarFree, "sugar-free", false, "only sugar-free products")
	productsCmd.Flags().BoolVar(&productsLactoseFree, "lactose-free", false, "only lactose-free products")
	productsCmd.Flags().StringVar(&productsMin, "min", "", "minimum price")
	productsCmd.Flags().StringVar(&productsMax, "max", "", "maximum price")
	rootCmd.AddCommand(productsCmd)
}

// productsCriteria maps the flags onto the filter panel's form fields so the
// CLI parses prices exactly like the storefront.
func productsCriteria() model.FilterCriteria {
	v := url.Values{}
	v.Set(filter.FieldSearch, productsQuery)
	v.Set(filter.FieldPriceMin, productsMin)
	v.Set(filter.FieldPriceMax, productsMax)
	if productsVegan {
		v.Set(model.TagVegan, "on")
	}
	if productsSugarFree {
		v.Set(model.TagSugarFree, "on")
	}
	if productsLactoseFree {
		v.Set(model.TagLactoseFree, "on")
	}
	return filter.ParseCriteria(v)
}

func runProducts(cmd *cobra.Command, args []string) error {
	a, err := openCLI(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	products, err := a.products.List(commandContext(cmd), productsCriteria())
	if err != nil {
		return err
	}

	printProducts(cmd.OutOrStdout(), products, a.cfg.Shop.CurrencySuffix)
	return nil
}

func printProducts(out io.Writer, products []model.Product, suffix string) {
	if len(products) == 0 {
		fmt.Fprintln(out, "No products match the filters.")
		return
	}

	for _, p := range products {
		line := fmt.Sprintf("%3d  %-24s %10s", p.ID, p.Name, view.FormatPrice(p.Price, suffix))
		if len(p.Tags) > 0 {
			line += "  " + strings.Join(p.Tags, ", ")
		}
		if p.Badge != "" {
			line += "  [" + p.Badge + "]"
		}
		fmt.Fprintln(out, line)
	}
}

// openCLI builds the storefront components for a shopper command. Logs go to
// stderr so they never mix with command output.
func openCLI(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cliLogLevel)
	if err != nil {
		return nil, err
	}
	logger := config.NewFileLogger(cfg.Logger, os.Stderr)
	return newApp(commandContext(cmd), cfg, logger)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
