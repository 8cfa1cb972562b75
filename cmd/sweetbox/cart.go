package main

import (
	"fmt"
	"io"
	"strconv"

	"sweetbox/internal/service"
	"sweetbox/internal/storage"
	"sweetbox/internal/view"

	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and change the local cart",
	Long: `Show and change the local cart.

The cart lives in the configured storage backend under a single local
namespace, so it survives between runs. Line numbers are the ones printed by
"sweetbox cart show".

Examples:
  sweetbox cart add 1
  sweetbox cart add-named --name "Choco Cake" --price "450 ₴"
  sweetbox cart inc 1
  sweetbox cart remove 2`,
	Args: cobra.NoArgs,
	RunE: runCartShow,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the cart",
	Args:  cobra.NoArgs,
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a catalogue product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartAddNamedCmd = &cobra.Command{
	Use:   "add-named",
	Short: "Add an item by name and display price",
	Args:  cobra.NoArgs,
	RunE:  runCartAddNamed,
}

var cartIncCmd = &cobra.Command{
	Use:   "inc <line>",
	Short: "Increase the quantity of a cart line by one",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartLine(view.ActionInc),
}

var cartDecCmd = &cobra.Command{
	Use:   "dec <line>",
	Short: "Decrease the quantity of a cart line by one, removing it at zero",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartLine(view.ActionDec),
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <line>",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartLine(view.ActionRemove),
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE:  runCartClear,
}

var (
	cartItemName  string
	cartItemPrice string
)

func init() {
	cartAddNamedCmd.Flags().StringVar(&cartItemName, "name", "", "item name")
	cartAddNamedCmd.Flags().StringVar(&cartItemPrice, "price", "", "display price, e.g. \"450 ₴\"")
	cartAddNamedCmd.MarkFlagRequired("name")
	cartAddNamedCmd.MarkFlagRequired("price")

	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartAddNamedCmd, cartIncCmd, cartDecCmd, cartRemoveCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}

func runCartShow(cmd *cobra.Command, args []string) error {
	a, err := openCLI(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.carts.Get(commandContext(cmd), storage.LocalNamespace)
	if err != nil {
		return err
	}
	printCart(cmd.OutOrStdout(), result, a.cfg.Shop.CurrencySuffix)
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}
	return applyCartAction(cmd, view.Action{Name: view.ActionAdd, ProductID: id})
}

func runCartAddNamed(cmd *cobra.Command, args []string) error {
	return applyCartAction(cmd, view.Action{Name: view.ActionAddNamed, ItemName: cartItemName, ItemPrice: cartItemPrice})
}

func runCartClear(cmd *cobra.Command, args []string) error {
	return applyCartAction(cmd, view.Action{Name: view.ActionClear})
}

// runCartLine handles the commands addressing a cart line by its 1-based
// number.
func runCartLine(action string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		line, err := strconv.Atoi(args[0])
		if err != nil || line < 1 {
			return fmt.Errorf("invalid line number %q", args[0])
		}
		return applyCartAction(cmd, view.Action{Name: action, Index: line - 1})
	}
}

func applyCartAction(cmd *cobra.Command, action view.Action) error {
	a, err := openCLI(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.carts.Apply(commandContext(cmd), storage.LocalNamespace, action, view.ModalState{})
	if err != nil {
		return err
	}
	printCart(cmd.OutOrStdout(), result, a.cfg.Shop.CurrencySuffix)
	return nil
}

func printCart(out io.Writer, result *service.CartResult, suffix string) {
	if result.Notice != "" {
		fmt.Fprintf(out, "warning: %s\n", result.Notice)
	}

	if result.State.Empty() {
		fmt.Fprintln(out, "Your cart is empty.")
		return
	}

	for i, e := range result.State.Entries {
		fmt.Fprintf(out, "%2d. %-24s %10s x %-3d %10s\n",
			i+1, e.Name, e.Price, e.Quantity, view.FormatPrice(float64(view.LineTotal(e)), suffix))
	}
	fmt.Fprintf(out, "Total: %s\n", view.FormatPrice(float64(view.GrandTotal(result.State.Entries)), suffix))
	fmt.Fprintf(out, "Items: %d\n", result.State.Count)
}
