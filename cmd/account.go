package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/activity/accounts"
	"github.com/tranvictor/activity/address"
	"github.com/tranvictor/activity/networks"
	"github.com/tranvictor/activity/util"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the account book",
	Long:  ``,
}

var addAccountCmd = &cobra.Command{
	Use:   "add address description...",
	Short: "Add an address to the account book",
	Long: `The address can be an SS58 address of any network or a 0x prefixed public
key. Adding an address whose key is already in the book replaces its
description.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := accounts.LoadBook(accounts.BookPath())
		if err != nil {
			return err
		}
		acc := accounts.AccDesc{Address: args[0], Desc: strings.Join(args[1:], " ")}
		if err := book.Add(acc); err != nil {
			return err
		}
		appUI.Success("Added %s to %s.", acc, book.Path())
		return nil
	},
}

var listAccountCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every account in the book, encoded for the selected network",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := accounts.LoadBook(accounts.BookPath())
		if err != nil {
			return err
		}
		n := networks.CurrentNetwork()
		rows := [][]string{}
		for i, acc := range book.Accounts() {
			encoded, ok := address.Derive(acc.Address, n.GetSS58Format())
			if !ok {
				encoded = util.Placeholder
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				acc.Desc,
				encoded,
			})
		}
		if len(rows) == 0 {
			appUI.Info("The account book is empty. Add one with:\n> activity account add <address> <description>")
			return nil
		}
		appUI.Table([]string{"#", "Description", "Address on " + n.GetLabel()}, rows)
		return nil
	},
}

func init() {
	accountCmd.AddCommand(addAccountCmd)
	accountCmd.AddCommand(listAccountCmd)
	rootCmd.AddCommand(accountCmd)
}
