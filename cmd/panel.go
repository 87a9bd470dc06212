package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tranvictor/activity/accounts"
	"github.com/tranvictor/activity/activity"
	"github.com/tranvictor/activity/panel"
	"github.com/tranvictor/activity/ui"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the interactive Activity panel",
	Long: `Shows the selected account's latest extrinsics and keeps them in sync while
you switch accounts and networks.

Keys:
	1-9, 0   open the row in the block explorer
	r        refresh
	n        next network
	a        next account from the account book
	esc, q   close`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		book, err := accounts.LoadBook(accounts.BookPath())
		if err != nil {
			return err
		}

		isTerm := term.IsTerminal(int(os.Stdout.Fd()))
		u := ui.NewTerminalUIWithWriter(panel.NewCRLFWriter(os.Stdout), isTerm)
		c := panel.NewController(
			u,
			panel.NewTerminalKeys(os.Stdin),
			activity.NewHistory(newExplorer),
			book,
			panel.BrowserOpener{},
		)
		return c.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(panelCmd)
}
