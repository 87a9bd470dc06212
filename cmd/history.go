package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tranvictor/activity/accounts"
	"github.com/tranvictor/activity/activity"
	"github.com/tranvictor/activity/networks"
	"github.com/tranvictor/activity/panel"
	"github.com/tranvictor/activity/util"
)

var HistoryJSON bool

type historyRow struct {
	Transaction string `json:"transaction"`
	Status      string `json:"status"`
	Time        string `json:"time"`
	Fee         string `json:"fee"`
	Hash        string `json:"hash"`
	Explorer    string `json:"explorer"`
}

type historyOutput struct {
	Network string       `json:"network"`
	Address string       `json:"address"`
	Items   []historyRow `json:"items"`
}

var historyCmd = &cobra.Command{
	Use:   "history [account]",
	Short: "Print the latest extrinsics of an account once",
	Long: `Prints the same History section as the panel without waiting for keys.
The account argument overrides --account.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			book, err := accounts.LoadBook(accounts.BookPath())
			if err != nil {
				return err
			}
			acc, err := book.Find(args[0])
			if err != nil {
				return err
			}
			accounts.Selected.Set(acc)
		}

		n := networks.CurrentNetwork()
		acc := accounts.Selected.Get()
		if acc.IsZero() {
			return fmt.Errorf("no account selected, pass one as an argument or with --account")
		}

		h := activity.NewHistory(newExplorer)
		in := activity.NewInputs(true, acc.Address, n)
		if in.Address == "" {
			return fmt.Errorf("%s can't be encoded for %s", acc.Address, n.GetLabel())
		}

		if HistoryJSON {
			h.Update(cmd.Context(), in)
			h.Wait()
			return printHistoryJSON(cmd, h.Snapshot())
		}

		stop := appUI.Spinner(fmt.Sprintf("Fetching activity of %s on %s...", util.Short(in.Address, util.DefaultShortLen), n.GetLabel()))
		h.Update(cmd.Context(), in)
		h.Wait()
		stop()

		panel.Render(appUI, panel.View{
			Network: n,
			Account: acc,
			History: h.Snapshot(),
			Now:     time.Now(),
		})
		return nil
	},
}

func printHistoryJSON(cmd *cobra.Command, snap activity.Snapshot) error {
	out := historyOutput{
		Network: snap.Network.GetName(),
		Address: snap.Address,
		Items:   []historyRow{},
	}
	for _, r := range util.NewRows(snap.Items, snap.Network, time.Now()) {
		out.Items = append(out.Items, historyRow{
			Transaction: r.Label,
			Status:      r.Status.String(),
			Time:        r.When,
			Fee:         r.Fee,
			Hash:        r.Hash,
			Explorer:    r.URL,
		})
	}
	content, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(content))
	return nil
}

func init() {
	historyCmd.Flags().BoolVar(&HistoryJSON, "json", false, "Print the rows as json")
	rootCmd.AddCommand(historyCmd)
}
