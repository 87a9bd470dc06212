package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tranvictor/activity/accounts"
	"github.com/tranvictor/activity/config"
	"github.com/tranvictor/activity/logger"
	"github.com/tranvictor/activity/networks"
	"github.com/tranvictor/activity/util/explorers"
)

// loadConfig resolves configuration, sets up logging and selects the
// network and account every command works with.
func loadConfig(cmd *cobra.Command, args []string) (err error) {
	cfg, err = config.Load(v, config.HomeDir())
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	if err = logger.Init(cfg.LogLevel, cfg.LogJSON); err != nil {
		return err
	}

	n := networks.SetNetwork(cfg.Network)
	logger.Debug("using network",
		zap.String("network", n.GetName()),
		zap.String("api", n.GetAPIBase()),
	)

	if cfg.Account == "" {
		return nil
	}
	book, err := accounts.LoadBook(accounts.BookPath())
	if err != nil {
		return err
	}
	acc, err := book.Find(cfg.Account)
	if err != nil {
		return err
	}
	accounts.Selected.Set(acc)
	return nil
}

// newExplorer prefers the network's own API key variable, so custom
// networks served by another Subscan account can carry their own key.
func newExplorer(n networks.Network) explorers.BlockExplorer {
	key := cfg.SubscanAPIKey
	if name := n.GetBlockExplorerAPIKeyVariableName(); name != config.SubscanAPIKeyVar {
		if own := strings.TrimSpace(os.Getenv(name)); own != "" {
			key = own
		}
	}
	return explorers.NewSubscanExplorer(n.GetAPIBase(), key, cfg.Timeout)
}
