package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tranvictor/activity/config"
)

func AddCommonFlags(c *cobra.Command) {
	c.PersistentFlags().
		StringP("network", "k", "polkadot", "Network to show activity on. Anything containing \"kusa\", \"west\" or \"pase\" selects that coretime chain, see \"activity network list\" for the rest.")
	c.PersistentFlags().
		StringP("account", "a", "", "Account to show. It can be an SS58 address, a 0x prefixed public key or a hint to look it up in the account book.")
	c.PersistentFlags().
		String("api-key", "", "Subscan API key. Defaults to $"+config.SubscanAPIKeyVar+".")
	c.PersistentFlags().
		Duration("timeout", 0, "Timeout of each Subscan request, 0 means none.")
	c.PersistentFlags().
		String("log-level", "warn", "Log level of diagnostics written to stderr: debug, info, warn or error.")
	c.PersistentFlags().
		Bool("log-json", false, "Write diagnostics as json.")

	bind := map[string]string{
		config.KeyNetwork:       "network",
		config.KeyAccount:       "account",
		config.KeySubscanAPIKey: "api-key",
		config.KeyTimeout:       "timeout",
		config.KeyLogLevel:      "log-level",
		config.KeyLogJSON:       "log-json",
	}
	bindFlags(c.PersistentFlags(), bind)
}

// bindFlags binds each config key to the flag named by bind[key] so flags
// take priority over env and config file values.
func bindFlags(fs *pflag.FlagSet, bind map[string]string) {
	for key, flag := range bind {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}
