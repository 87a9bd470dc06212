// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tranvictor/activity/config"
	"github.com/tranvictor/activity/logger"
	"github.com/tranvictor/activity/ui"
)

var (
	appUI ui.UI = ui.NewTerminalUI()

	v   = viper.New()
	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the latest extrinsics of a Polkadot family coretime account",
	Long: fmt.Sprintf(`Activity shows what an account has been doing on a coretime chain: its last
ten extrinsics with their status, time, fee and a link to the block explorer.

Activity supports Polkadot, Kusama, Westend and Paseo coretime chains by default
and reads history from Subscan. More Subscan backed chains can be added with:
	> activity network add

Subscan rate limits requests without an API key. You can specify your key by
setting one of the following env vars:
	1. %s
	2. %s_SUBSCAN_API_KEY
or by putting "subscan_api_key" in %s/config.yaml.

Accounts can be given as an SS58 address of any network, a 0x prefixed public
key or a hint matching an entry added with "activity account add".`,
		config.SubscanAPIKeyVar,
		config.EnvPrefix,
		config.HomeDir(),
	),
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	AddCommonFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		appUI.Error("%s", err)
		os.Exit(1)
	}
}
