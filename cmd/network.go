package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/activity/networks"
)

var (
	NetworkConfig string
	NetworkForce  bool
)

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new Subscan backed network to the supported networks list locally",
	Long: `--config flag is supported to pass a new network config json filepath OR pass a json string. The json should be in the following format:
	{
		"name": "network_name",
		"alternative_names": ["alternative_name_1", "alternative_name_2"],
		"label": "Network Name",
		"api_base": "https://network.api.subscan.io",
		"explorer_url": "https://network.subscan.io",
		"ss58_format": 0,
		"native_token_symbol": "DOT",
		"native_token_decimal": 10,
		"block_explorer_api_key_variable_name": "SUBSCAN_API_KEY"
	}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := strings.TrimSpace(NetworkConfig)
		if config == "" {
			return fmt.Errorf("--config is required")
		}

		var content []byte
		if strings.HasPrefix(config, "{") && strings.HasSuffix(config, "}") {
			content = []byte(config)
		} else {
			// in this case, config is supposed to be a path to a json file
			jsonFile, err := os.Open(config)
			if err != nil {
				return fmt.Errorf("couldn't open the provided json file: %w", err)
			}
			defer jsonFile.Close()

			content, err = io.ReadAll(jsonFile)
			if err != nil {
				return fmt.Errorf("couldn't read the provided json file: %w", err)
			}
		}
		newNetwork, err := networks.NewNetworkFromJSON(content)
		if err != nil {
			return fmt.Errorf("the provided json is not a valid network config: %w", err)
		}

		allNames := []string{newNetwork.GetName()}
		allNames = append(allNames, newNetwork.GetAlternativeNames()...)
		for _, name := range allNames {
			if _, err := networks.GetNetwork(name); err == nil {
				if !NetworkForce {
					return fmt.Errorf("network with name %s already exists, use --force to replace it", name)
				}
				appUI.Warn("Network with name %s already exists. It will be replaced.", name)
			}
		}

		if err := networks.AddNetwork(newNetwork); err != nil {
			return fmt.Errorf("failed to add the new network: %w", err)
		}
		appUI.Success("Network %s added and saved to %s.", newNetwork.GetName(), networks.CustomNetworksDir)
		return nil
	},
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		current := networks.CurrentNetwork()
		rows := [][]string{}
		for i, n := range networks.GetSupportedNetworks() {
			marker := ""
			if n.GetName() == current.GetName() {
				marker = "*"
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d%s", i+1, marker),
				n.GetName(),
				strings.Join(n.GetAlternativeNames(), ", "),
				fmt.Sprintf("%d", n.GetSS58Format()),
				n.GetNativeTokenSymbol(),
				n.GetAPIBase(),
			})
		}
		appUI.Table([]string{"#", "Name", "Aliases", "SS58", "Token", "API"}, rows)

		appUI.Info("\nIf you want to add more networks to the list, use following command:\n> activity network add")
		appUI.Info("If you want to delete a network, just delete the corresponding json file in %s.", networks.CustomNetworksDir)
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage all networks that activity supports",
	Long:  ``,
}

func init() {
	addNetworkCmd.PersistentFlags().StringVarP(&NetworkConfig, "config", "c", "", "Path to the network config json file")
	addNetworkCmd.PersistentFlags().BoolVarP(&NetworkForce, "force", "f", false, "Force adding the network even if it already exists")

	networkCmd.AddCommand(listNetworkCmd)
	networkCmd.AddCommand(addNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
