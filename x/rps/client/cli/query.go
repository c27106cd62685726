package cli

import (
	"encoding/json"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"rpschain/x/rps/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the rps module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(getSettingsCmd())
	return cmd
}

func getSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Shows the protocol settings (timeouts and fee rate)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.SettingsKey.Bytes(), types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return clientCtx.PrintString("settings not initialized\n")
			}

			// stored as JSON by the keeper's collections codec
			var s types.Settings
			if err := json.Unmarshal(bz, &s); err != nil {
				return err
			}
			out, _ := json.MarshalIndent(s, "", "  ")
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
