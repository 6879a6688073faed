package cmd

import (
	"encoding/json"
	"os"

	"github.com/epishuffle/epishuffle/catalog"
	"github.com/epishuffle/epishuffle/color"
	"github.com/epishuffle/epishuffle/icon"
	"github.com/epishuffle/epishuffle/provider"
	"github.com/epishuffle/epishuffle/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showsCmd)
	showsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	showsCmd.SetOut(os.Stdout)
}

// showsCmd lists every loaded show.
var showsCmd = &cobra.Command{
	Use:     "shows",
	Aliases: []string{"ls", "list"},
	Short:   "List the shows available for picking",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := provider.Load()
		handleErr(err)

		shows := c.Shows()
		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(shows))
			return
		}

		for _, show := range shows {
			cmd.Printf("%s %s %s\n",
				icon.Get(icon.Show),
				style.Fg(color.Purple)(show.Key),
				style.Faint(show.Title),
			)
		}
	},
}

// completionShowKeys completes the first argument with show keys.
func completionShowKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	c, err := provider.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return lo.Map(c.Shows(), func(s catalog.ShowRef, _ int) string {
		return s.Key
	}), cobra.ShellCompDirectiveNoFileComp
}
