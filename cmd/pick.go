package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/epishuffle/epishuffle/catalog"
	"github.com/epishuffle/epishuffle/color"
	"github.com/epishuffle/epishuffle/icon"
	"github.com/epishuffle/epishuffle/key"
	"github.com/epishuffle/epishuffle/provider"
	"github.com/epishuffle/epishuffle/style"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().BoolP("json", "j", false, "Format the selection as JSON")
	pickCmd.Flags().IntP("count", "n", 1, "Number of independent picks")
	pickCmd.SetOut(os.Stdout)
}

func errUnknownShow(c *catalog.Catalog, show string) error {
	msg := fmt.Sprintf("no such show %s", style.Fg(color.Red)(show))
	if closest, ok := c.Suggest(show).Get(); ok {
		msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(closest))
	}
	return errors.New(msg)
}

// pickCmd prints a random episode of a show.
var pickCmd = &cobra.Command{
	Use:               "pick [show]",
	Short:             "Pick a random episode of a show",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionShowKeys,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			count  = lo.Must(cmd.Flags().GetInt("count"))
		)

		if count < 1 {
			handleErr(fmt.Errorf("invalid count %d, must be at least 1", count))
		}

		c, err := provider.Load()
		handleErr(err)

		var picks []catalog.Selection
		for i := 0; i < count; i++ {
			picked, err := c.PickRandomEpisode(args[0])
			handleErr(err)

			sel, ok := picked.Get()
			if !ok {
				handleErr(errUnknownShow(c, args[0]))
			}
			picks = append(picks, sel)
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			if count == 1 {
				handleErr(encoder.Encode(picks[0]))
			} else {
				handleErr(encoder.Encode(picks))
			}
			return
		}

		for i, sel := range picks {
			cmd.Print(renderSelection(sel, viper.GetInt(key.PickWrapWidth)))
			if i < len(picks)-1 {
				cmd.Println()
			}
		}
	},
}

func renderSelection(sel catalog.Selection, width int) string {
	return fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s\n\n%s\n",
		icon.Get(icon.Show),
		style.Bold(sel.ShowTitle),
		icon.Get(icon.Season),
		style.Fg(color.Cyan)(fmt.Sprintf("Season %d · %s", sel.SeasonPosition, sel.SeasonTitle)),
		icon.Get(icon.Episode),
		style.Fg(color.Purple)(fmt.Sprintf("%d. %s", sel.EpisodePosition, sel.EpisodeTitle)),
		style.Faint("Aired "+sel.EpisodeAired),
		wordwrap.String(sel.EpisodeDescription, width),
	)
}
