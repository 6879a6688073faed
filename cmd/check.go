package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/epishuffle/epishuffle/catalog"
	"github.com/epishuffle/epishuffle/filesystem"
	"github.com/epishuffle/epishuffle/icon"
	"github.com/epishuffle/epishuffle/key"
	"github.com/epishuffle/epishuffle/provider"
	"github.com/epishuffle/epishuffle/style"
	"github.com/epishuffle/epishuffle/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

// checkCmd loads show definitions and reports what would be served.
var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Validate show definitions and summarise the catalog",
	Long: `Validate show definitions and summarise the catalog.
Without arguments every configured provider is loaded. Given files are checked on their own.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			c   *catalog.Catalog
			err error
		)

		if len(args) > 0 {
			c, err = checkFiles(args)
		} else {
			c, err = provider.Load()
		}

		if err != nil {
			cmd.Println(failureBox(err))
			os.Exit(1)
		}

		stats := c.Stats()
		cmd.Printf("%s %s, %s, %s\n",
			style.Fg(style.SuccessColor)(icon.Get(icon.Success)),
			util.Quantify(stats.Shows, "show", "shows"),
			util.Quantify(stats.Seasons, "season", "seasons"),
			util.Quantify(stats.Episodes, "episode", "episodes"),
		)
	},
}

func checkFiles(paths []string) (*catalog.Catalog, error) {
	source := catalog.StaticSource{Label: "arguments"}
	for _, path := range paths {
		data, err := filesystem.API().ReadFile(path)
		if err != nil {
			return nil, &catalog.LoadError{Kind: catalog.ErrSourceUnavailable, Origin: path, Err: err}
		}

		source.Items = append(source.Items, catalog.RawDefinition{
			Key:    util.FileStem(path),
			Origin: path,
			Data:   data,
		})
	}

	loader := &catalog.Loader{Strict: viper.GetBool(key.CatalogStrict)}
	return loader.Load(source)
}

func failureBox(err error) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Invalid catalog", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(err.Error())

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}
