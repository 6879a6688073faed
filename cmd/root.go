// Package cmd implements the command-line interface for epishuffle.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/epishuffle/epishuffle/color"
	"github.com/epishuffle/epishuffle/constant"
	"github.com/epishuffle/epishuffle/icon"
	"github.com/epishuffle/epishuffle/key"
	"github.com/epishuffle/epishuffle/log"
	"github.com/epishuffle/epishuffle/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., emoji, nerd, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("shows", "S", "", "Directory with show definition files")
	lo.Must0(rootCmd.MarkPersistentFlagDirname("shows"))
	lo.Must0(viper.BindPFlag(key.CatalogPath, rootCmd.PersistentFlags().Lookup("shows")))

	rootCmd.PersistentFlags().Bool("strict", false, "Reject show definitions containing unknown fields")
	lo.Must0(viper.BindPFlag(key.CatalogStrict, rootCmd.PersistentFlags().Lookup("strict")))

	addServeFlags(rootCmd)
}

// rootCmd serves the web page when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   constant.Epishuffle,
	Short: "Pick a random episode of your favourite show",
	Long: style.New().Bold(true).Foreground(color.HiPurple).Render(constant.Epishuffle) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Pick a random episode of your favourite show"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		serveCmd.Run(cmd, args)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
