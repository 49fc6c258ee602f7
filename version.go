package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"

	"pathctl/internal/model"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pathctl version %s\n", model.Version)
		if versionCheck {
			checkUpdate(cmd, model.Version)
		}
	},
}

func checkUpdate(cmd *cobra.Command, currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "pathctl",
		Repository: "pathctl",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	out := cmd.OutOrStdout()
	if res.Outdated {
		fmt.Fprintf(out, "\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintln(out, "👉 Download it from https://github.com/pathctl/pathctl/releases")
	} else {
		fmt.Fprintf(out, "✅ You are using the latest version: %s\n", currentVer)
	}
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
}
