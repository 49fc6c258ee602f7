package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pathctl/internal/pathlist"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the current path one directory per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrint(cmd)
	},
}

var newCmd = &cobra.Command{
	Use:   "new DIRECTORIES...",
	Short: "Build a new path from directories",
	Long: `Build a new path solely from the given directories, ignoring the
current path. Each argument may itself be a colon-delimited path string.
Re-mentioning a directory moves it to the end (the last mention wins).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writePath(cmd, pathlist.New(args), false)
	},
}

var addCmd = &cobra.Command{
	Use:   "add DIRECTORIES...",
	Short: "Add directories to front of path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		current := pathlist.Parse(currentPathStr())
		return writePath(cmd, pathlist.Add(current, args), false)
	},
}

var appendCmd = &cobra.Command{
	Use:   "append DIRECTORIES...",
	Short: "Add directories to back of path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		current := pathlist.Parse(currentPathStr())
		return writePath(cmd, pathlist.Append(current, args), false)
	},
}

func runPrint(cmd *cobra.Command) error {
	// Print is always one directory per line, whatever --pretty says.
	return writePath(cmd, pathlist.Parse(currentPathStr()), true)
}

// writePath applies the filter/normalize post-processing and writes the
// result: one entry per line when pretty output is in effect, a single
// colon-joined line otherwise.
func writePath(cmd *cobra.Command, list pathlist.List, forcePretty bool) error {
	list = pathlist.ApplyFilters(list, filterFlag, normalizeFlag)
	out := cmd.OutOrStdout()
	if forcePretty || prettyFlag {
		for _, dir := range list {
			if _, err := fmt.Fprintln(out, dir); err != nil {
				return fmt.Errorf("printing %s: %w", dir, err)
			}
		}
		return nil
	}
	if _, err := fmt.Fprintln(out, list.String()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
