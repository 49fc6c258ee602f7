package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pathctl/internal/analyze"
	"pathctl/internal/model"
	"pathctl/internal/tui"
	"pathctl/internal/web"
)

var (
	analyzeJSON        bool
	analyzeShadows     bool
	analyzeFind        string
	analyzeInteractive bool
	analyzeWeb         bool
	analyzeWebPort     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the current path",
	Long: `Analyze the current path for entries that are not existing
directories, entries listed more than once, and (with --shadows) files
hidden by same-named files earlier in the search order. The analysis
works on the raw path string, duplicates included; --filter and
--normalize do not apply here.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pathStr := currentPathStr()

		switch {
		case analyzeWeb:
			return web.NewServer(pathStr).Start(analyzeWebPort)
		case analyzeInteractive:
			return tui.Run(func() []model.PathEntry {
				return analyze.New(pathStr).Entries()
			})
		}

		analyzer := analyze.New(pathStr)
		if analyzeFind != "" {
			return runFind(cmd, analyzer, analyzeFind)
		}

		report, err := analyzer.Run(analyzeShadows)
		if err != nil {
			return err
		}

		if analyzeJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), analyze.RenderReport(report, colorEnabled()))
		return err
	},
}

func runFind(cmd *cobra.Command, analyzer *analyze.Analyzer, name string) error {
	dirs := analyzer.Find(name)
	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dirs)
	}
	if len(dirs) == 0 {
		fmt.Fprintf(out, "%s not found on path\n", name)
		return nil
	}
	for i, dir := range dirs {
		if i == 0 {
			fmt.Fprintf(out, "%s  (first match wins)\n", dir)
			continue
		}
		fmt.Fprintln(out, dir)
	}
	return nil
}

func init() {
	analyzeCmd.Flags().BoolVarP(&analyzeJSON, "json", "j", false, "Output the analysis as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeShadows, "shadows", "s", false, "Include shadowed-file detail (scans every path directory)")
	analyzeCmd.Flags().StringVar(&analyzeFind, "find", "", "Report which path directories provide the named binary")
	analyzeCmd.Flags().BoolVarP(&analyzeInteractive, "interactive", "i", false, "Browse the analysis in an interactive TUI")
	analyzeCmd.Flags().BoolVarP(&analyzeWeb, "web", "w", false, "Serve the analysis at localhost")
	analyzeCmd.Flags().StringVar(&analyzeWebPort, "port", "8080", "Port for --web")
}
