// Package main provides the guideline catalog CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	guideline "github.com/apidesign/guideline"
	"github.com/apidesign/guideline/export"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guideline",
		Short: "Query the API design guideline catalog",
		Long: `Query the API design guideline catalog.

Examples:
  guideline categories             # List categories and counts
  guideline show C-BUILDER         # Print one guideline
  guideline export --format json   # Dump the whole catalog
`,
		SilenceUsage: true,
	}
	cmd.AddCommand(categoriesCmd(), showCmd(), exportCmd())
	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and their guideline counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for c := range guideline.Categories() {
				fmt.Fprintf(out, "%-18s %d\n", c.Name(), c.Len())
			}
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <identifier>",
		Short: "Print one guideline by identifier (e.g. C-CASE)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := guideline.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown guideline %q", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s [%s]\n%s\n\n%s", e.ID, e.Category, e.Title, e.Description)
			for _, l := range e.Links {
				fmt.Fprintln(out, l)
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var (
		format  string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as JSON or a Markdown index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var w = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			switch format {
			case "json":
				return export.JSON(w)
			case "markdown", "md":
				return export.MarkdownIndex(w)
			default:
				return fmt.Errorf("unknown format %q (want json or markdown)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or markdown")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
