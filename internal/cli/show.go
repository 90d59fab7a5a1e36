package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/tablefield/internal/export"
)

func newShowCmd(app *App, g *globals) *cobra.Command {
	var (
		format   string
		header   bool
		query    string
		jsonPath string
	)
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the table in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if query != "" && jsonPath != "" {
				return fmt.Errorf("--query and --jsonpath are mutually exclusive")
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			doc, err := g.open(args[0])
			if err != nil {
				return err
			}
			t, err := doc.Table()
			if err != nil {
				return err
			}

			switch {
			case query != "":
				vals, err := export.Query(t, query)
				if err != nil {
					return err
				}
				return export.WriteValues(app.Stdout, vals)
			case jsonPath != "":
				v, err := export.JSONPath(t, jsonPath)
				if err != nil {
					return err
				}
				return export.WriteValues(app.Stdout, []any{v})
			}

			if !cmd.Flags().Changed("header") {
				header = g.cfg.Options.HighlightFirstRow
			}
			return export.Write(app.Stdout, t, f, export.Options{FirstRowHeader: header})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "plain", "output format: plain, markdown, csv, json, yaml")
	cmd.Flags().BoolVar(&header, "header", false, "treat the first row as a header (default from highlight_first_row)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "jq expression applied to the stored table")
	cmd.Flags().StringVar(&jsonPath, "jsonpath", "", "JSONPath expression applied to the stored table")
	return cmd
}
