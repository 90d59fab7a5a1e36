package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/tablefield/table"
)

func newInitCmd(app *App, g *globals) *cobra.Command {
	var (
		sizes sizeFlags
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init FILE",
		Short: "Write a fresh table into a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := sizes.apply(cmd.Flags(), g.cfg.Options)
			if err := opt.Validate(); err != nil {
				return err
			}

			doc, err := g.open(args[0])
			if err != nil {
				return err
			}
			cur, err := doc.Table()
			if err != nil && !force {
				return err
			}
			if cur.Present() && !force {
				return fmt.Errorf("%s already holds a table at %q (use --force to replace it)", args[0], doc.Path())
			}

			res := table.NewEditor(opt).Initialize()
			if err := doc.Apply(table.Set(res.Table)); err != nil {
				return err
			}
			out := g.colorOutput(app.Stdout)
			_, err = fmt.Fprintf(app.Stdout, "%s %dx%d table at %q in %s\n",
				out.String("initialized").Bold(), res.Table.Len(), table.ColumnCount(res.Table), doc.Path(), args[0])
			return err
		},
	}
	sizes.bind(cmd.Flags())
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing table")
	return cmd
}

// sizeFlags override the configured initial table size.
type sizeFlags struct {
	rows    int
	columns int
}

func (f *sizeFlags) bind(fs *pflag.FlagSet) {
	fs.IntVar(&f.rows, "rows", 0, "initial rows (overrides config)")
	fs.IntVar(&f.columns, "columns", 0, "initial columns (overrides config)")
}

func (f *sizeFlags) apply(fs *pflag.FlagSet, opt table.Options) table.Options {
	if fs.Changed("rows") {
		opt.InitialRows = f.rows
	}
	if fs.Changed("columns") {
		opt.InitialColumns = f.columns
	}
	return opt
}
