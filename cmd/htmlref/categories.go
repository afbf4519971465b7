package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/htmlref/internal/app"
	"github.com/five82/htmlref/internal/catalog"
	"github.com/five82/htmlref/internal/format"
)

type categoriesResult struct {
	All        string                  `json:"all"`
	Total      int                     `json:"total"`
	Categories []catalog.CategoryCount `json:"categories"`
}

func newCategoriesCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with tag counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Setup(flags.options(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer env.Close()

			c := env.Catalog
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), categoriesResult{
					All:        c.AllLabel(),
					Total:      c.Len(),
					Categories: c.CountByCategory(),
				})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), format.CategoryText(c.AllLabel(), c.Len(), c.CountByCategory()))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
