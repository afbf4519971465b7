package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/htmlref/internal/app"
	"github.com/five82/htmlref/internal/browse"
	"github.com/five82/htmlref/internal/format"
)

type listResult struct {
	Category string        `json:"category"`
	Query    string        `json:"query,omitempty"`
	Count    int           `json:"count"`
	Tags     []browse.Card `json:"tags"`
}

func newListCmd(flags *globalFlags) *cobra.Command {
	var (
		category string
		search   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  `List tags, optionally narrowed to one category and a case-insensitive search of names and descriptions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Setup(flags.options(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer env.Close()

			list := browse.NewList(env.Catalog)
			if category != "" && !list.SelectCategory(category) {
				return fmt.Errorf("unknown category %q (want one of: %s)",
					category, strings.Join(env.Catalog.Categories(), ", "))
			}
			list.SetSearch(search)
			page := list.Page()

			env.Logger.Debug("list", "category", list.Category(), "query", search, "count", page.Count)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), listResult{
					Category: list.Category(),
					Query:    search,
					Count:    page.Count,
					Tags:     page.Cards,
				})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), format.ListText(page))
			return err
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
