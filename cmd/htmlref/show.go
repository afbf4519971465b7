package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/htmlref/internal/app"
	"github.com/five82/htmlref/internal/browse"
	"github.com/five82/htmlref/internal/format"
)

const showWrapWidth = 100

func newShowCmd(flags *globalFlags) *cobra.Command {
	var (
		asJSON   bool
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the full page of one tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Setup(flags.options(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer env.Close()

			out := cmd.OutOrStdout()
			page := browse.NewDetail(env.Catalog).Resolve(args[0])
			if !page.Found {
				env.Logger.Debug("show miss", "name", args[0])
				fmt.Fprint(cmd.ErrOrStderr(), format.NotFoundText(page))
				return errReported
			}

			switch {
			case asJSON:
				return writeJSON(out, page.Record)
			case markdown:
				_, err = fmt.Fprint(out, format.DetailMarkdown(page))
			default:
				_, err = fmt.Fprint(out, format.RenderMarkdown(format.DetailMarkdown(page), "", showWrapWidth))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the record as JSON")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print raw markdown instead of rendering it")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown")
	return cmd
}
