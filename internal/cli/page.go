package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-patientview/pkg/orchestrator"
	"github.com/goliatone/go-patientview/pkg/render"
	"github.com/goliatone/go-patientview/pkg/render/template/gotemplate"
	"github.com/goliatone/go-patientview/pkg/renderers/page"
	"github.com/goliatone/go-patientview/pkg/renderers/table"
)

func pageCmd(a *app) *cobra.Command {
	var (
		flags     rosterFlags
		title     string
		themeFile string
		tmplDir   string
		variant   string
		notes     []string
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Render a roster as a complete, optionally themed, HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.input == "" {
				return errInputRequired
			}

			pageOptions := []page.Option{page.WithTable(table.New(a.tableOptions()...))}
			if tmplDir != "" {
				engine, err := gotemplate.New(gotemplate.WithBaseDir(tmplDir), gotemplate.WithFS(page.TemplatesFS()))
				if err != nil {
					return err
				}
				a.log.Debug().Str("dir", tmplDir).Msg("template overrides enabled")
				pageOptions = append(pageOptions, page.WithTemplateRenderer(engine))
			}
			if themeFile != "" {
				resolved, err := loadTheme(themeFile, variant)
				if err != nil {
					return err
				}
				a.log.Debug().Str("theme", resolved.Name).Str("variant", resolved.Variant).Msg("theme resolved")
				pageOptions = append(pageOptions, page.WithTheme(resolved))
			}

			out, err := a.renderRoster(cmd, &flags, page.Name, func(opts *render.RenderOptions) {
				opts.Title = title
				opts.Notes = notes
			}, orchestrator.WithPageOptions(pageOptions...))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "page title")
	cmd.Flags().StringVar(&themeFile, "theme-file", "", "go-theme manifest (yaml or json)")
	cmd.Flags().StringVar(&variant, "variant", "", "theme variant")
	cmd.Flags().StringVar(&tmplDir, "templates-dir", "", "directory whose .tpl files override the built-in page templates")
	cmd.Flags().StringArrayVar(&notes, "note", nil, "HTML note shown under the table (sanitized), repeatable")
	return cmd
}

func loadTheme(path, variant string) (*page.Theme, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open theme: %w", err)
	}
	defer file.Close()

	manifest, err := page.LoadManifest(file)
	if err != nil {
		return nil, err
	}
	return page.ResolveTheme(manifest, variant)
}
