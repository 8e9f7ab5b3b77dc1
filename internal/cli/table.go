package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-patientview/pkg/calendar"
	"github.com/goliatone/go-patientview/pkg/markup"
	"github.com/goliatone/go-patientview/pkg/orchestrator"
	"github.com/goliatone/go-patientview/pkg/records"
	"github.com/goliatone/go-patientview/pkg/render"
	"github.com/goliatone/go-patientview/pkg/renderers/table"
)

var errInputRequired = errors.New("cli: --input is required")

// rosterFlags are shared by the table and page commands.
type rosterFlags struct {
	input       string
	labels      []string
	today       string
	oldestFirst bool
	name        string
}

func (f *rosterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "roster file (.csv, .yaml, .yml or .json)")
	cmd.Flags().StringSliceVar(&f.labels, "labels", nil, "header labels, comma separated")
	cmd.Flags().StringVar(&f.today, "today", "", "reference date for ages as YYYY-MM-DD")
	cmd.Flags().BoolVar(&f.oldestFirst, "oldest-first", false, "sort people by birthday, oldest first")
	cmd.Flags().StringVar(&f.name, "name", "", "only include people whose name contains this text")
}

func (f *rosterFlags) options() (render.RenderOptions, error) {
	opts := render.RenderOptions{Labels: f.labels}
	if f.today != "" {
		today, err := calendar.ParseDate(f.today)
		if err != nil {
			return opts, fmt.Errorf("cli: --today: %w", err)
		}
		opts.Today = today
	}
	return opts, nil
}

func (f *rosterFlags) transformers() []orchestrator.Option {
	var out []orchestrator.Option
	if f.name != "" {
		out = append(out, orchestrator.WithTransformer(orchestrator.NameContains(f.name)))
	}
	if f.oldestFirst {
		out = append(out, orchestrator.WithTransformer(orchestrator.OldestFirst()))
	}
	return out
}

func (a *app) tableOptions() []table.Option {
	return []table.Option{
		table.WithTableAttrs(a.cfg.TableAttrs),
		table.WithCompact(a.cfg.Compact),
		table.WithIndent(a.cfg.Indent),
	}
}

func tableCmd(a *app) *cobra.Command {
	var flags rosterFlags
	var asRecords bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render a roster, or arbitrary records, as an HTML table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.input == "" {
				return errInputRequired
			}

			var (
				out []byte
				err error
			)
			if asRecords {
				out, err = a.renderRecords(flags.input, flags.labels)
			} else {
				out, err = a.renderRoster(cmd, &flags, table.Name, nil)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asRecords, "records", false, "treat --input as a YAML/JSON list of arbitrary mappings")
	return cmd
}

func (a *app) renderRoster(cmd *cobra.Command, flags *rosterFlags, renderer string, adjust func(*render.RenderOptions), extra ...orchestrator.Option) ([]byte, error) {
	opts, err := flags.options()
	if err != nil {
		return nil, err
	}
	if adjust != nil {
		adjust(&opts)
	}

	options := []orchestrator.Option{orchestrator.WithTableOptions(a.tableOptions()...)}
	options = append(options, flags.transformers()...)
	options = append(options, extra...)

	a.log.Debug().Str("input", flags.input).Str("renderer", renderer).Msg("rendering roster")
	return orchestrator.New(options...).Generate(cmd.Context(), orchestrator.Request{
		Source:        flags.input,
		Renderer:      renderer,
		RenderOptions: opts,
	})
}

func (a *app) renderRecords(path string, labels []string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open records: %w", err)
	}
	defer file.Close()

	recs, err := records.Read(file)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("input", path).Int("records", len(recs)).Msg("rendering records")

	t := markup.NewTable(a.cfg.TableAttrs, markup.WithCompact(a.cfg.Compact), markup.WithIndent(a.cfg.Indent))
	html, err := t.Render(recs, labels)
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}
