package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/opencge/cgegen/internal/cli/output"
	"github.com/opencge/cgegen/internal/config"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List technologies declared in the model",
		Long: `List every production technology in the model file with its type,
factor count, and indexing dimensions.

Use --output to override the format: auto, text, markdown, json`,
		Example: `  # List technologies
  cgegen list

  # List technologies as JSON
  cgegen list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

// technologySummary is the JSON shape of one list row.
type technologySummary struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Factors int      `json:"factors"`
	Dims    []string `json:"dims"`
}

func runList(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	r := GetRenderer(ctx)

	if r.EffectiveMode() == output.ModeJSON {
		summaries := make([]technologySummary, 0, len(cfg.Technologies))
		for _, tech := range cfg.Technologies {
			summaries = append(summaries, technologySummary{
				Name:    tech.Name,
				Type:    tech.Type,
				Factors: len(tech.Factors),
				Dims:    tech.Dims,
			})
		}
		return r.JSON(summaries)
	}

	r.Header(1, fmt.Sprintf("Technologies (%d total)", len(cfg.Technologies)))
	r.Println()
	renderTechnologyTable(r, cfg.Technologies)
	return nil
}

func renderTechnologyTable(r *output.Renderer, technologies []config.Technology) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"NAME", "TYPE", "FACTORS", "DIMS"})
	for _, tech := range technologies {
		dims := strings.Join(tech.Dims, ", ")
		if dims == "" {
			dims = "-"
		}
		t.AppendRow(table.Row{tech.Name, tech.Type, len(tech.Factors), dims})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}
