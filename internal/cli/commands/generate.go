package commands

import (
	"fmt"

	"github.com/opencge/cgegen/internal/assembly"
	"github.com/opencge/cgegen/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate equations for all technologies in the model",
		Long: `Generate the production (or zero-profit) condition and factor-demand
equations for every technology declared in the model file.

Output adapts to environment:
  - Terminal: plain text with a header per technology
  - Piped/Scripted: Markdown with fenced equation blocks

Use --output to override: auto, text, markdown, json`,
		Example: `  # Generate equations for the model in ./cgegen.yaml
  cgegen generate

  # Target the vectorized backend
  cgegen generate --backend vectorized

  # Emit equation sets as JSON
  cgegen generate --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}

	return cmd
}

func runGenerate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	r := GetRenderer(ctx)
	logger := GetLogger(ctx)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid model: %w", err)
	}

	asm := assembly.New(logger)
	results, err := asm.Assemble(cfg)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(results)
	}

	for i, tech := range results {
		if i > 0 {
			r.Println()
		}
		r.Header(2, fmt.Sprintf("%s (%s)", tech.Name, tech.Type))
		r.CodeBlock(tech.Equations)
	}

	return nil
}
