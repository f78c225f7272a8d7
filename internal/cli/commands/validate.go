package commands

import (
	"fmt"

	"github.com/opencge/cgegen/internal/assembly"
	"github.com/opencge/cgegen/internal/config"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the model file",
		Long: `Load the model file, check its structure, and dry-run every generator
call. Reports the first authoring error found; a valid model prints a
summary and exits zero.`,
		Example: `  # Validate ./cgegen.yaml
  cgegen validate

  # Validate an explicit model file
  cgegen validate --config models/economy.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	logger := GetLogger(ctx)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid model: %w", err)
	}

	// Dry-run the generators: arity and length violations only surface
	// at generation time.
	asm := assembly.New(logger)
	results, err := asm.Assemble(cfg)
	if err != nil {
		return fmt.Errorf("invalid model: %w", err)
	}

	equationCount := 0
	for _, tech := range results {
		equationCount += len(tech.Equations)
	}

	out := cmd.OutOrStdout()
	if configFile := config.GetConfigFileUsed(); configFile != "" {
		_, _ = fmt.Fprintf(out, "Model file: %s\n", configFile)
	}
	_, _ = fmt.Fprintf(out, "OK: %d technologies, %d equations, backend %s\n",
		len(cfg.Technologies), equationCount, cfg.Backend)

	return nil
}
