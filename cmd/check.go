package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	veil "github.com/veilang/veil"
	"github.com/veilang/veil/formatter"
	"github.com/veilang/veil/internal"
	"github.com/veilang/veil/internal/backend"
	"github.com/veilang/veil/internal/deps"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Run the checker on rendered intermediate programs",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cfg, runner := buildRunner()
		results, err := veil.CheckFiles(ctx, logger, runner, args, internal.CheckerOptions(cfg))
		if err != nil {
			logger.Error("Error checking files", zap.Error(err))
			os.Exit(1)
		}

		failed := 0
		for _, r := range results {
			fmt.Print(formatter.FormatResult(r.Path, r.Result))
			failed += len(r.Result.Errors)
		}
		if failed > 0 {
			os.Exit(1)
		}
	},
}

// buildRunner loads the configuration, resolves the external executables,
// and returns the subprocess runner the file-level commands share.
func buildRunner() (*internal.Config, backend.Runner) {
	var cfg *internal.Config
	if cfgFile != "" {
		var err error
		cfg, err = internal.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
	}

	var boogieExe, z3Exe string
	if cfg != nil {
		boogieExe, z3Exe = cfg.BoogieExe, cfg.Z3Exe
	}
	set := deps.Resolve(boogieExe, z3Exe)

	return cfg, &backend.Exec{
		Checker: set.Boogie.Location(),
		Solver:  set.Z3.Location(),
	}
}
