package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veilang/veil/formatter"
	"github.com/veilang/veil/internal"
	"github.com/veilang/veil/internal/deps"
)

// depsCmd: veil deps
var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show the resolved external executables and their versions",
	Run: func(cmd *cobra.Command, args []string) {
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

		fmt.Print(formatter.FormatDependency(set.Boogie.Describe()))
		fmt.Print(formatter.FormatDependency(set.Z3.Describe()))
	},
}
