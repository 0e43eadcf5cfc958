package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
	"github.com/kobayashik-Faber/shotcheck/internal/infra/composite"
	"github.com/kobayashik-Faber/shotcheck/internal/infra/config"
	"github.com/kobayashik-Faber/shotcheck/internal/infra/fsmatcher"
	"github.com/kobayashik-Faber/shotcheck/internal/infra/logger"
	"github.com/kobayashik-Faber/shotcheck/internal/infra/pngstore"
	"github.com/kobayashik-Faber/shotcheck/internal/infra/textreport"
	"github.com/kobayashik-Faber/shotcheck/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug      bool
		threshold  uint8
		pattern    string
		format     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:          "shotcheck <dir1> <dir2> <output_dir>",
		Short:        "Compare two directories of screenshots and highlight pixel differences",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				cfg.Compare.Threshold = threshold
			}
			if cmd.Flags().Changed("pattern") {
				cfg.Match.Pattern = pattern
			}

			dirA, dirB, outDir := args[0], args[1], args[2]

			cleanup, lerr := logger.Setup(logger.Config{Root: outDir, Debug: debug})
			if lerr != nil {
				// The run itself can proceed without a log file.
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: file logging disabled: %v\n", lerr)
			}
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			matcher, err := fsmatcher.New(cfg.Match)
			if err != nil {
				return err
			}

			uc := usecase.NewCompareDirs(
				matcher,
				pngstore.New(),
				composite.New(cfg.Render),
				textreport.New(cfg.Report),
				cfg.Compare.Threshold,
			)

			logger.L().Info("run.started",
				"dir1", dirA, "dir2", dirB, "output", outDir,
				"threshold", cfg.Compare.Threshold)

			run, err := uc.Execute(cmd.Context(), dirA, dirB, outDir)
			if err != nil {
				logger.L().Error("run.failed", "error", err.Error())
				return err
			}

			if err := printRun(os.Stdout, run, format); err != nil {
				return err
			}

			identical, different, failed := run.Counts()
			logger.L().Info("run.completed",
				"pairs", len(run.Results),
				"identical", identical, "different", different, "failed", failed,
				"report", run.ReportPath)

			if failed > 0 {
				return fmt.Errorf("run finished with %d failed pair(s)", failed)
			}
			return nil
		},
	}

	cmd.Flags().Uint8Var(&threshold, "threshold", domain.DefaultConfig().Compare.Threshold, "Per-channel delta tolerated before a pixel counts as different")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Anchored regexp stripped from filename stems to derive match keys (default: built-in timestamp pattern)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Summary format: pretty|json")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to shotcheck.yaml (optional; ./shotcheck.yaml is picked up when present)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable verbose logging to <output_dir>/shotcheck.log")

	cmd.AddCommand(versionCmd())
	return cmd
}
