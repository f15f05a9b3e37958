// Package cli wires the cobra command surface to the detection pipeline and
// the resolver: flag binding, signal handling, progress display, and the
// confirmation prompt all live here, outside the pipeline core.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/dupsweep/internal/config"
	"github.com/backmassage/dupsweep/internal/display"
	"github.com/backmassage/dupsweep/internal/logging"
	"github.com/backmassage/dupsweep/internal/report"
	"github.com/backmassage/dupsweep/internal/resolve"
	"github.com/backmassage/dupsweep/internal/scan"
)

var (
	flagDelete      bool
	flagYes         bool
	flagNoRecursive bool
	flagPrefixBytes int
	flagReport      string
	flagConfigFile  string
	flagLogFile     string
	flagVerbose     bool
	flagNoProgress  bool
	flagColor       string
)

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dupsweep [flags] <directory>...",
		Short: "Find and remove duplicate files",
		Long: `dupsweep scans one or more directory trees for files with identical
content and reports them as duplicate groups, keeping the first copy
encountered and marking the rest for deletion.

Candidates are narrowed in three stages: files are grouped by exact size,
sub-grouped by their first bytes, and confirmed with a full-content hash,
so most non-duplicates are ruled out without reading them fully.

By default nothing is removed; pass --delete to remove the redundant
copies after the report (a confirmation prompt is shown unless --yes).`,
		Example: `  dupsweep ~/Pictures
  dupsweep --no-recursive /srv/incoming
  dupsweep --delete ~/Downloads ~/Desktop
  dupsweep --delete --yes --report run.json /backup/old /backup/new`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSweep,
	}

	f := cmd.Flags()
	f.BoolVar(&flagDelete, "delete", false, "Delete redundant copies after the report (default: report only)")
	f.BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt (with --delete)")
	f.BoolVar(&flagNoRecursive, "no-recursive", false, "Scan only direct children, not subtrees")
	f.IntVar(&flagPrefixBytes, "prefix-bytes", config.DefaultPrefixBytes, "Bytes compared in the prefix pre-filter")
	f.StringVar(&flagReport, "report", "", "Write a JSON report to this path")
	f.StringVar(&flagConfigFile, "config", "", "YAML settings file (flags take precedence)")
	f.StringVarP(&flagLogFile, "log", "l", "", "Append logs to this file")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	f.BoolVar(&flagNoProgress, "no-progress", false, "Disable progress output")
	f.StringVar(&flagColor, "color", string(config.ColorAuto), "Colored output: auto | always | never")

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(version string) int {
	if err := newRootCmd(version).Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			// The cancellation notice was already logged.
			return 1
		}
		fmt.Fprintf(os.Stderr, "dupsweep: %v\n", err)
		return 1
	}
	return 0
}

func runSweep(cmd *cobra.Command, args []string) error {
	// Phase 1: Bootstrap — defaults, settings file, then explicit flags.
	cfg := config.DefaultConfig()
	if flagConfigFile != "" {
		if err := config.LoadFile(flagConfigFile, &cfg); err != nil {
			return err
		}
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	for _, arg := range args {
		cfg.Roots = append(cfg.Roots, config.NormalizeRoot(arg))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()
	if cfg.Delete {
		log.Warn("DELETE MODE — redundant copies will be removed")
	} else {
		log.Info("Report-only mode (use --delete to remove duplicates)")
	}

	// Phase 3: Signal handling — cancel on SIGINT/SIGTERM so the run stops
	// between files. Deletions commit independently, so stopping mid-run
	// just leaves some duplicates in place.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			log.Warn("Received interrupt, stopping…")
			cancel()
		}
	}()

	// Phase 4: Detect.
	prog, finishProgress := attachProgress(&cfg)
	sets, st, scanErr := scan.Run(ctx, &cfg, log, prog)
	finishProgress()

	plan := resolve.NewPlan(sets)
	resolve.WriteReport(os.Stdout, plan)

	if scanErr != nil {
		log.Warn("Scan interrupted — results above are partial")
		return scanErr
	}

	// Phase 5: Resolve.
	var res resolve.Result
	if cfg.Delete && plan.Groups() > 0 {
		var confirm resolve.Confirmer
		if !cfg.AssumeYes {
			confirm = stdinConfirmer(os.Stdin, os.Stdout)
		}
		res, err = resolve.Apply(ctx, plan, confirm, log)
		if err != nil {
			log.Warn("Deletion interrupted — remaining duplicates were left in place")
			return err
		}
		if res.Deleted > 0 || res.Failed > 0 {
			log.Info("Deleted %s, reclaimed %s",
				display.FormatCount(res.Deleted, "file"),
				display.FormatBytes(res.Reclaimed))
			if res.Failed > 0 {
				log.Warn("%s could not be deleted", display.FormatCount(res.Failed, "file"))
			}
		}
	}

	if cfg.ReportPath != "" {
		r := report.Build(cfg.Roots, st, plan, res)
		if err := r.WriteFile(cfg.ReportPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info("Report saved to: %s", cfg.ReportPath)
	}
	return nil
}

// applyFlags copies explicitly-set flags into cfg, so flags win over the
// settings file without clobbering it with flag defaults.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("delete") {
		cfg.Delete = flagDelete
	}
	if f.Changed("yes") {
		cfg.AssumeYes = flagYes
	}
	if f.Changed("no-recursive") {
		cfg.Recursive = !flagNoRecursive
	}
	if f.Changed("prefix-bytes") {
		cfg.PrefixBytes = flagPrefixBytes
	}
	if f.Changed("report") {
		cfg.ReportPath = flagReport
	}
	if f.Changed("log") {
		cfg.LogFile = flagLogFile
	}
	if f.Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if f.Changed("no-progress") {
		cfg.ShowProgress = !flagNoProgress
	}
	if f.Changed("color") {
		mode, err := config.ParseColorMode(flagColor)
		if err != nil {
			return err
		}
		cfg.ColorMode = mode
	}
	return nil
}
