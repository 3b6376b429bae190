package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cmakecheck/internal/diag"
	"cmakecheck/internal/diagfmt"
	"cmakecheck/internal/driver"
	"cmakecheck/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir]",
	Short: "Check CMake scripts under a directory",
	Long: `Check finds CMakeLists.txt and *.cmake files under the given directory
(default ".") and reports configuration mistakes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("recurse", true, "descend into subdirectories")
	checkCmd.Flags().Int("limit", 0, "stop emitting findings after this many (0 = unlimited)")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "number of files checked in parallel (0 = number of CPUs)")
	checkCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	checkCmd.Flags().Bool("disk-cache", false, "reuse results for unchanged files across runs")
	checkCmd.Flags().Bool("gitignore", true, "skip files excluded by .gitignore")
	checkCmd.Flags().String("paths", "auto", "path rendering (auto|absolute|relative|basename)")
	checkCmd.Flags().StringSlice("disable", nil, "rule names to skip (repeatable)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve root: %w", err)
	}
	// Root may be a directory or a single script file.
	if _, err := os.Stat(root); err != nil {
		return err
	}

	opts, err := collectCheckOptions(cmd, root)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	format = strings.ToLower(format)
	switch format {
	case "pretty", "short", "json", "sarif":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	pathMode, err := readPathMode(cmd)
	if err != nil {
		return err
	}

	if useCache, _ := cmd.Flags().GetBool("disk-cache"); useCache {
		cache, err := driver.OpenDiskCache("cmakecheck")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		// Cached payloads do not record rule exclusions or pragma aliases;
		// a customized run must not replay findings computed under the
		// defaults.
		if len(opts.ExcludeRules) > 0 || len(opts.ExtraAliases) > 0 {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to reset disk cache: %w", err)
			}
		}
		opts.Cache = cache
	}

	res, err := runWithOptionalUI(cmd, format, opts)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:    useColor(cmd, os.Stdout),
			PathMode: pathMode,
			BaseDir:  root,
		})
		if !quiet {
			diagfmt.Summary(os.Stdout, res.Bag.Total(), res.CheckedFiles)
		}
	case "short":
		fmt.Fprint(os.Stdout, diag.FormatShortDiagnostics(res.FileSet, res.Bag.Items()))
	case "json":
		if err := diagfmt.WriteJSON(os.Stdout, res.Bag, res.FileSet, res.CheckedFiles, diagfmt.JSONOpts{
			PathMode: pathMode,
			BaseDir:  root,
			Indent:   true,
		}); err != nil {
			return err
		}
	case "sarif":
		if err := diagfmt.Sarif(os.Stdout, res.Bag, res.FileSet, diagfmt.SarifRunMeta{
			ToolName:       "cmakecheck",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args,
		}); err != nil {
			return err
		}
	}

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings && res.Timing != nil {
		printPhaseTimings(os.Stderr, res.Timing)
	}

	exitStatus = res.ExitCode()
	return nil
}

// collectCheckOptions merges manifest defaults with command-line flags.
// An explicitly given flag always wins.
func collectCheckOptions(cmd *cobra.Command, root string) (driver.Options, error) {
	opts := driver.Options{Root: root}
	opts.Recurse, _ = cmd.Flags().GetBool("recurse")
	opts.RespectGitignore, _ = cmd.Flags().GetBool("gitignore")
	opts.Limit, _ = cmd.Flags().GetInt("limit")
	opts.Jobs, _ = cmd.Flags().GetInt("jobs")
	opts.ExcludeRules, _ = cmd.Flags().GetStringSlice("disable")

	manifest, ok, err := loadCheckManifest(root)
	if err != nil {
		return driver.Options{}, err
	}
	if !ok {
		return opts, nil
	}

	cfg := manifest.Config
	if cfg.Check.Recurse != nil && !cmd.Flags().Changed("recurse") {
		opts.Recurse = *cfg.Check.Recurse
	}
	if cfg.Check.Gitignore != nil && !cmd.Flags().Changed("gitignore") {
		opts.RespectGitignore = *cfg.Check.Gitignore
	}
	if cfg.Check.Limit != nil && !cmd.Flags().Changed("limit") {
		opts.Limit = *cfg.Check.Limit
	}
	if cfg.Check.Jobs != nil && !cmd.Flags().Changed("jobs") {
		opts.Jobs = *cfg.Check.Jobs
	}
	opts.ExcludeRules = append(opts.ExcludeRules, cfg.Check.Exclude...)
	opts.ExtraAliases = cfg.Pragma.Aliases
	return opts, nil
}

func readPathMode(cmd *cobra.Command) (diagfmt.PathMode, error) {
	value, _ := cmd.Flags().GetString("paths")
	switch strings.ToLower(value) {
	case "", "auto":
		return diagfmt.PathModeAuto, nil
	case "absolute":
		return diagfmt.PathModeAbsolute, nil
	case "relative":
		return diagfmt.PathModeRelative, nil
	case "basename":
		return diagfmt.PathModeBasename, nil
	default:
		return 0, fmt.Errorf("invalid --paths value %q (expected auto|absolute|relative|basename)", value)
	}
}

// runWithOptionalUI decides between the interactive progress display and a
// plain run. The TUI is only worth it for human-facing pretty output on a
// terminal.
func runWithOptionalUI(cmd *cobra.Command, format string, opts driver.Options) (*driver.RunResult, error) {
	ctx := context.Background()

	uiFlag, _ := cmd.Flags().GetString("ui")
	wantUI, err := wantProgressUI(uiFlag)
	if err != nil {
		return nil, err
	}
	if format != "pretty" || !wantUI {
		return driver.CheckDir(ctx, opts)
	}

	files, err := driver.ListScriptFiles(opts.Root, driver.WalkOptions{
		Recurse:          opts.Recurse,
		RespectGitignore: opts.RespectGitignore,
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return driver.CheckDir(ctx, opts)
	}
	return runCheckWithUI(ctx, "checking cmake scripts", files, opts)
}
