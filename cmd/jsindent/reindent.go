package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jsindent/internal/diag"
	"jsindent/internal/diagfmt"
	"jsindent/internal/driver"
	"jsindent/internal/observ"
	"jsindent/internal/source"
)

var reindentCmd = &cobra.Command{
	Use:   "reindent [flags] <path> [path...]",
	Short: "Recompute the indentation of whole files",
	Long: `Reindent rewrites the leading whitespace of every line. Directories are
walked for files with a configured extension, skipping hidden directories
and node_modules.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReindent,
}

func init() {
	registerReindentFlags(reindentCmd)
}

func registerReindentFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("check", false, "report files that would change and exit non-zero")
	cmd.Flags().Bool("explain", false, "with --check, show every misindented line")
	cmd.Flags().Bool("stdout", false, "print reindented text instead of rewriting files")
	cmd.Flags().Bool("diff", false, "print a unified diff instead of rewriting files")
	cmd.Flags().String("format", "text", "report format (text|json)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().Bool("no-cache", false, "do not use the --check result cache")
}

// errChangesRequired is returned by --check when some file would change.
var errChangesRequired = errors.New("reindent: indentation changes required")

type reindentFlags struct {
	check, explain, stdout, diff, noCache bool
	format                                string
	jobs                                  int
	ui                                    uiMode
}

func readReindentFlags(cmd *cobra.Command) (reindentFlags, error) {
	var rf reindentFlags
	flags := cmd.Flags()
	var err error
	for name, dst := range map[string]*bool{
		"check": &rf.check, "explain": &rf.explain, "stdout": &rf.stdout,
		"diff": &rf.diff, "no-cache": &rf.noCache,
	} {
		if *dst, err = flags.GetBool(name); err != nil {
			return rf, err
		}
	}
	if rf.format, err = flags.GetString("format"); err != nil {
		return rf, err
	}
	if rf.jobs, err = flags.GetInt("jobs"); err != nil {
		return rf, err
	}
	rawUI, err := flags.GetString("ui")
	if err != nil {
		return rf, err
	}
	if rf.ui, err = readUIMode(rawUI); err != nil {
		return rf, err
	}
	return rf, rf.validate()
}

func (rf reindentFlags) validate() error {
	switch {
	case rf.format != "text" && rf.format != "json":
		return fmt.Errorf("reindent: unsupported output format %q", rf.format)
	case rf.stdout && rf.diff:
		return fmt.Errorf("reindent: --stdout cannot be used with --diff")
	case rf.check && (rf.stdout || rf.diff):
		return fmt.Errorf("reindent: --check cannot be used with --stdout or --diff")
	case rf.explain && !rf.check:
		return fmt.Errorf("reindent: --explain requires --check")
	case (rf.stdout || rf.diff) && rf.format != "text":
		return fmt.Errorf("reindent: --stdout and --diff only support text output")
	}
	return nil
}

func (rf reindentFlags) mode() driver.Mode {
	switch {
	case rf.check:
		return driver.ModeCheck
	case rf.stdout || rf.diff:
		return driver.ModeStdout
	}
	return driver.ModeWrite
}

func runReindent(cmd *cobra.Command, args []string) (err error) {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	defer func() {
		if err != nil && !errors.Is(err, errChangesRequired) {
			fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("error:"), err)
		}
	}()

	rf, err := readReindentFlags(cmd)
	if err != nil {
		return err
	}
	pf := cmd.Root().PersistentFlags()
	quiet, err := pf.GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := pf.GetBool("timings")
	if err != nil {
		return err
	}

	stopProfiling, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { cleanup(err) }()

	resolver, _, err := resolverFromFlags(cmd)
	if err != nil {
		return err
	}

	opts := driver.ReindentOptions{
		Mode:     rf.mode(),
		Jobs:     rf.jobs,
		Resolver: resolver,
		Tracer:   tracer,
	}
	if rf.check && !rf.noCache {
		cache, cacheErr := driver.OpenDiskCache("jsindent")
		if cacheErr != nil && !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "reindent: cache disabled: %v\n", cacheErr)
		}
		opts.Cache = cache
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	ctx := cmd.Context()
	collectIdx := timerBegin(timer, "collect")
	files, err := driver.CollectFiles(ctx, args, resolver)
	timerEnd(timer, collectIdx, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return driver.ErrNoFiles
	}

	runIdx := timerBegin(timer, "reindent")
	var results []driver.FileResult
	if opts.Mode != driver.ModeStdout && !quiet && rf.format == "text" && shouldUseTUI(rf.ui, len(files)) {
		results, err = runReindentWithUI(ctx, "reindent", files, opts)
	} else {
		results, err = driver.ReindentPaths(ctx, files, opts)
	}
	timerEnd(timer, runIdx, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var hasErrors, hasChanges bool
	switch {
	case rf.format == "json":
		hasErrors, hasChanges, err = renderReindentJSON(out, results, opts.Mode)
		if err != nil {
			return err
		}
	case rf.stdout:
		hasErrors = renderReindentStdout(out, cmd.ErrOrStderr(), results)
	case rf.diff:
		hasErrors, hasChanges = renderReindentDiff(out, cmd.ErrOrStderr(), results)
	default:
		hasErrors, hasChanges = renderReindentText(out, cmd.ErrOrStderr(), results, opts.Mode, quiet)
	}

	if rf.explain && hasChanges {
		useColor, _ := colorEnabled(cmd, os.Stdout)
		if err := explainChanges(out, results, resolver, useColor); err != nil {
			return err
		}
	}

	if timer != nil {
		for _, res := range results {
			timer.AddFile(res.Path, res.Elapsed)
		}
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary(5))
	}

	if hasErrors {
		return fmt.Errorf("reindent: failed to process some files")
	}
	if rf.check && hasChanges {
		return errChangesRequired
	}
	return nil
}

func timerBegin(t *observ.Timer, name string) int {
	if t == nil {
		return -1
	}
	return t.Begin(name)
}

func timerEnd(t *observ.Timer, idx int, note string) {
	if t == nil || idx < 0 {
		return
	}
	t.End(idx, note)
}

func reportFileError(errOut io.Writer, res driver.FileResult) {
	fmt.Fprintf(errOut, "%s %s: %v\n", color.RedString("error"), res.Path, res.Err)
}

func renderReindentText(out, errOut io.Writer, results []driver.FileResult, mode driver.Mode, quiet bool) (hasErrors, hasChanges bool) {
	changed := 0
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportFileError(errOut, res)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		changed++
		if quiet {
			continue
		}
		if mode == driver.ModeCheck {
			fmt.Fprintf(out, "%s %s\n", color.YellowString("would reindent"), res.Path)
			continue
		}
		fmt.Fprintf(out, "%s %s (%d lines)\n", color.GreenString("reindented"), res.Path, res.Stats.Changed)
	}
	if quiet {
		return hasErrors, hasChanges
	}
	verb := "reindented"
	if mode == driver.ModeCheck {
		verb = "would be reindented"
	}
	fmt.Fprintf(out, "%d of %d files %s\n", changed, len(results), verb)
	return hasErrors, hasChanges
}

func renderReindentStdout(out, errOut io.Writer, results []driver.FileResult) (hasErrors bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportFileError(errOut, res)
			continue
		}
		_, _ = out.Write(res.Output)
	}
	return hasErrors
}

func renderReindentDiff(out, errOut io.Writer, results []driver.FileResult) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportFileError(errOut, res)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		fmt.Fprint(out, driver.UnifiedDiff(res.Path, string(res.Original), string(res.Output)))
	}
	return hasErrors, hasChanges
}

type reindentJSON struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Cached  bool   `json:"cached,omitempty"`
	Lines   int    `json:"lines"`
	Rewrote int    `json:"rewritten_lines"`
	Frozen  int    `json:"frozen_lines"`
	Error   string `json:"error,omitempty"`
	Check   bool   `json:"check"`
}

func renderReindentJSON(out io.Writer, results []driver.FileResult, mode driver.Mode) (hasErrors, hasChanges bool, err error) {
	payload := make([]reindentJSON, 0, len(results))
	for _, res := range results {
		jr := reindentJSON{
			Path:    res.Path,
			Changed: res.Changed,
			Cached:  res.Cached,
			Lines:   res.Stats.Lines,
			Rewrote: res.Stats.Changed,
			Frozen:  res.Stats.Frozen,
			Check:   mode == driver.ModeCheck,
		}
		if res.Err != nil {
			hasErrors = true
			jr.Error = res.Err.Error()
		}
		hasChanges = hasChanges || res.Changed
		payload = append(payload, jr)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return hasErrors, hasChanges, enc.Encode(payload)
}

// explainChanges reloads every changed file and prints one diagnostic per
// misindented line.
func explainChanges(out io.Writer, results []driver.FileResult, resolver *driver.Resolver, useColor bool) error {
	fs := source.NewFileSet()
	bag := diag.NewBag(0)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	for _, res := range results {
		if res.Err != nil || !res.Changed {
			continue
		}
		settings, err := resolver.For(res.Path)
		if err != nil {
			return err
		}
		id, err := fs.Load(res.Path)
		if err != nil {
			return err
		}
		file := fs.Get(id)
		reindented, err := driver.ReindentSource(file, settings)
		if err != nil {
			return err
		}
		driver.ReportMismatches(file, reindented.Text, settings, reporter)
	}
	bag.Sort()
	return diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{Color: useColor, ShowNotes: true})
}
