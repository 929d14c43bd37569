package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jsindent/internal/indent"
	"jsindent/internal/source"
	"jsindent/internal/trace"
)

// ErrNoFiles is returned when the given paths hold no matching file.
var ErrNoFiles = errors.New("no source files found")

// Mode selects what ReindentPaths does with the result.
type Mode uint8

const (
	// ModeWrite rewrites changed files in place.
	ModeWrite Mode = iota
	// ModeCheck only reports which files would change.
	ModeCheck
	// ModeStdout returns the reindented text without touching the files.
	ModeStdout
)

// ReindentOptions configures ReindentPaths.
type ReindentOptions struct {
	Mode     Mode
	Jobs     int       // <= 0 means GOMAXPROCS
	Resolver *Resolver // nil means NewResolver with no overrides
	Progress ProgressSink
	Cache    *DiskCache // consulted in ModeCheck only
	Tracer   trace.Tracer
}

// FileResult captures the result of reindenting a single file.
type FileResult struct {
	Path    string
	Changed bool
	Cached  bool
	Stats   ReindentStats
	// Original and Output are set in ModeStdout, both with '\n' line endings.
	Original []byte
	Output   []byte
	Err      error
	Elapsed  time.Duration
}

// ReindentPaths reindents the given files and directories (recursively
// collecting files with a configured extension) in parallel. Per-file
// failures are reported in FileResult.Err; the returned error is reserved
// for collection failures and cancellation. Results are sorted by path.
func ReindentPaths(ctx context.Context, paths []string, opts ReindentOptions) ([]FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = NewResolver(noOverrides)
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}

	span := trace.Begin(tracer, trace.ScopeRun, "reindent", 0)
	files, err := CollectFiles(ctx, paths, resolver)
	if err != nil {
		span.End("collect failed")
		return nil, err
	}
	if len(files) == 0 {
		span.End("no files")
		return nil, ErrNoFiles
	}
	emitQueued(opts.Progress, files)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = reindentOne(path, resolver, opts, tracer, span.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End("cancelled")
		return nil, err
	}
	span.Field("files", strconv.Itoa(len(files))).End("")
	return results, nil
}

func reindentOne(path string, resolver *Resolver, opts ReindentOptions, tracer trace.Tracer, parent uint64) FileResult {
	start := time.Now()
	res := FileResult{Path: path}
	span := trace.Begin(tracer, trace.ScopeFile, "file", parent).Field("path", path)
	fail := func(stage Stage, err error) FileResult {
		res.Err = err
		res.Elapsed = time.Since(start)
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: res.Elapsed})
		span.End("error: " + err.Error())
		return res
	}

	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	settings, err := resolver.For(path)
	if err != nil {
		return fail(StageLoad, err)
	}
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return fail(StageLoad, err)
	}
	file := fileSet.Get(id)

	var key Digest
	if opts.Mode == ModeCheck && opts.Cache != nil {
		key = CacheKey(file.Hash, settings)
		var cached DiskPayload
		if ok, err := opts.Cache.Get(key, &cached); err == nil && ok {
			res.Changed, res.Stats, res.Cached = cached.Changed, cached.Stats, true
			res.Elapsed = time.Since(start)
			emit(opts.Progress, Event{File: path, Stage: StageIndent, Status: StatusDone, Changed: res.Changed, Cached: true, Elapsed: res.Elapsed})
			span.End("cached")
			return res
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageIndent, Status: StatusWorking})
	out, err := ReindentSource(file, settings, indent.WithTracer(tracer), indent.WithParentSpan(span.ID()))
	if err != nil {
		return fail(StageIndent, err)
	}
	res.Changed = out.Changed()
	res.Stats = out.Stats

	switch opts.Mode {
	case ModeCheck:
		if opts.Cache != nil {
			if err := opts.Cache.Put(key, &DiskPayload{Path: path, Changed: res.Changed, Stats: res.Stats}); err != nil {
				trace.Point(tracer, trace.ScopeFile, "cache", "put failed: "+err.Error(), span.ID())
			}
		}
	case ModeStdout:
		res.Original = file.Content
		res.Output = out.Text
	case ModeWrite:
		if res.Changed {
			emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
			if err := writePreservingMode(path, file.Restore(out.Text)); err != nil {
				return fail(StageWrite, err)
			}
		}
	}

	res.Elapsed = time.Since(start)
	emit(opts.Progress, Event{File: path, Stage: StageIndent, Status: StatusDone, Changed: res.Changed, Elapsed: res.Elapsed})
	span.Field("changed", strconv.Itoa(res.Stats.Changed)).End("")
	return res
}

func writePreservingMode(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, data, mode.Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// CollectFiles expands paths into a sorted, de-duplicated file list. Files
// named explicitly are always included; directories are walked for files
// whose extension the resolved settings accept, skipping hidden directories
// and node_modules.
func CollectFiles(ctx context.Context, paths []string, resolver *Resolver) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			settings, err := resolver.For(path)
			if err != nil {
				return err
			}
			if settings.Matches(path) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

func skipDir(name string) bool {
	return name == "node_modules" || (strings.HasPrefix(name, ".") && name != "." && name != "..")
}
