package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cmakecheck/internal/diag"
	"cmakecheck/internal/observ"
	"cmakecheck/internal/rules"
	"cmakecheck/internal/source"
)

// ProgressObserver receives file-level events during a run. Implementations
// must tolerate concurrent OnFileStart and OnFileDone calls.
type ProgressObserver interface {
	OnStart(totalFiles int)
	OnFileStart(path string)
	OnFileDone(path string, findings int, parseFailed bool)
	OnFinish()
}

// Options configures a tree check.
type Options struct {
	Root             string
	Recurse          bool
	RespectGitignore bool
	// Limit caps emitted diagnostics across the whole run; 0 = unlimited.
	Limit int
	// Jobs is the worker count; <= 0 means GOMAXPROCS.
	Jobs         int
	ExtraAliases []string
	// ExcludeRules names catalogue rules to skip for the whole run.
	ExcludeRules []string
	// Cache, when non-nil, memoizes per-file results by content hash.
	Cache    *DiskCache
	Observer ProgressObserver
}

// CheckDir checks every CMake script under opts.Root. Files are evaluated
// in parallel; the merge into the run-level bag is strictly sequential in
// path order so output is deterministic.
func CheckDir(ctx context.Context, opts Options) (*RunResult, error) {
	timer := observ.NewTimer()

	// OnFinish must fire on every exit path, including walk failures and
	// empty trees, so channel-backed observers always unblock.
	if opts.Observer != nil {
		defer opts.Observer.OnFinish()
	}

	walkPhase := timer.Begin("walk")
	files, err := ListScriptFiles(opts.Root, WalkOptions{
		Recurse:          opts.Recurse,
		RespectGitignore: opts.RespectGitignore,
	})
	timer.End(walkPhase, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, err
	}

	baseDir := opts.Root
	if st, statErr := os.Stat(baseDir); statErr == nil && !st.IsDir() {
		baseDir = filepath.Dir(baseDir)
	}
	fileSet := source.NewFileSetWithBase(baseDir)
	res := &RunResult{
		FileSet: fileSet,
		Bag:     diag.NewBag(opts.Limit),
	}
	if opts.Observer != nil {
		opts.Observer.OnStart(len(files))
	}
	if len(files) == 0 {
		report := timer.Report()
		res.Timing = &report
		return res, nil
	}

	// FileSet mutation is not thread-safe; preload sequentially.
	loadPhase := timer.Begin("load")
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		if _, err := fileSet.Load(path); err != nil {
			loadErrors[path] = err
		}
	}
	timer.End(loadPhase, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	catalogue := rules.Exclude(rules.Default(), opts.ExcludeRules)
	checker := NewChecker(rules.NewEngine(catalogue...), opts.ExtraAliases)
	results := make([]FileResult, len(files))

	checkPhase := timer.Begin("check")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if opts.Observer != nil {
				opts.Observer.OnFileStart(path)
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(0)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = FileResult{Path: path, Bag: bag}
				notify(opts.Observer, &results[i])
				return nil
			}

			file, ok := fileSet.GetByPath(path)
			if !ok {
				return fmt.Errorf("%s: not in file set after preload", path)
			}
			results[i] = checkOneFile(checker, fileSet, file.ID, opts.Cache)
			notify(opts.Observer, &results[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		timer.End(checkPhase, "aborted")
		return res, err
	}
	timer.End(checkPhase, "")

	// Single-writer merge: totals and the truncation counter only ever
	// change here.
	mergePhase := timer.Begin("merge")
	for i := range results {
		res.Files = append(res.Files, results[i])
		res.Bag.Merge(results[i].Bag)
	}
	res.Bag.Sort()
	res.CheckedFiles = len(files)
	timer.End(mergePhase, fmt.Sprintf("%d findings", res.Bag.Total()))

	report := timer.Report()
	res.Timing = &report
	return res, nil
}

func notify(obs ProgressObserver, fr *FileResult) {
	if obs != nil {
		obs.OnFileDone(fr.Path, fr.Bag.Total(), fr.Bag.HasParseErrors())
	}
}

// checkOneFile consults the disk cache before running the pipeline. Cache
// failures are treated as misses; checking must never fail because the
// cache directory is unhealthy.
func checkOneFile(checker *Checker, fs *source.FileSet, id source.FileID, cache *DiskCache) FileResult {
	file := fs.Get(id)
	if cache != nil {
		var payload DiskPayload
		if ok, err := cache.Get(file.Hash, &payload); err == nil && ok {
			fr := payloadToResult(&payload, file.Path, id)
			fr.Bag.Sort()
			return fr
		}
	}
	fr := checker.CheckFile(fs, id)
	if cache != nil {
		_ = cache.Put(file.Hash, resultToPayload(&fr))
	}
	return fr
}
