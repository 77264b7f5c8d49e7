package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"surge/internal/diag"
	"surge/internal/langver"
	"surge/internal/parsecache"
	"surge/internal/source"
)

// listSourceFiles returns a sorted list of every ".jl" file under dir, for a
// deterministic fan-out order regardless of how many workers race to finish.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".jl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// jobCount clamps jobs to a sane worker count: the caller's choice if
// positive, otherwise the number of usable CPUs, never more workers than
// there are files to hand them.
func jobCount(jobs, nfiles int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if nfiles < jobs {
		jobs = nfiles
	}
	if jobs < 1 {
		jobs = 1
	}
	return jobs
}

// preload registers every file under files into fset sequentially, since
// FileSet.Load mutates shared state and is not safe to call concurrently.
// A file that fails to load gets no entry in the returned map; the caller
// turns that into a per-file diagnostic instead of failing the whole run.
func preload(fset *source.FileSet, files []string) (map[string]source.FileID, map[string]error) {
	ids := make(map[string]source.FileID, len(files))
	errs := make(map[string]error)
	for _, path := range files {
		id, err := fset.Load(path)
		if err != nil {
			errs[path] = err
			continue
		}
		ids[path] = id
	}
	return ids, errs
}

func loadFailureResultBag(err error) *diag.Bag {
	bag := diag.NewBag()
	bag.Add(diag.New(diag.SeverityError, diag.CodeLexError, source.Span{}, "failed to load file: "+err.Error()))
	return bag
}

// TokenizeDir tokenizes every ".jl" file under dir concurrently. The FileSet
// is populated sequentially first (FileSet.Load is not safe for concurrent
// callers); each worker thereafter only reads its own file's content.
func TokenizeDir(ctx context.Context, fset *source.FileSet, cache *parsecache.Cache, dir string, jobs int) ([]TokenizeResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	fileIDs, loadErrs := preload(fset, files)

	results := make([]TokenizeResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobCount(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr, bad := loadErrs[path]; bad {
				results[i] = TokenizeResult{Path: path, Bag: loadFailureResultBag(loadErr)}
				return nil
			}
			res, err := TokenizeLoaded(fset, cache, path, fileIDs[path])
			if err != nil {
				results[i] = TokenizeResult{Path: path, Bag: loadFailureResultBag(err)}
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// ParseDir parses every ".jl" file under dir concurrently under features.
func ParseDir(ctx context.Context, fset *source.FileSet, dir string, features langver.Set, jobs int) ([]ParseResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	fileIDs, loadErrs := preload(fset, files)

	results := make([]ParseResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobCount(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr, bad := loadErrs[path]; bad {
				results[i] = ParseResult{Path: path, Bag: loadFailureResultBag(loadErr)}
				return nil
			}
			res, err := ParseLoaded(fset, path, fileIDs[path], features)
			if err != nil {
				results[i] = ParseResult{Path: path, Bag: loadFailureResultBag(err)}
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// DiagnoseDir runs Diagnose over every ".jl" file under dir concurrently.
func DiagnoseDir(ctx context.Context, fset *source.FileSet, dir string, features langver.Set, jobs int) ([]DiagnoseResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	fileIDs, loadErrs := preload(fset, files)

	results := make([]DiagnoseResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobCount(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr, bad := loadErrs[path]; bad {
				results[i] = DiagnoseResult{Path: path, Bag: loadFailureResultBag(loadErr)}
				return nil
			}
			res, err := DiagnoseLoaded(fset, path, fileIDs[path], features)
			if err != nil {
				results[i] = DiagnoseResult{Path: path, Bag: loadFailureResultBag(err)}
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
