package veil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/veilang/veil/internal/backend"
	"github.com/veilang/veil/internal/types"
	"github.com/veilang/veil/internal/vil"
)

// FileResult pairs a checked program file with its verification outcome.
type FileResult struct {
	Path   string
	Result *types.Result
}

// CheckFiles runs the checker on every rendered program under the given
// paths. Directories are walked for program files and checked with a
// bounded worker pool behind a progress bar; results come back sorted by
// path. Already-rendered programs carry no naming map, so models keep the
// checker's native names.
func CheckFiles(
	ctx context.Context,
	logger *zap.Logger,
	runner backend.Runner,
	paths []string,
	opts []string,
) ([]FileResult, error) {
	var all []FileResult
	for _, path := range paths {
		results, err := checkPath(ctx, logger, runner, path, opts)
		if err != nil {
			if logger != nil {
				logger.Error("Error checking path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, results...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Path < all[j].Path })
	return all, nil
}

func checkPath(
	ctx context.Context,
	logger *zap.Logger,
	runner backend.Runner,
	path string,
	opts []string,
) ([]FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		result, err := checkFile(ctx, runner, path, opts)
		if err != nil {
			return nil, err
		}
		return []FileResult{{Path: path, Result: result}}, nil
	}

	var files []string
	filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err == nil && !fileInfo.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})

	// channels for results and errors
	resultChan := make(chan FileResult, len(files))
	errorChan := make(chan error, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(fp string) {
				defer func() { <-sem }()

				result, err := checkFile(ctx, runner, fp, opts)
				if err != nil {
					if logger != nil {
						logger.Error("Error checking file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
					resultChan <- FileResult{}
				} else {
					resultChan <- FileResult{Path: fp, Result: result}
					errorChan <- nil
				}
				bar.Add(1)
			}(filePath)
		}
	}

	// collect all results
	var results []FileResult
	for range files {
		if err := <-errorChan; err != nil {
			continue
		}
		if r := <-resultChan; r.Result != nil {
			results = append(results, r)
		}
	}

	fmt.Println()
	return results, nil
}

func checkFile(ctx context.Context, runner backend.Runner, path string, opts []string) (*types.Result, error) {
	program, err := vil.FromFile(path)
	if err != nil {
		return nil, err
	}
	_, result, err := runner.Verify(ctx, program, opts)
	if err != nil {
		return nil, fmt.Errorf("error checking %s: %w", path, err)
	}
	return result, nil
}

var desiredExtensions = map[string]bool{
	".vil": true,
	".bpl": true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}
