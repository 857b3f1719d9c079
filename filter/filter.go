// Package filter applies a compiled bq query to files and directories:
// one-shot scans with a bounded worker pool, named queries from a YAML
// config, and a watch mode that re-evaluates files as they change.
package filter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/KyussCaesar/bq"
)

// Result is the outcome of applying a query to one file.
type Result struct {
	Path    string `json:"path"`
	Matched bool   `json:"matched"`
}

// ProcessFile reads one file and applies the matcher to its contents.
func ProcessFile(m *bq.Matcher, path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return m.Query(string(content)), nil
}

// ProcessFiles applies the matcher to each of paths, recursing into
// directories. Results are sorted by path.
func ProcessFiles(ctx context.Context, logger *zap.Logger, m *bq.Matcher, paths []string) ([]Result, error) {
	var all []Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, m, path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, results...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Path < all[j].Path })
	return all, nil
}

// ProcessPath applies the matcher to a single file, or to every regular
// file under a directory. Directory scans run on a bounded worker pool
// with a progress bar, since the matcher is safe for concurrent use.
func ProcessPath(ctx context.Context, logger *zap.Logger, m *bq.Matcher, path string) ([]Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		matched, err := ProcessFile(m, path)
		if err != nil {
			return nil, err
		}
		return []Result{{Path: path, Matched: matched}}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

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

	resultChan := make(chan Result, len(files))
	errorChan := make(chan error, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(fp string) {
				defer func() { <-sem }()

				matched, err := ProcessFile(m, fp)
				if err != nil {
					if logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
					resultChan <- Result{}
				} else {
					resultChan <- Result{Path: fp, Matched: matched}
					errorChan <- nil
				}
				bar.Add(1)
			}(filePath)
		}
	}

	var results []Result
	for range files {
		if err := <-errorChan; err != nil {
			<-resultChan
			continue
		}
		if r := <-resultChan; r.Path != "" {
			results = append(results, r)
		}
	}

	fmt.Println()
	return results, nil
}
