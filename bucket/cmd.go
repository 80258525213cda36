package bucket

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"silcount/analyze"
	"silcount/imageio"
	"silcount/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan string `help:"Source folder to scan" default:"."`
	Dest string `help:"Destination folder; one sub-folder per silhouette count is created. Relative to scan dir if not absolute." default:"buckets"`
	Move bool   `help:"Move images instead of copying them" default:"false"`

	analyze.Params `embed:""`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if _, err := c.Options(); err != nil {
		return err
	}

	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	fileOp := copyFile
	if c.Move {
		fileOp = moveFile
	}

	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var mu sync.Mutex
	buckets := make(map[int]int)
	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if !file.Type().IsRegular() {
			continue
		}

		pool.Go(func() {
			name := filepath.Join(c.Scan, file.Name())
			logger := slog.Default().With("file", name)

			if _, _, err := imageio.Probe(name); err != nil {
				logger.Debug("skipping", "error", err)
				return
			}

			res, err := analyze.File(logger, name, c.Params)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not count silhouettes", "error", err)
				return
			}

			destDir := filepath.Join(c.Dest, strconv.Itoa(res.Count))
			if err := os.MkdirAll(destDir, 0o755); err != nil {
				errCount.Add(1)
				logger.Error("unable to create bucket folder", "dir", destDir, "error", err)
				return
			}

			dest := filepath.Join(destDir, file.Name())
			if err := fileOp(name, dest); err != nil {
				errCount.Add(1)
				logger.Error("could not operate image", "to", dest, "error", err)
				return
			}

			processedCount.Add(1)
			mu.Lock()
			buckets[res.Count]++
			mu.Unlock()
		})
	}

	pool.Wait()

	for _, n := range slices.Sorted(maps.Keys(buckets)) {
		slog.Info("bucket", "silhouettes", n, "images", buckets[n])
	}
	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}
