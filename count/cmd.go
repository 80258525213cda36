package count

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"silcount/analyze"
	"silcount/imageio"
	"silcount/parallel"
	"silcount/silhouette"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Paths  []string `arg:"" optional:"" help:"Image files or folders to scan" default:"test.jpg" type:"path"`
	Stats  bool     `help:"Log region size statistics for every image" default:"false"`
	Labels string   `help:"Write a label map of every image into this folder" type:"path" group:"labels"`
	Format string   `help:"Label map format" enum:"png,bmp,tiff,gif" default:"png" group:"labels"`

	analyze.Params `embed:""`

	Out io.Writer `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if _, err := c.Options(); err != nil {
		return err
	}

	for i, p := range c.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("invalid path %q: %w", p, err)
		}
		c.Paths[i] = abs
	}

	return nil
}

type job struct {
	path  string
	count int
	err   error
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if c.Labels != "" {
		if err := os.MkdirAll(c.Labels, 0o755); err != nil {
			return fmt.Errorf("unable to create labels folder %q: %w", c.Labels, err)
		}
	}

	files, err := expand(c.Paths)
	if err != nil {
		return err
	}

	var extra []silhouette.Option
	if c.Stats || c.Labels != "" {
		extra = append(extra, silhouette.WithRegions(true))
	}
	if c.Labels != "" {
		extra = append(extra, silhouette.WithLabels(true))
	}

	jobs := make([]job, len(files))
	var silhouettes, errCount atomic.Uint64
	for i, file := range files {
		jobs[i].path = file
		pool.Go(func() {
			logger := slog.Default().With("file", file)

			res, err := analyze.File(logger, file, c.Params, extra...)
			if err != nil {
				errCount.Add(1)
				jobs[i].err = err
				logger.Error("could not count silhouettes", "error", err)
				return
			}
			jobs[i].count = res.Count
			silhouettes.Add(uint64(res.Count))

			if c.Stats {
				logger.Info("regions", "summary", analyze.Summarize(res))
			}
			if c.Labels != "" {
				if err := c.saveLabels(res, file); err != nil {
					errCount.Add(1)
					jobs[i].err = err
					logger.Error("could not save label map", "dir", c.Labels, "error", err)
				}
			}
		})
	}

	pool.Wait()

	c.report(jobs)

	errors := errCount.Load()
	slog.Info("stats", "images", len(files), "silhouettes", silhouettes.Load(), "errors", errors)
	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

// report prints one line per image in argument order.
func (c *CLICmd) report(jobs []job) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	if len(jobs) == 1 && jobs[0].err == nil {
		fmt.Fprintf(out, "Number of silhouettes: %d\n", jobs[0].count)
		return
	}
	for _, j := range jobs {
		if j.err != nil {
			fmt.Fprintf(out, "%s: error\n", j.path)
			continue
		}
		fmt.Fprintf(out, "%s: %d\n", j.path, j.count)
	}
}

func (c *CLICmd) saveLabels(res silhouette.Result, file string) error {
	img, err := imageio.LabelImage(res)
	if err != nil {
		return err
	}

	base := filepath.Base(file)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + "-labels"
	path, err := imageio.Save(img, c.Format, c.Labels, name)
	if err != nil {
		return err
	}
	slog.Debug("label map written", "file", file, "to", path)
	return nil
}

// expand replaces folders by the images they contain, sorted by name. Files
// inside a folder that do not look like a supported image are skipped.
func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("unable to read folder %q: %w", p, err)
		}
		for _, e := range entries {
			if !e.Type().IsRegular() {
				continue
			}
			name := filepath.Join(p, e.Name())
			if _, _, err := imageio.Probe(name); err != nil {
				slog.Debug("skipping", "file", name, "error", err)
				continue
			}
			files = append(files, name)
		}
	}
	return files, nil
}
