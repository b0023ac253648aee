package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"

	"github.com/katalvlaran/placer/report"
)

// writeFile creates path (and its directory) and streams fill into it.
func writeFile(path string, fill func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err = fill(bw); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

// saveIn saves p as dir/name, creating dir if needed.
func saveIn(dir, name string, p *plot.Plot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return report.SavePlot(p, filepath.Join(dir, name))
}
