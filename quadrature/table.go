// SPDX-License-Identifier: MIT

package quadrature

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Table is an immutable set of quadrature nodes and weights.
type Table struct {
	nodes   []float64
	weights []float64
}

// NewTable copies nodes and weights into a Table.
// Errors: ErrMalformedTable for empty, unequal-length or non-finite input.
func NewTable(nodes, weights []float64) (Table, error) {
	if len(nodes) == 0 || len(nodes) != len(weights) {
		return Table{}, fmt.Errorf("%d nodes, %d weights: %w", len(nodes), len(weights), ErrMalformedTable)
	}
	for i := range nodes {
		if !finite(nodes[i]) || !finite(weights[i]) {
			return Table{}, fmt.Errorf("row %d: non-finite value: %w", i, ErrMalformedTable)
		}
	}

	return Table{
		nodes:   append([]float64(nil), nodes...),
		weights: append([]float64(nil), weights...),
	}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Len returns the number of nodes.
func (t Table) Len() int { return len(t.nodes) }

// Nodes returns a copy of the nodes.
func (t Table) Nodes() []float64 { return append([]float64(nil), t.nodes...) }

// Weights returns a copy of the weights.
func (t Table) Weights() []float64 { return append([]float64(nil), t.weights...) }

// TableProvider supplies Gauss-Hermite node/weight tables by point count.
type TableProvider interface {
	HermiteTable(points int) (Table, error)
}

// FileProvider reads tables from Dir/HermiteXWnn.dat, nn being the zero-padded
// point count. Each call opens, reads and closes one file.
type FileProvider struct {
	Dir string
}

// TableFileName returns the file name FileProvider looks up for points.
func TableFileName(points int) string {
	return fmt.Sprintf("HermiteXW%02d.dat", points)
}

// HermiteTable implements TableProvider.
func (p FileProvider) HermiteTable(points int) (Table, error) {
	if points < 1 {
		return Table{}, quadErrorf("FileProvider", ErrInvalidPoints)
	}
	path := filepath.Join(p.Dir, TableFileName(points))
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, quadErrorf("FileProvider", fmt.Errorf("%s: %w", path, ErrTableNotFound))
		}
		return Table{}, quadErrorf("FileProvider", err)
	}
	defer f.Close()

	t, err := ParseTable(f)
	if err != nil {
		return Table{}, quadErrorf("FileProvider", fmt.Errorf("%s: %w", path, err))
	}
	if t.Len() != points {
		return Table{}, quadErrorf("FileProvider",
			fmt.Errorf("%s: %d rows for %d points: %w", path, t.Len(), points, ErrMalformedTable))
	}

	return t, nil
}

// ParseTable reads whitespace-separated "node weight" lines; blank lines are skipped.
// Errors: ErrMalformedTable (wrong field count, bad number, no rows) or the reader's error.
func ParseTable(r io.Reader) (Table, error) {
	var nodes, weights []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return Table{}, fmt.Errorf("line %d: %d fields: %w", line, len(fields), ErrMalformedTable)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Table{}, fmt.Errorf("line %d: %v: %w", line, err, ErrMalformedTable)
		}
		w, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Table{}, fmt.Errorf("line %d: %v: %w", line, err, ErrMalformedTable)
		}
		nodes = append(nodes, x)
		weights = append(weights, w)
	}
	if err := sc.Err(); err != nil {
		return Table{}, err
	}

	return NewTable(nodes, weights)
}

// WriteTable writes t in the format ParseTable reads, one "node weight" per line.
func WriteTable(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	for i := range t.nodes {
		if _, err := fmt.Fprintf(bw, "%.17g %.17g\n", t.nodes[i], t.weights[i]); err != nil {
			return err
		}
	}

	return bw.Flush()
}
