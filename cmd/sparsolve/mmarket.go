// SPDX-License-Identifier: MIT

// Matrix Market coordinate ingestion. The solver engine understands only the
// CSC triple; converting from the interchange format is this front end's job.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsolve/csc"
)

// Matrix Market header fields this reader accepts.
const (
	mmBanner    = "%%MatrixMarket"
	mmObject    = "matrix"
	mmFormat    = "coordinate"
	mmField     = "real"
	mmGeneral   = "general"
	mmSymmetric = "symmetric"
)

var (
	errBadHeader = errors.New("malformed MatrixMarket header")
	errBadEntry  = errors.New("malformed MatrixMarket entry")
)

// readMatrixMarket parses a Matrix Market file in coordinate/real layout,
// "general" or "symmetric" symmetry. Symmetric files store the lower
// triangle; off-diagonal entries are mirrored so the returned matrix is the
// full operator (what the LU path needs; the Cholesky path re-extracts the
// lower triangle itself).
func readMatrixMarket(r io.Reader) (*csc.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	// Banner line: %%MatrixMarket matrix coordinate real general|symmetric
	if !sc.Scan() {
		return nil, errBadHeader
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 5 || fields[0] != mmBanner || fields[1] != mmObject ||
		fields[2] != mmFormat || fields[3] != mmField {
		return nil, fmt.Errorf("%w: %q", errBadHeader, sc.Text())
	}
	symmetric := false
	switch fields[4] {
	case mmGeneral:
	case mmSymmetric:
		symmetric = true
	default:
		return nil, fmt.Errorf("%w: unsupported symmetry %q", errBadHeader, fields[4])
	}

	// Size line (after any % comments): rows cols nnz
	var rows, cols, nnz int
	sized := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if _, err := fmt.Sscan(line, &rows, &cols, &nnz); err != nil {
			return nil, fmt.Errorf("%w: size line %q", errBadHeader, line)
		}
		sized = true

		break
	}
	if !sized {
		return nil, errBadHeader
	}

	ri := make([]int32, 0, nnz)
	ci := make([]int32, 0, nnz)
	vx := make([]float64, 0, nnz)
	read := 0
	for sc.Scan() && read < nnz {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		var i, j int
		var v float64
		if _, err := fmt.Sscan(line, &i, &j, &v); err != nil {
			return nil, fmt.Errorf("%w: %q", errBadEntry, line)
		}
		// Entries are 1-based in the interchange format.
		ri = append(ri, int32(i-1))
		ci = append(ci, int32(j-1))
		vx = append(vx, v)
		if symmetric && i != j {
			ri = append(ri, int32(j-1))
			ci = append(ci, int32(i-1))
			vx = append(vx, v)
		}
		read++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if read != nnz {
		return nil, fmt.Errorf("%w: got %d entries, header promised %d", errBadEntry, read, nnz)
	}

	return csc.FromTriplets(int32(rows), int32(cols), ri, ci, vx)
}

// readMatrixFile opens and parses a Matrix Market file.
func readMatrixFile(path string) (*csc.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := readMatrixMarket(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// readVector parses a dense right-hand side: one value per line, blank lines
// and % comments skipped. The entry count must match n exactly.
func readVector(r io.Reader, n int32) ([]float64, error) {
	sc := bufio.NewScanner(r)
	b := make([]float64, 0, n)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("bad vector entry %q: %w", line, err)
		}
		b = append(b, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if int32(len(b)) != n {
		return nil, fmt.Errorf("vector has %d entries, system needs %d", len(b), n)
	}

	return b, nil
}

// readVectorFile opens and parses a right-hand-side file.
func readVectorFile(path string, n int32) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := readVector(f, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}
