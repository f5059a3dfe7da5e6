// Package csvfile reads and writes benchmark results as semicolon separated text.
//
// The format is one header row followed by one row per result:
//
//	Algoritmo;Tempo (ms);Comparacoes;Trocas
//	Bubble Sort;0.012;6;4
//
// Times carry exactly three decimal places, counters are plain decimal integers and
// fields are never quoted.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lanrat/sortbench"
	"github.com/lanrat/sortbench/tempfile"
)

// Delimiter separates the fields of a row.
const Delimiter = ';'

// Header is the first row of every file.
var Header = []string{"Algoritmo", "Tempo (ms)", "Comparacoes", "Trocas"}

// Write encodes results to w, header first. An empty result set is rejected with
// sortbench.ErrNoResults before anything is written.
func Write(w io.Writer, results []sortbench.Result) error {
	if len(results) == 0 {
		return sortbench.ErrNoResults
	}
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// record formats a result as one row
func record(r sortbench.Result) []string {
	return []string{
		r.Name,
		strconv.FormatFloat(r.ElapsedMs, 'f', 3, 64),
		strconv.FormatUint(r.Comparisons, 10),
		strconv.FormatUint(r.Swaps, 10),
	}
}

// Save encodes results into w and commits it, or aborts w on any failure so no
// partial output is published.
func Save(w tempfile.Writer, results []sortbench.Result) error {
	if err := Write(w, results); err != nil {
		if abortErr := w.Abort(); abortErr != nil {
			return errors.Join(err, abortErr)
		}
		return err
	}
	return w.Commit()
}

// WriteFile saves results to path, replacing any existing file only once the whole
// file has been written. Empty results are rejected before the file system is touched.
func WriteFile(path string, results []sortbench.Result) error {
	if len(results) == 0 {
		return sortbench.ErrNoResults
	}
	w, err := tempfile.New(path)
	if err != nil {
		return sortbench.NewIOError(err, "create", path)
	}
	if err = Save(w, results); err != nil {
		return sortbench.NewIOError(err, "write", path)
	}
	return nil
}

// Read decodes results written by Write. The header row is required.
func Read(r io.Reader) ([]sortbench.Result, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = len(Header)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csvfile: missing header")
	}
	if err != nil {
		return nil, err
	}
	for i := range Header {
		if header[i] != Header[i] {
			return nil, fmt.Errorf("csvfile: unexpected header field %q, expected %q", header[i], Header[i])
		}
	}

	var results []sortbench.Result
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return results, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		res, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("csvfile: line %d: %w", line, err)
		}
		results = append(results, res)
	}
}

// parseRecord converts one row back into a result
func parseRecord(rec []string) (sortbench.Result, error) {
	elapsed, err := strconv.ParseFloat(rec[1], 64)
	if err != nil {
		return sortbench.Result{}, err
	}
	comparisons, err := strconv.ParseUint(rec[2], 10, 64)
	if err != nil {
		return sortbench.Result{}, err
	}
	swaps, err := strconv.ParseUint(rec[3], 10, 64)
	if err != nil {
		return sortbench.Result{}, err
	}
	return sortbench.Result{Name: rec[0], ElapsedMs: elapsed, Comparisons: comparisons, Swaps: swaps}, nil
}

// ReadFile decodes the results stored at path.
func ReadFile(path string) ([]sortbench.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sortbench.NewIOError(err, "open", path)
	}
	defer f.Close()
	return Read(f)
}
