package k3piplot

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go-hep.org/x/hep/csvutil"
	"go-hep.org/x/hep/rootio"
)

// OpenCSV opens a comma-separated table. Lines starting with '#' are
// treated as comments.
func OpenCSV(fname string) (*csvutil.Table, error) {
	tbl, err := csvutil.Open(fname)
	if err != nil {
		return nil, err
	}
	tbl.Reader.Comma = ','
	tbl.Reader.Comment = '#'
	return tbl, nil
}

// TrimSpaceCols maps trimmed column names onto their padded originals, for
// tables written with whitespace around the column labels.
func TrimSpaceCols(cols []string) map[string]string {
	aliases := make(map[string]string)
	for _, c := range cols {
		if t := strings.TrimSpace(c); t != c {
			aliases[t] = c
		}
	}
	return aliases
}

// ScanTree reads the given float64 branches of a tree in a ROOT file,
// calling fn once per entry with the branch values in column order.
func ScanTree(fname, tname string, cols []string, fn func(vals []float64) error) error {
	f, err := rootio.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	obj, err := f.Get(tname)
	if err != nil {
		return err
	}
	tree, ok := obj.(rootio.Tree)
	if !ok {
		return fmt.Errorf("k3piplot: %q in %s is not a tree", tname, fname)
	}

	vals := make([]float64, len(cols))
	vars := make([]rootio.ScanVar, len(cols))
	for i, col := range cols {
		vars[i] = rootio.ScanVar{Name: col, Value: &vals[i]}
	}

	sc, err := rootio.NewScannerVars(tree, vars...)
	if err != nil {
		return err
	}
	defer sc.Close()

	for sc.Next() {
		if err := sc.Scan(); err != nil {
			return err
		}
		if err := fn(vals); err != nil {
			return err
		}
	}
	return sc.Err()
}

// TreeColumns returns the branch names of a tree in a ROOT file.
func TreeColumns(fname, tname string) ([]string, error) {
	f, err := rootio.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	obj, err := f.Get(tname)
	if err != nil {
		return nil, err
	}
	tree, ok := obj.(rootio.Tree)
	if !ok {
		return nil, fmt.Errorf("k3piplot: %q in %s is not a tree", tname, fname)
	}

	var names []string
	for _, b := range tree.Branches() {
		names = append(names, b.Name())
	}
	return names, nil
}

// PrintRows writes rows to w as an aligned table under the given header.
func PrintRows(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}
