package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/k3pistudies/k3piplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <root-input-file> <tree-name>

Prints float64 branches of a tree as an aligned table.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	var (
		cols = flag.String("cols", "", "comma-separated branch names (default: all branches)")
		n    = flag.Int("n", 10, "maximum number of rows to print (-1 for all)")
	)
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 2 {
		printUsage()
		log.Fatal("Invalid arguments")
	}
	fname, tname := flag.Arg(0), flag.Arg(1)

	var columns []string
	if *cols != "" {
		columns = k3piplot.SplitCommaSeparated(*cols)
	} else {
		var err error
		columns, err = k3piplot.TreeColumns(fname, tname)
		if err != nil {
			log.Fatal(err)
		}
	}

	var rows [][]string
	err := k3piplot.ScanTree(fname, tname, columns, func(vals []float64) error {
		if *n >= 0 && len(rows) >= *n {
			return nil
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := k3piplot.PrintRows(os.Stdout, columns, rows); err != nil {
		log.Fatal(err)
	}
}
