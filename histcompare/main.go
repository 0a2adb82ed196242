package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go-hep.org/x/hep/hbook"

	"github.com/k3pistudies/k3piplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <file1> <file2>

Draws the named histogram from each of two files superimposed. Files with
a .root extension are read as ROOT files, anything else as YODA text.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	var (
		name   = flag.String("name", "", "histogram name")
		labels = flag.String("labels", "", "comma-separated legend labels")
		title  = flag.String("title", "", "plot title")
		output = flag.String("output", "out.png", "output file")
	)
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 2 || *name == "" {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	legend := k3piplot.SplitCommaSeparated(*labels)
	for len(legend) < 2 {
		legend = append(legend, "")
	}
	for i, l := range legend[:2] {
		if l == "" {
			legend[i] = flag.Arg(i)
		}
	}

	h1 := load(flag.Arg(0), *name)
	h2 := load(flag.Arg(1), *name)

	err := k3piplot.DrawSuperimposed(h1, legend[0], h2, legend[1], *title, *output)
	if err != nil {
		log.Fatal(err)
	}
}

func load(fname, hname string) *hbook.H1D {
	var (
		h   *hbook.H1D
		err error
	)
	if filepath.Ext(fname) == ".root" {
		h, err = k3piplot.LoadROOTH1D(fname, hname)
	} else {
		h, err = k3piplot.LoadH1D(fname, hname)
	}
	if err != nil {
		log.Fatal(err)
	}
	if h == nil {
		listKeys(fname)
		log.Fatalf("histogram %q not found in %s", hname, fname)
	}
	return h
}

func listKeys(fname string) {
	var names []string
	if filepath.Ext(fname) == ".root" {
		keys, err := k3piplot.ROOTKeys(fname)
		if err != nil {
			return
		}
		names = keys
	} else {
		hists, err := k3piplot.LoadH1Ds(fname)
		if err != nil {
			return
		}
		for _, nh := range hists {
			names = append(names, nh.Name)
		}
	}

	fmt.Printf("keys in %s:\n", fname)
	for _, n := range names {
		fmt.Println(n)
	}
}
