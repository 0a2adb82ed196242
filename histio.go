package k3piplot

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/rootcnv"
	"go-hep.org/x/hep/rootio"
)

// NamedH1D pairs a histogram with the name under which it is stored.
type NamedH1D struct {
	Name string
	Hist *hbook.H1D
}

// LoadROOTH1D reads the named 1D histogram from a ROOT file. A missing
// name is reported on stdout and yields a nil histogram without error.
func LoadROOTH1D(fname, hname string) (*hbook.H1D, error) {
	f, err := rootio.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	obj, err := f.Get(hname)
	if err != nil {
		fmt.Printf("did not find histogram named %q in %s\n", hname, fname)
		return nil, nil
	}

	h1, ok := obj.(rootio.H1)
	if !ok {
		return nil, fmt.Errorf("k3piplot: %q in %s is not a 1D histogram", hname, fname)
	}
	return rootcnv.H1D(h1)
}

// ROOTKeys returns the names of the keys stored in a ROOT file.
func ROOTKeys(fname string) ([]string, error) {
	f, err := rootio.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	for _, k := range f.Keys() {
		names = append(names, k.Name())
	}
	return names, nil
}

// SaveH1Ds writes histograms to a YODA text file.
func SaveH1Ds(fname string, hists ...NamedH1D) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	for _, nh := range hists {
		nh.Hist.Annotation()["name"] = nh.Name
		raw, err := nh.Hist.MarshalYODA()
		if err != nil {
			f.Close()
			return err
		}
		if _, err := f.Write(raw); err != nil {
			f.Close()
			return err
		}
		if _, err := f.Write([]byte("\n")); err != nil {
			f.Close()
			return err
		}
	}

	return f.Close()
}

// LoadH1Ds reads all 1D histograms from a YODA text file, in file order.
func LoadH1Ds(fname string) ([]NamedH1D, error) {
	raw, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	var (
		hists []NamedH1D
		block bytes.Buffer
		name  string
		in    bool
	)
	for _, line := range strings.SplitAfter(string(raw), "\n") {
		switch {
		case strings.HasPrefix(line, "BEGIN YODA_HISTO1D"):
			in = true
			block.Reset()
			name = ""
			if fields := strings.Fields(line); len(fields) > 2 {
				name = strings.TrimPrefix(fields[2], "/")
			}
			block.WriteString(line)
		case in && strings.HasPrefix(line, "END YODA_HISTO1D"):
			block.WriteString(line)
			h := hbook.NewH1D(1, 0, 1)
			if err := h.UnmarshalYODA(block.Bytes()); err != nil {
				return nil, fmt.Errorf("k3piplot: parsing %q in %s: %v", name, fname, err)
			}
			hists = append(hists, NamedH1D{Name: name, Hist: h})
			in = false
		case in:
			block.WriteString(line)
		}
	}
	return hists, nil
}

// LoadH1D reads a single named histogram from a YODA text file, with the
// same missing-name contract as LoadROOTH1D.
func LoadH1D(fname, hname string) (*hbook.H1D, error) {
	hists, err := LoadH1Ds(fname)
	if err != nil {
		return nil, err
	}
	for _, nh := range hists {
		if nh.Name == hname {
			return nh.Hist, nil
		}
	}
	fmt.Printf("did not find histogram named %q in %s\n", hname, fname)
	return nil, nil
}
