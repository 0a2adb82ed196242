package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"go-hep.org/x/hep/fmom"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"

	"github.com/k3pistudies/k3piplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <csv-input-file>

Reads generated D0 -> K pi pi pi events from a CSV file and fills
phase-space variable distributions, optionally split into decay-time bins
(one line color per bin).

The table must carry a header row and seventeen columns: px, py, pz, E in
GeV for each of K, OS pi 1, SS pi, OS pi 2 in the AmpGen convention,
followed by the D0 decay time in ps.

options:
`,
	)
	flag.PrintDefaults()
}

var variables = []struct {
	name   string
	xLabel string
	nBins  int
	xMin   float64
	xMax   float64
}{
	{"m12", "m(K pi) (MeV)", 50, 600, 1800},
	{"m34", "m(pi pi) (MeV)", 50, 250, 1300},
	{"c12", "cos(theta_12)", 50, -1, 1},
	{"c34", "cos(theta_34)", 50, -1, 1},
	{"phi", "phi (rad)", 50, 0, 2 * math.Pi},
}

func main() {
	var (
		title    = flag.String("title", "", "plot title")
		output   = flag.String("output", "phsp", "output image prefix")
		yodaFile = flag.String("yoda", "", "output YODA file")
		tbin     k3piplot.FloatArrayFlags
	)
	flag.Var(&tbin, "tbin", "decay-time bin upper edge in ps (repeatable)")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	bins := k3piplot.MakeTimeBins(tbin.Array)

	hists := make([][]*hbook.H1D, len(bins))
	for b := range bins {
		hists[b] = make([]*hbook.H1D, len(variables))
		for v, variable := range variables {
			hists[b][v] = hbook.NewH1D(variable.nBins, variable.xMin, variable.xMax)
		}
	}

	if err := fillFromCSV(flag.Arg(0), bins, hists); err != nil {
		log.Fatal(err)
	}

	for v, variable := range variables {
		p, err := k3piplot.NewPlot(*title, variable.xLabel, "")
		if err != nil {
			log.Fatal(err)
		}

		for b := range bins {
			h := hplot.NewH1D(hists[b][v])
			h.FillColor = nil
			h.LineStyle.Color = k3piplot.LineColor(b)
			if len(bins) == 1 {
				h.Infos.Style = hplot.HInfoSummary
			}
			p.Add(h)
		}

		err = p.Save(k3piplot.CanvasWidth, k3piplot.CanvasHeight, *output+"_"+variable.name+".png")
		if err != nil {
			log.Fatal(err)
		}
	}

	if *yodaFile != "" {
		var named []k3piplot.NamedH1D
		for b, bin := range bins {
			for v, variable := range variables {
				hists[b][v].Annotation()["title"] = bin.Label("ps")
				named = append(named, k3piplot.NamedH1D{
					Name: fmt.Sprintf("%s_tbin%d", variable.name, b),
					Hist: hists[b][v],
				})
			}
		}
		if err := k3piplot.SaveH1Ds(*yodaFile, named...); err != nil {
			log.Fatal(err)
		}
	}
}

func fillFromCSV(filename string, bins []k3piplot.TimeBin, hists [][]*hbook.H1D) error {
	tbl, err := k3piplot.OpenCSV(filename)
	if err != nil {
		return err
	}
	defer tbl.Close()

	rows, err := tbl.ReadRows(1, -1)
	if err != nil {
		return err
	}
	defer rows.Close()

	var row [17]float64
	args := make([]interface{}, len(row))
	for i := range row {
		args[i] = &row[i]
	}

	for rows.Next() {
		if err := rows.Scan(args...); err != nil {
			return err
		}

		k := k3piplot.FromAmpGen([4]float64{row[0], row[1], row[2], row[3]})
		osPi1 := k3piplot.FromAmpGen([4]float64{row[4], row[5], row[6], row[7]})
		ssPi := k3piplot.FromAmpGen([4]float64{row[8], row[9], row[10], row[11]})
		osPi2 := k3piplot.FromAmpGen([4]float64{row[12], row[13], row[14], row[15]})
		tau := row[16]

		d0 := addAll(k, osPi1, ssPi, osPi2)
		pt := k3piplot.CalcPhaseSpace(d0, k, osPi1, ssPi, osPi2)

		for b, bin := range bins {
			if !bin.Contains(tau) {
				continue
			}
			for v, val := range []float64{pt.M12, pt.M34, pt.C12, pt.C34, pt.Phi} {
				hists[b][v].Fill(val, 1)
			}
		}
	}
	// Err reports io.EOF once an unbounded ReadRows runs off the end of
	// the table.
	if err := rows.Err(); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func addAll(k, osPi1, ssPi, osPi2 fmom.PxPyPzE) fmom.PxPyPzE {
	var sum fmom.PxPyPzE
	sum.Set(fmom.Add(&k, &osPi1))
	sum.Set(fmom.Add(&sum, &ssPi))
	sum.Set(fmom.Add(&sum, &osPi2))
	return sum
}
