package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"
	"go-hep.org/x/hep/fmom"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"

	"github.com/k3pistudies/k3piplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <proio-input-files>...

Fills phase-space variable distributions for generated D0 -> K pi pi pi
candidates, one image per variable, one line color per input file.

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
	defer profile.Start().Stop()

	var (
		title  = flag.String("title", "", "plot title")
		output = flag.String("output", "phsp", "output file prefix")
	)
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	var fileHists [][]*hbook.H1D
	for _, filename := range flag.Args() {
		fileHists = append(fileHists, makeHists(filename))
	}

	for v, variable := range variables {
		p, err := k3piplot.NewPlot(*title, variable.xLabel, "")
		if err != nil {
			log.Fatal(err)
		}

		for i, hists := range fileHists {
			h := hplot.NewH1D(hists[v])
			h.FillColor = nil
			h.LineStyle.Color = k3piplot.LineColor(i)
			if len(fileHists) == 1 {
				h.Infos.Style = hplot.HInfoSummary
			}
			p.Add(h)
		}

		err = p.Save(k3piplot.CanvasWidth, k3piplot.CanvasHeight, *output+"_"+variable.name+".png")
		if err != nil {
			log.Fatal(err)
		}
	}
}

func makeHists(filename string) []*hbook.H1D {
	hists := make([]*hbook.H1D, len(variables))
	for v, variable := range variables {
		hists[v] = hbook.NewH1D(variable.nBins, variable.xMin, variable.xMax)
	}

	reader, err := proio.Open(filename)
	if err != nil {
		log.Fatal(err)
	}

	for event := range reader.ScanEvents() {
		ids := event.TaggedEntries("GenStable")

		var parts []*eic.Particle
		for _, id := range ids {
			part, ok := event.GetEntry(id).(*eic.Particle)
			if !ok {
				continue
			}
			switch pdg := *part.Pdg; {
			case pdg == k3piplot.KaonID || pdg == -k3piplot.KaonID:
				parts = append(parts, part)
			case pdg == k3piplot.PionID || pdg == -k3piplot.PionID:
				parts = append(parts, part)
			}
		}

		k, osPi1, ssPi, osPi2, ok := selectK3Pi(parts)
		if !ok {
			continue
		}

		var d0 fmom.PxPyPzE
		d0.Set(fmom.Add(&k, &osPi1))
		d0.Set(fmom.Add(&d0, &ssPi))
		d0.Set(fmom.Add(&d0, &osPi2))

		pt := k3piplot.CalcPhaseSpace(d0, k, osPi1, ssPi, osPi2)
		for v, val := range []float64{pt.M12, pt.M34, pt.C12, pt.C34, pt.Phi} {
			hists[v].Fill(val, 1)
		}
	}

	reader.Close()
	return hists
}

// selectK3Pi picks the K3pi daughters out of the kaon/pion candidates of
// an event. The like-sign pion pair (FindSSPions) partners the kaon, with
// the lower-mass K pi combination first; the pion carrying the kaon's
// charge (FindOppSignPion) enters the (3,4) system.
func selectK3Pi(parts []*eic.Particle) (k, osPi1, ssPi, osPi2 fmom.PxPyPzE, ok bool) {
	if len(parts) != 4 {
		return k, osPi1, ssPi, osPi2, false
	}

	var pdgs [4]int
	for i, part := range parts {
		pdgs[i] = int(*part.Pdg)
	}

	kIdx, err := k3piplot.FindKaon(pdgs)
	if err != nil {
		return k, osPi1, ssPi, osPi2, false
	}
	kaonNeg, err := k3piplot.IsKaonNeg(kIdx, pdgs)
	if err != nil {
		return k, osPi1, ssPi, osPi2, false
	}
	pairIdx, err := k3piplot.FindSSPions(kaonNeg, pdgs)
	if err != nil {
		return k, osPi1, ssPi, osPi2, false
	}
	loneIdx, err := k3piplot.FindOppSignPion(kaonNeg, pdgs)
	if err != nil {
		return k, osPi1, ssPi, osPi2, false
	}

	k = momentum(parts[kIdx])
	osPi1 = momentum(parts[pairIdx[0]])
	osPi2 = momentum(parts[pairIdx[1]])
	ssPi = momentum(parts[loneIdx])
	if !k3piplot.Pi1GoesWithK(k, osPi1, osPi2) {
		osPi1, osPi2 = osPi2, osPi1
	}
	return k, osPi1, ssPi, osPi2, true
}

// momentum builds the four-momentum of a generated particle in MeV from
// its momentum (GeV) and mass (GeV).
func momentum(part *eic.Particle) fmom.PxPyPzE {
	px := float64(*part.P.X)
	py := float64(*part.P.Y)
	pz := float64(*part.P.Z)
	m := float64(*part.Mass)
	e := math.Sqrt(px*px + py*py + pz*pz + m*m)
	return k3piplot.FromAmpGen([4]float64{px, py, pz, e})
}
