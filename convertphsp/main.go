package main

import (
	"flag"
	"fmt"
	"os"

	"go-hep.org/x/hep/fmom"

	"github.com/k3pistudies/k3piplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

Converts a generated D0 -> K pi pi pi event from the AmpGen convention,
computes its phase-space point, and prints direct-summation cross-checks.

options:
`,
	)
	flag.PrintDefaults()
}

// Generated event in the AmpGen convention: px, py, pz, E in GeV.
var (
	kAmpGen     = [4]float64{-0.22605460233259722, 0.37058687639201848, -0.046885439376411875, 0.65905276036464722}
	osPi1AmpGen = [4]float64{0.075397408921232992, 0.24469544143911467, 0.20952672690121868, 0.35908482669738223}
	osPi2AmpGen = [4]float64{0.07358860140319394, -0.24208436188963289, -0.30165403210059527, 0.41772611931236503}
	ssPiAmpGen  = [4]float64{0.077068592008170317, -0.37319795594150029, 0.13901274457578858, 0.42897629362560541}
)

// The same event as written out by GooFit's get4Vecs, for the
// self-consistency comparison.
var (
	kGooFit     = [4]float64{0.389060, -0.140074, -0.140162, 0.659053}
	osPi1GooFit = [4]float64{0.264945, 0.140074, 0.140162, 0.359085}
	osPi2GooFit = [4]float64{-0.319720, -0.229770, 0.000000, 0.417726}
	ssPiGooFit  = [4]float64{-0.334285, 0.229770, 0.000000, 0.428976}
)

func main() {
	var (
		d0Mass = flag.Float64("d0-mass", 1864.84, "D0 mass (MeV)")
	)
	flag.Usage = printUsage
	flag.Parse()

	d0 := k3piplot.AtRest(*d0Mass)

	report("AmpGen", d0,
		k3piplot.FromAmpGen(kAmpGen),
		k3piplot.FromAmpGen(osPi1AmpGen),
		k3piplot.FromAmpGen(osPi2AmpGen),
		k3piplot.FromAmpGen(ssPiAmpGen),
	)
	report("GooFit", d0,
		k3piplot.FromAmpGen(kGooFit),
		k3piplot.FromAmpGen(osPi1GooFit),
		k3piplot.FromAmpGen(osPi2GooFit),
		k3piplot.FromAmpGen(ssPiGooFit),
	)
}

func report(label string, d0, k, osPi1, osPi2, ssPi fmom.PxPyPzE) {
	pt := k3piplot.CalcPhaseSpace(d0, k, osPi1, ssPi, osPi2)
	fmt.Printf("%s phase-space point [GeV] [rad -pi to pi] = { %v, %v, %v, %v, %v }\n",
		label,
		pt.M12/k3piplot.GeVToMeV,
		pt.M34/k3piplot.GeVToMeV,
		pt.C12,
		pt.C34,
		k3piplot.NegPiToPi(pt.Phi),
	)
	fmt.Printf("%s phi, 0 to 2pi = %v\n", label, pt.Phi)

	names := [6]string{"M12", "M13", "M14", "M23", "M24", "M34"}
	for i, m := range k3piplot.PairMasses(k, osPi1, osPi2, ssPi) {
		fmt.Printf("%s %s = %v\n", label, names[i], m/k3piplot.GeVToMeV)
	}
}
