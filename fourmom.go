package k3piplot

import (
	"go-hep.org/x/hep/fmom"
)

// GeVToMeV converts generator-level energies and momenta to the MeV scale
// used throughout this package.
const GeVToMeV = 1000.0

// FromAmpGen converts a four-vector in the AmpGen convention
// (px, py, pz, E in GeV) into a four-momentum in MeV.
func FromAmpGen(v [4]float64) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(
		v[0]*GeVToMeV,
		v[1]*GeVToMeV,
		v[2]*GeVToMeV,
		v[3]*GeVToMeV,
	)
}

// ToAmpGen is the inverse of FromAmpGen.
func ToAmpGen(p fmom.PxPyPzE) [4]float64 {
	return [4]float64{
		p.Px() / GeVToMeV,
		p.Py() / GeVToMeV,
		p.Pz() / GeVToMeV,
		p.E() / GeVToMeV,
	}
}

// AtRest returns the four-momentum of a particle of the given mass (MeV)
// at rest.
func AtRest(mass float64) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(0, 0, 0, mass)
}
