package k3piplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go-hep.org/x/hep/fmom"
)

const d0MassMeV = 1864.84

// Generated D0 -> K- pi+ pi+ pi- event in the AmpGen convention
// (px, py, pz, E in GeV).
var (
	kAmpGen     = [4]float64{-0.22605460233259722, 0.37058687639201848, -0.046885439376411875, 0.65905276036464722}
	osPi1AmpGen = [4]float64{0.075397408921232992, 0.24469544143911467, 0.20952672690121868, 0.35908482669738223}
	osPi2AmpGen = [4]float64{0.07358860140319394, -0.24208436188963289, -0.30165403210059527, 0.41772611931236503}
	ssPiAmpGen  = [4]float64{0.077068592008170317, -0.37319795594150029, 0.13901274457578858, 0.42897629362560541}
)

// The same event as written out by GooFit's get4Vecs: identical up to a
// global rotation, so all five invariants must agree.
var (
	kGooFit     = [4]float64{0.389060, -0.140074, -0.140162, 0.659053}
	osPi1GooFit = [4]float64{0.264945, 0.140074, 0.140162, 0.359085}
	osPi2GooFit = [4]float64{-0.319720, -0.229770, 0.000000, 0.417726}
	ssPiGooFit  = [4]float64{-0.334285, 0.229770, 0.000000, 0.428976}
)

func ampGenEvent() (k, osPi1, osPi2, ssPi fmom.PxPyPzE) {
	return FromAmpGen(kAmpGen), FromAmpGen(osPi1AmpGen), FromAmpGen(osPi2AmpGen), FromAmpGen(ssPiAmpGen)
}

func gooFitEvent() (k, osPi1, osPi2, ssPi fmom.PxPyPzE) {
	return FromAmpGen(kGooFit), FromAmpGen(osPi1GooFit), FromAmpGen(osPi2GooFit), FromAmpGen(ssPiGooFit)
}

func TestCalcPhaseSpaceAmpGenEvent(t *testing.T) {
	k, osPi1, osPi2, ssPi := ampGenEvent()
	pt := CalcPhaseSpace(AtRest(d0MassMeV), k, osPi1, ssPi, osPi2)

	assert.InDelta(t, 780.3089370, pt.M12, 1e-6)
	assert.InDelta(t, 537.7572567, pt.M34, 1e-6)
	assert.InDelta(t, -0.2202150129, pt.C12, 1e-9)
	assert.InDelta(t, 0.0201257660, pt.C34, 1e-9)
	assert.InDelta(t, 5.4974739357, pt.Phi, 1e-9)
	assert.InDelta(t, -0.7857113715, NegPiToPi(pt.Phi), 1e-9)
}

func TestCalcPhaseSpaceMatchesDirectSums(t *testing.T) {
	k, osPi1, osPi2, ssPi := ampGenEvent()
	pt := CalcPhaseSpace(AtRest(d0MassMeV), k, osPi1, ssPi, osPi2)

	assert.InDelta(t, PairMass(k, osPi1), pt.M12, 1e-6)
	assert.InDelta(t, PairMass(osPi2, ssPi), pt.M34, 1e-6)
}

func TestCalcPhaseSpaceInvariants(t *testing.T) {
	k, osPi1, osPi2, ssPi := ampGenEvent()
	pt := CalcPhaseSpace(AtRest(d0MassMeV), k, osPi1, ssPi, osPi2)

	assert.True(t, pt.C12 >= -1 && pt.C12 <= 1)
	assert.True(t, pt.C34 >= -1 && pt.C34 <= 1)
	assert.True(t, pt.Phi >= 0 && pt.Phi < 2*math.Pi)
}

func TestCalcPhaseSpaceGooFitAgreement(t *testing.T) {
	k, osPi1, osPi2, ssPi := ampGenEvent()
	pt := CalcPhaseSpace(AtRest(d0MassMeV), k, osPi1, ssPi, osPi2)

	gk, gosPi1, gosPi2, gssPi := gooFitEvent()
	gpt := CalcPhaseSpace(AtRest(d0MassMeV), gk, gosPi1, gssPi, gosPi2)

	// The GooFit literals carry six decimal digits in GeV, so the masses
	// agree only to the MeV scale.
	assert.InDelta(t, pt.M12, gpt.M12, 2.0)
	assert.InDelta(t, pt.M34, gpt.M34, 2.0)
	assert.InDelta(t, pt.C12, gpt.C12, 1e-4)
	assert.InDelta(t, pt.C34, gpt.C34, 1e-4)
	assert.InDelta(t, pt.Phi, gpt.Phi, 1e-4)
}

func TestCalcPhaseSpaceRotationInvariance(t *testing.T) {
	k, osPi1, osPi2, ssPi := ampGenEvent()
	pt := CalcPhaseSpace(AtRest(d0MassMeV), k, osPi1, ssPi, osPi2)

	for _, angles := range [][2]float64{
		{0.3, 0},
		{0, 1.1},
		{2.5, -0.7},
	} {
		rot := func(p fmom.PxPyPzE) fmom.PxPyPzE {
			return rotX(rotZ(p, angles[0]), angles[1])
		}
		rpt := CalcPhaseSpace(AtRest(d0MassMeV), rot(k), rot(osPi1), rot(ssPi), rot(osPi2))

		assert.InDelta(t, pt.M12, rpt.M12, 1e-6)
		assert.InDelta(t, pt.M34, rpt.M34, 1e-6)
		assert.InDelta(t, pt.C12, rpt.C12, 1e-9)
		assert.InDelta(t, pt.C34, rpt.C34, 1e-9)
		assert.InDelta(t, pt.Phi, rpt.Phi, 1e-9)
	}
}

func TestCalcPhaseSpaceMovingParent(t *testing.T) {
	k, osPi1, osPi2, ssPi := ampGenEvent()
	pt := CalcPhaseSpace(AtRest(d0MassMeV), k, osPi1, ssPi, osPi2)

	lab := vec3{0.2, -0.1, 0.4}
	bk := boost(k, lab)
	bosPi1 := boost(osPi1, lab)
	bosPi2 := boost(osPi2, lab)
	bssPi := boost(ssPi, lab)
	parent := boost(AtRest(d0MassMeV), lab)

	bpt := CalcPhaseSpace(parent, bk, bosPi1, bssPi, bosPi2)

	assert.InDelta(t, pt.M12, bpt.M12, 1e-6)
	assert.InDelta(t, pt.M34, bpt.M34, 1e-6)
	assert.InDelta(t, pt.C12, bpt.C12, 1e-8)
	assert.InDelta(t, pt.C34, bpt.C34, 1e-8)
	assert.InDelta(t, pt.Phi, bpt.Phi, 1e-8)
}

func TestPairMassSymmetry(t *testing.T) {
	k, osPi1, _, _ := ampGenEvent()
	assert.Equal(t, PairMass(k, osPi1), PairMass(osPi1, k))
}

func TestPairMasses(t *testing.T) {
	k, osPi1, osPi2, ssPi := ampGenEvent()
	masses := PairMasses(k, osPi1, osPi2, ssPi)

	want := [6]float64{
		780.3089370,
		999.1067084,
		1073.8324511,
		756.7986235,
		678.0868591,
		537.7572567,
	}
	for i := range want {
		assert.InDelta(t, want[i], masses[i], 1e-6)
	}
}

func TestBoostRoundTrip(t *testing.T) {
	k, _, _, _ := ampGenEvent()

	b := vec3{0.3, 0.2, -0.5}
	boosted := boost(k, b)
	back := boost(boosted, neg(b))

	assert.InDelta(t, k.Px(), back.Px(), 1e-9)
	assert.InDelta(t, k.Py(), back.Py(), 1e-9)
	assert.InDelta(t, k.Pz(), back.Pz(), 1e-9)
	assert.InDelta(t, k.E(), back.E(), 1e-9)
	assert.InDelta(t, k.M(), boosted.M(), 1e-9)
}

func rotZ(p fmom.PxPyPzE, a float64) fmom.PxPyPzE {
	sin, cos := math.Sincos(a)
	return fmom.NewPxPyPzE(
		cos*p.Px()-sin*p.Py(),
		sin*p.Px()+cos*p.Py(),
		p.Pz(),
		p.E(),
	)
}

func rotX(p fmom.PxPyPzE, a float64) fmom.PxPyPzE {
	sin, cos := math.Sincos(a)
	return fmom.NewPxPyPzE(
		p.Px(),
		cos*p.Py()-sin*p.Pz(),
		sin*p.Py()+cos*p.Pz(),
		p.E(),
	)
}
