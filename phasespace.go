package k3piplot

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// PhaseSpacePoint holds the five invariants describing a four-body decay
// configuration P -> p1 p2 p3 p4.
type PhaseSpacePoint struct {
	M12 float64 // invariant mass of the (p1,p2) pair (MeV)
	M34 float64 // invariant mass of the (p3,p4) pair (MeV)
	C12 float64 // helicity cosine of p1 in the (p1,p2) rest frame
	C34 float64 // helicity cosine of p3 in the (p3,p4) rest frame
	Phi float64 // angle between the (p1,p2) and (p3,p4) decay planes, in [0, 2pi)
}

// CalcPhaseSpace computes the phase-space point of the decay
// parent -> p1 p2 p3 p4.
//
// All angles are measured in the parent rest frame with the z axis along
// the line of flight of the (p1,p2) system. C12 is the cosine of the angle
// between p1, boosted into the (p1,p2) rest frame, and that axis; C34 the
// cosine between p3, boosted into the (p3,p4) rest frame, and the (p3,p4)
// line of flight. Phi is the right-handed angle from the (p1,p2) plane
// normal to the (p3,p4) plane normal about the z axis.
func CalcPhaseSpace(parent, p1, p2, p3, p4 fmom.PxPyPzE) PhaseSpacePoint {
	if mag2(momOf(parent)) > 0 {
		toRest := neg(betaOf(parent))
		p1 = boost(p1, toRest)
		p2 = boost(p2, toRest)
		p3 = boost(p3, toRest)
		p4 = boost(p4, toRest)
	}

	q12 := addP4(p1, p2)
	q34 := addP4(p3, p4)

	z := unit(momOf(q12))
	axis34 := unit(momOf(q34))

	h1 := boost(p1, neg(betaOf(q12)))
	h3 := boost(p3, neg(betaOf(q34)))

	n12 := unit(cross(momOf(p1), momOf(p2)))
	n34 := unit(cross(momOf(p3), momOf(p4)))

	return PhaseSpacePoint{
		M12: q12.M(),
		M34: q34.M(),
		C12: dot(unit(momOf(h1)), z),
		C34: dot(unit(momOf(h3)), axis34),
		Phi: ZeroToTwoPi(math.Atan2(dot(cross(n12, n34), z), dot(n12, n34))),
	}
}

// PairMass returns the invariant mass of the two-body sum p+q.
func PairMass(p, q fmom.PxPyPzE) float64 {
	return fmom.InvMass(&p, &q)
}

// PairMasses returns the six unordered pair masses of the four daughters,
// in the order (12, 13, 14, 23, 24, 34).
func PairMasses(p1, p2, p3, p4 fmom.PxPyPzE) [6]float64 {
	return [6]float64{
		PairMass(p1, p2),
		PairMass(p1, p3),
		PairMass(p1, p4),
		PairMass(p2, p3),
		PairMass(p2, p4),
		PairMass(p3, p4),
	}
}

type vec3 [3]float64

func momOf(p fmom.PxPyPzE) vec3 {
	return vec3{p.Px(), p.Py(), p.Pz()}
}

// betaOf returns the boost velocity of the frame in which p is at rest.
func betaOf(p fmom.PxPyPzE) vec3 {
	e := p.E()
	return vec3{p.Px() / e, p.Py() / e, p.Pz() / e}
}

func addP4(p, q fmom.PxPyPzE) fmom.PxPyPzE {
	var sum fmom.PxPyPzE
	sum.Set(fmom.Add(&p, &q))
	return sum
}

// boost applies an active Lorentz boost with velocity b to p.
func boost(p fmom.PxPyPzE, b vec3) fmom.PxPyPzE {
	b2 := mag2(b)
	if b2 == 0 {
		return p
	}
	gamma := 1 / math.Sqrt(1-b2)
	bp := b[0]*p.Px() + b[1]*p.Py() + b[2]*p.Pz()
	gamma2 := (gamma - 1) / b2

	return fmom.NewPxPyPzE(
		p.Px()+(gamma2*bp+gamma*p.E())*b[0],
		p.Py()+(gamma2*bp+gamma*p.E())*b[1],
		p.Pz()+(gamma2*bp+gamma*p.E())*b[2],
		gamma*(p.E()+bp),
	)
}

func dot(a, b vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func mag2(v vec3) float64 {
	return dot(v, v)
}

func unit(v vec3) vec3 {
	n := math.Sqrt(mag2(v))
	return vec3{v[0] / n, v[1] / n, v[2] / n}
}

func neg(v vec3) vec3 {
	return vec3{-v[0], -v[1], -v[2]}
}
