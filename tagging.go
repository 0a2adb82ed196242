package k3piplot

import (
	"fmt"

	"go-hep.org/x/hep/fmom"
)

// PDG codes of the D0 daughters.
const (
	KaonID = 321
	PionID = 211
)

// Sample selection flags.
const (
	RSFlag   = "RS"
	WSFlag   = "WS"
	BothFlag = "BOTH"
)

// FindKaon returns the index of the kaon among the four daughter PDG IDs.
func FindKaon(ids [4]int) (int, error) {
	idx := -1
	n := 0
	for i, id := range ids {
		if abs(id) == KaonID {
			idx = i
			n++
		}
	}
	if n != 1 {
		return -1, fmt.Errorf("k3piplot: found %d kaons in daughters %v, want 1", n, ids)
	}
	return idx, nil
}

// IsKaonNeg reports whether the daughter at kaonIdx is negatively charged.
func IsKaonNeg(kaonIdx int, ids [4]int) (bool, error) {
	if kaonIdx < 0 || kaonIdx > 3 {
		return false, fmt.Errorf("k3piplot: no daughter with index %d", kaonIdx)
	}
	return ids[kaonIdx] < 0, nil
}

// FindOppSignPion returns the index of the single pion carrying the same
// charge as the kaon.
func FindOppSignPion(kaonNeg bool, ids [4]int) (int, error) {
	want := PionID
	if kaonNeg {
		want = -PionID
	}

	idx := -1
	n := 0
	for i, id := range ids {
		if id == want {
			idx = i
			n++
		}
	}
	if n != 1 {
		return -1, fmt.Errorf("k3piplot: found %d opposite sign pions in daughters %v, want 1", n, ids)
	}
	return idx, nil
}

// FindSSPions returns the indices of the two like-sign pions, the pair
// carrying the charge opposite to the kaon.
func FindSSPions(kaonNeg bool, ids [4]int) ([2]int, error) {
	want := -PionID
	if kaonNeg {
		want = PionID
	}

	var idx [2]int
	n := 0
	for i, id := range ids {
		if id == want {
			if n < 2 {
				idx[n] = i
			}
			n++
		}
	}
	if n != 2 {
		return idx, fmt.Errorf("k3piplot: found %d same sign pions in daughters %v, want 2", n, ids)
	}
	return idx, nil
}

// IsD0 reports whether the D* tagging pion ID corresponds to a D0 (as
// opposed to a D0bar).
func IsD0(dstarPiID int) bool {
	return dstarPiID > 0
}

// IsRS reports whether the flavor/charge combination is a right-sign decay.
func IsRS(isD0, kaonNeg bool) bool {
	if isD0 {
		return kaonNeg
	}
	return !kaonNeg
}

// Pi1GoesWithK reports whether pi1 forms the lower-mass K pi pair.
func Pi1GoesWithK(k, pi1, pi2 fmom.PxPyPzE) bool {
	return PairMass(k, pi1) < PairMass(k, pi2)
}

// AmpGenKName returns the AmpGen particle name of the kaon for the given
// flavor/charge combination.
func AmpGenKName(isD0, isRS bool) string {
	if isD0 == isRS {
		return "K#"
	}
	return "K~"
}

// AmpGenOSPiName returns the AmpGen particle name of the opposite sign pion.
func AmpGenOSPiName(isD0, isRS bool) string {
	if isD0 == isRS {
		return "pi~"
	}
	return "pi#"
}

// AmpGenSSPiName returns the AmpGen particle name of the same sign pions.
func AmpGenSSPiName(isD0, isRS bool) string {
	if isD0 == isRS {
		return "pi#"
	}
	return "pi~"
}

// AmpGenBranch returns the AmpGen tree branch name of one four-vector
// component, e.g. AmpGenBranch(1, "K~", "Px") -> "_1_K~_Px".
func AmpGenBranch(pNum int, particle, comp string) string {
	return fmt.Sprintf("_%d_%s_%s", pNum, particle, comp)
}

// AmpGenAliases maps symbol-free component column names onto the AmpGen
// branch names of the pNum-th daughter, for the components E, Px, Py, Pz.
func AmpGenAliases(pNum int, ampGenName, plainName string) map[string]string {
	aliases := make(map[string]string, 4)
	for _, comp := range []string{"E", "Px", "Py", "Pz"} {
		aliases[AmpGenBranch(pNum, plainName, comp)] = AmpGenBranch(pNum, ampGenName, comp)
	}
	return aliases
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
