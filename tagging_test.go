package k3piplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// D0 -> K- pi+ pi+ pi- daughter PDG IDs.
var rsD0IDs = [4]int{211, -321, 211, -211}

func TestFindKaon(t *testing.T) {
	idx, err := FindKaon(rsD0IDs)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = FindKaon([4]int{211, 211, 211, -211})
	assert.Error(t, err)

	_, err = FindKaon([4]int{321, -321, 211, -211})
	assert.Error(t, err)
}

func TestIsKaonNeg(t *testing.T) {
	neg, err := IsKaonNeg(1, rsD0IDs)
	require.NoError(t, err)
	assert.True(t, neg)

	pos, err := IsKaonNeg(1, [4]int{211, 321, -211, -211})
	require.NoError(t, err)
	assert.False(t, pos)

	_, err = IsKaonNeg(4, rsD0IDs)
	assert.Error(t, err)
}

func TestFindOppSignPion(t *testing.T) {
	idx, err := FindOppSignPion(true, rsD0IDs)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	_, err = FindOppSignPion(false, rsD0IDs)
	assert.Error(t, err)
}

func TestFindSSPions(t *testing.T) {
	idx, err := FindSSPions(true, rsD0IDs)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 2}, idx)

	_, err = FindSSPions(false, rsD0IDs)
	assert.Error(t, err)
}

func TestIsD0(t *testing.T) {
	assert.True(t, IsD0(211))
	assert.False(t, IsD0(-211))
}

func TestIsRS(t *testing.T) {
	assert.True(t, IsRS(true, true))
	assert.False(t, IsRS(true, false))
	assert.False(t, IsRS(false, true))
	assert.True(t, IsRS(false, false))
}

func TestPi1GoesWithK(t *testing.T) {
	k, osPi1, osPi2, _ := ampGenEvent()

	// m(K pi1) = 780 MeV < m(K pi2) = 999 MeV.
	assert.True(t, Pi1GoesWithK(k, osPi1, osPi2))
	assert.False(t, Pi1GoesWithK(k, osPi2, osPi1))
}

func TestAmpGenNames(t *testing.T) {
	assert.Equal(t, "K#", AmpGenKName(true, true))
	assert.Equal(t, "K~", AmpGenKName(true, false))
	assert.Equal(t, "K~", AmpGenKName(false, true))
	assert.Equal(t, "K#", AmpGenKName(false, false))

	assert.Equal(t, "pi~", AmpGenOSPiName(true, true))
	assert.Equal(t, "pi#", AmpGenOSPiName(true, false))
	assert.Equal(t, "pi#", AmpGenOSPiName(false, true))
	assert.Equal(t, "pi~", AmpGenOSPiName(false, false))

	assert.Equal(t, "pi#", AmpGenSSPiName(true, true))
	assert.Equal(t, "pi~", AmpGenSSPiName(true, false))
	assert.Equal(t, "pi~", AmpGenSSPiName(false, true))
	assert.Equal(t, "pi#", AmpGenSSPiName(false, false))
}

func TestAmpGenBranch(t *testing.T) {
	assert.Equal(t, "_1_K~_Px", AmpGenBranch(1, "K~", "Px"))
	assert.Equal(t, "_3_pi#_E", AmpGenBranch(3, "pi#", "E"))
}

func TestAmpGenAliases(t *testing.T) {
	aliases := AmpGenAliases(2, "pi~", "OSPi")

	assert.Equal(t, map[string]string{
		"_2_OSPi_E":  "_2_pi~_E",
		"_2_OSPi_Px": "_2_pi~_Px",
		"_2_OSPi_Py": "_2_pi~_Py",
		"_2_OSPi_Pz": "_2_pi~_Pz",
	}, aliases)
}
