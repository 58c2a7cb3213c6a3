package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestExactAndPrefix(t *testing.T) {
	known := []string{"Spin Doctors", "Net Gains", "The Smashers"}
	require.Equal(t, "Net Gains", SuggestFrom("net gains", known))
	require.Equal(t, "The Smashers", SuggestFrom("the sm", known))
}

func TestSuggestFuzzy(t *testing.T) {
	known := []string{"Spin Doctors", "Net Gains"}
	require.Equal(t, "Spin Doctors", SuggestFrom("Spin Docters", known))
}

func TestSuggestRejectsNoise(t *testing.T) {
	known := []string{"Spin Doctors", "Net Gains"}
	require.Equal(t, "", SuggestFrom("zzzzzz", known))
	require.Equal(t, "", SuggestFrom("   ", known))
	require.Equal(t, "", SuggestFrom("abc", nil))
}
