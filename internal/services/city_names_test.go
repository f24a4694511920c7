package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCityQueryCandidatesAliasedCity(t *testing.T) {
	got := cityQueryCandidates("北京")
	require.Equal(t, []string{"Beijing", "北京", "Beijing,CN", "北京,CN"}, got)
}

func TestCityQueryCandidatesUnknownCityFallsBack(t *testing.T) {
	got := cityQueryCandidates("景德镇")
	require.Equal(t, []string{"景德镇", "景德镇", "景德镇,CN", "景德镇,CN"}, got)
}

func TestListCities(t *testing.T) {
	catalog := ListCities()

	require.Len(t, catalog.Popular, 20)
	require.Len(t, catalog.Supported, len(cityNameMap))
	require.Contains(t, catalog.Supported, "北京")
	require.Contains(t, catalog.Popular, "三亚")

	// Supported list is sorted for a stable response.
	for i := 1; i < len(catalog.Supported); i++ {
		require.LessOrEqual(t, catalog.Supported[i-1], catalog.Supported[i])
	}
}
