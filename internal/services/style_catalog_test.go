package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListTravelStyles(t *testing.T) {
	styles := ListTravelStyles()

	require.Len(t, styles, 7)
	ids := make([]string, 0, len(styles))
	for _, s := range styles {
		ids = append(ids, s.ID)
		require.NotEmpty(t, s.Label)
		require.NotEmpty(t, s.Description)
	}
	require.Equal(t, []string{"cultural", "foodie", "historical", "nature", "nightlife", "shopping", "relaxed"}, ids)
}

func TestStyleDescription(t *testing.T) {
	require.Contains(t, styleDescription("foodie"), "美食")
	require.Empty(t, styleDescription("unknown-style"))
	require.Empty(t, styleDescription(""))
}
