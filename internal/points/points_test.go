package points

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFor_KnownCategories(t *testing.T) {
	expected := map[string]int{
		"plastic": 25,
		"glass":   35,
		"paper":   20,
		"metal":   30,
		"ewaste":  50,
		"textile": 40,
	}

	for category, want := range expected {
		require.Equal(t, want, For(category), "category %q", category)
	}
}

func TestFor_UnknownCategories(t *testing.T) {
	for _, category := range []string{"", "unknown", "PLASTIC", "cardboard", "banana"} {
		require.Equal(t, DefaultPoints, For(category), "category %q", category)
	}
}

func TestIsKnown(t *testing.T) {
	for _, category := range Categories {
		require.True(t, IsKnown(category))
	}
	require.False(t, IsKnown(""))
	require.False(t, IsKnown("mixed"))
}
