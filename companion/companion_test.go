package companion_test

import (
	"testing"

	"github.com/katalvlaran/allotment/catalog"
	"github.com/katalvlaran/allotment/companion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneSided(t *testing.T) *catalog.Catalog {
	t.Helper()
	days := catalog.DaysRange{Min: 30, Max: 60}
	c, err := catalog.New([]catalog.Vegetable{
		{ID: "tomatoes", Category: catalog.Solanaceae, DaysToHarvest: days, Companions: []string{"basil"}},
		{ID: "basil", Category: catalog.Herbs, DaysToHarvest: days},
		{ID: "fennel", Category: catalog.Herbs, DaysToHarvest: days, Avoid: []string{"tomatoes"}},
	})
	require.NoError(t, err)
	return c
}

// TestCheck_Precedence covers each branch of the verdict.
func TestCheck_Precedence(t *testing.T) {
	c := oneSided(t)
	cases := []struct {
		a, b string
		want companion.Verdict
	}{
		{"tomatoes", "basil", companion.Good},
		{"basil", "tomatoes", companion.Good},
		{"tomatoes", "fennel", companion.Bad},
		{"fennel", "tomatoes", companion.Bad},
		{"basil", "fennel", companion.Neutral},
		{"tomatoes", "tomatoes", companion.Neutral},
		{"tomatoes", "okra", companion.Neutral},
		{"okra", "okra", companion.Neutral},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, companion.Check(c, tc.a, tc.b), "%s/%s", tc.a, tc.b)
	}
}

// TestCheck_AvoidWins resolves a pair where the two sides disagree.
func TestCheck_AvoidWins(t *testing.T) {
	days := catalog.DaysRange{Min: 30, Max: 60}
	c, err := catalog.New([]catalog.Vegetable{
		{ID: "a", Category: catalog.Herbs, DaysToHarvest: days, Companions: []string{"b"}},
		{ID: "b", Category: catalog.Herbs, DaysToHarvest: days, Avoid: []string{"a"}},
	})
	require.NoError(t, err)
	assert.Equal(t, companion.Bad, companion.Check(c, "a", "b"))
	assert.Equal(t, companion.Bad, companion.Check(c, "b", "a"))
}

// TestCheck_Symmetric checks every ordered pair of the built-in table,
// plus an unknown id.
func TestCheck_Symmetric(t *testing.T) {
	c := catalog.Default()
	ids := append(c.IDs(), "not-a-vegetable")
	for _, x := range ids {
		for _, y := range ids {
			assert.Equal(t, companion.Check(c, x, y), companion.Check(c, y, x), "%s/%s", x, y)
		}
	}
}

// TestCheck_NilLookup degrades to neutral.
func TestCheck_NilLookup(t *testing.T) {
	assert.Equal(t, companion.Neutral, companion.Check(nil, "carrots", "onions"))
	var c *catalog.Catalog
	assert.Equal(t, companion.Neutral, companion.Check(c, "carrots", "onions"))
	assert.Empty(t, companion.Suggested(nil, "carrots"))
	assert.Empty(t, companion.Avoided(nil, "carrots"))
}

// TestSuggestedAndAvoided returns catalog lists, empty for unknown ids.
func TestSuggestedAndAvoided(t *testing.T) {
	c := catalog.Default()
	assert.Contains(t, companion.Suggested(c, "carrots"), "onions")
	assert.Contains(t, companion.Avoided(c, "carrots"), "parsnips")
	assert.Empty(t, companion.Suggested(c, "okra"))
	assert.Empty(t, companion.Avoided(c, "okra"))

	got := companion.Suggested(c, "carrots")
	got[0] = "changed"
	assert.NotContains(t, companion.Suggested(c, "carrots"), "changed", "result is a copy")
}
