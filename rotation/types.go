package rotation

import "github.com/katalvlaran/allotment/catalog"

// Group is a crop-rotation family.
type Group string

const (
	Legumes    Group = "legumes"
	Brassicas  Group = "brassicas"
	Roots      Group = "roots"
	Solanaceae Group = "solanaceae"
	Alliums    Group = "alliums"
	Cucurbits  Group = "cucurbits"
	Permanent  Group = "permanent"
)

// Groups lists every Group in enumeration order. This is also the
// tie-break order of DominantGroup.
func Groups() []Group {
	return []Group{Legumes, Brassicas, Roots, Solanaceae, Alliums, Cucurbits, Permanent}
}

// cycle is the canonical rotation order; anything else restarts at cycle[0].
var cycle = [...]Group{Legumes, Brassicas, Roots}

var categoryGroups = map[catalog.Category]Group{
	catalog.LeafyGreens:    Roots,
	catalog.RootVegetables: Roots,
	catalog.Brassicas:      Brassicas,
	catalog.Legumes:        Legumes,
	catalog.Solanaceae:     Solanaceae,
	catalog.Cucurbits:      Cucurbits,
	catalog.Alliums:        Alliums,
	catalog.Herbs:          Permanent,
}

// Entry records the dominant family grown in a plot during one year.
type Entry struct {
	PlotID     string   `json:"plotId"`
	Year       int      `json:"year"`
	Group      Group    `json:"rotationGroup"`
	Vegetables []string `json:"vegetables"`
}

// YearSummary is one row of a history summary. Recorded is false for years
// without an entry.
type YearSummary struct {
	Year       int      `json:"year"`
	Group      Group    `json:"rotationGroup,omitempty"`
	Vegetables []string `json:"vegetables,omitempty"`
	Recorded   bool     `json:"recorded"`
}
