package catalog

import "slices"

// Category is the fixed vegetable classification used for filtering and for
// mapping a vegetable onto its crop-rotation group.
type Category string

const (
	LeafyGreens    Category = "leafy-greens"
	RootVegetables Category = "root-vegetables"
	Brassicas      Category = "brassicas"
	Legumes        Category = "legumes"
	Solanaceae     Category = "solanaceae"
	Cucurbits      Category = "cucurbits"
	Alliums        Category = "alliums"
	Herbs          Category = "herbs"
)

// AllCategories lists every Category in declaration order.
func AllCategories() []Category {
	return []Category{LeafyGreens, RootVegetables, Brassicas, Legumes, Solanaceae, Cucurbits, Alliums, Herbs}
}

// Valid reports whether c belongs to the fixed enumeration.
func (c Category) Valid() bool {
	return slices.Contains(AllCategories(), c)
}

// Sun is the light requirement of a vegetable.
type Sun string

const (
	FullSun      Sun = "full-sun"
	PartialShade Sun = "partial-shade"
	Shade        Sun = "shade"
)

// Water is the watering requirement of a vegetable.
type Water string

const (
	WaterLow      Water = "low"
	WaterModerate Water = "moderate"
	WaterHigh     Water = "high"
)

// Difficulty grades how forgiving a vegetable is to grow.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Activity selects one planting window of a vegetable.
type Activity string

const (
	// ActivitySow matches either indoor or outdoor sowing.
	ActivitySow        Activity = "sow"
	ActivityIndoorSow  Activity = "indoor-sow"
	ActivityOutdoorSow Activity = "outdoor-sow"
	ActivityTransplant Activity = "transplant"
	ActivityHarvest    Activity = "harvest"
)

// MonthSet is a set of month numbers (1 = January ... 12 = December).
type MonthSet []int

// Contains reports whether month m is in the set.
func (ms MonthSet) Contains(m int) bool {
	return slices.Contains(ms, m)
}

// Planting groups the four planting windows of a vegetable.
type Planting struct {
	IndoorSow  MonthSet `yaml:"indoor_sow" toml:"indoor_sow"`
	OutdoorSow MonthSet `yaml:"outdoor_sow" toml:"outdoor_sow"`
	Transplant MonthSet `yaml:"transplant" toml:"transplant"`
	Harvest    MonthSet `yaml:"harvest" toml:"harvest"`
}

// Window returns the month set for activity a. ActivitySow merges the
// indoor and outdoor windows.
func (p Planting) Window(a Activity) MonthSet {
	switch a {
	case ActivitySow:
		merged := make(MonthSet, 0, len(p.IndoorSow)+len(p.OutdoorSow))
		merged = append(merged, p.IndoorSow...)
		return append(merged, p.OutdoorSow...)
	case ActivityIndoorSow:
		return p.IndoorSow
	case ActivityOutdoorSow:
		return p.OutdoorSow
	case ActivityTransplant:
		return p.Transplant
	case ActivityHarvest:
		return p.Harvest
	}
	return nil
}

// DaysRange is the expected number of days from sowing to harvest.
type DaysRange struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// Care is the growing profile of a vegetable. Spacing is in centimetres.
type Care struct {
	Sun        Sun        `yaml:"sun" toml:"sun"`
	Water      Water      `yaml:"water" toml:"water"`
	SpacingCM  int        `yaml:"spacing_cm" toml:"spacing_cm"`
	Difficulty Difficulty `yaml:"difficulty" toml:"difficulty"`
}

// Vegetable is one immutable catalog record, identified by ID.
// Companions and Avoid hold ids of other vegetables; the referenced ids need
// not exist in the same catalog.
type Vegetable struct {
	ID            string    `yaml:"id" toml:"id"`
	Name          string    `yaml:"name" toml:"name"`
	Description   string    `yaml:"description" toml:"description"`
	Category      Category  `yaml:"category" toml:"category"`
	Planting      Planting  `yaml:"planting" toml:"planting"`
	DaysToHarvest DaysRange `yaml:"days_to_harvest" toml:"days_to_harvest"`
	Care          Care      `yaml:"care" toml:"care"`
	Companions    []string  `yaml:"companions" toml:"companions"`
	Avoid         []string  `yaml:"avoid" toml:"avoid"`

	companionSet map[string]struct{}
	avoidSet     map[string]struct{}
}

// IsCompanion reports whether id is on v's companion list.
func (v Vegetable) IsCompanion(id string) bool {
	if v.companionSet == nil {
		return slices.Contains(v.Companions, id)
	}
	_, ok := v.companionSet[id]
	return ok
}

// Avoids reports whether id is on v's avoid list.
func (v Vegetable) Avoids(id string) bool {
	if v.avoidSet == nil {
		return slices.Contains(v.Avoid, id)
	}
	_, ok := v.avoidSet[id]
	return ok
}

// Lookup resolves vegetable ids. *Catalog implements it; tests and callers
// may substitute their own tables.
type Lookup interface {
	Get(id string) (Vegetable, bool)
}
