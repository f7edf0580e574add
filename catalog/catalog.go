package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Catalog is a read-only vegetable table. It is immutable once built and
// safe for concurrent use.
type Catalog struct {
	order []string
	byID  map[string]*Vegetable
}

// New validates vegs and builds a Catalog preserving their order.
// The input slice is copied; later changes to it do not affect the Catalog.
// Complexity: O(V + L) where L is the total length of companion/avoid lists.
func New(vegs []Vegetable) (*Catalog, error) {
	c := &Catalog{
		order: make([]string, 0, len(vegs)),
		byID:  make(map[string]*Vegetable, len(vegs)),
	}
	for i := range vegs {
		v := vegs[i]
		if err := validate(&v); err != nil {
			return nil, err
		}
		if _, dup := c.byID[v.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, v.ID)
		}
		v.Companions = slices.Clone(v.Companions)
		v.Avoid = slices.Clone(v.Avoid)
		v.companionSet = toSet(v.Companions)
		v.avoidSet = toSet(v.Avoid)
		c.byID[v.ID] = &v
		c.order = append(c.order, v.ID)
	}

	return c, nil
}

func validate(v *Vegetable) error {
	if strings.TrimSpace(v.ID) == "" {
		return ErrEmptyID
	}
	if !v.Category.Valid() {
		return fmt.Errorf("%w: %q on %q", ErrUnknownCategory, v.Category, v.ID)
	}
	if v.DaysToHarvest.Min <= 0 || v.DaysToHarvest.Min > v.DaysToHarvest.Max {
		return fmt.Errorf("%w: %q has %d..%d", ErrBadDays, v.ID, v.DaysToHarvest.Min, v.DaysToHarvest.Max)
	}
	for _, ms := range []MonthSet{v.Planting.IndoorSow, v.Planting.OutdoorSow, v.Planting.Transplant, v.Planting.Harvest} {
		for _, m := range ms {
			if m < 1 || m > 12 {
				return fmt.Errorf("%w: %q has month %d", ErrBadMonth, v.ID, m)
			}
		}
	}
	for _, id := range v.Companions {
		if slices.Contains(v.Avoid, id) {
			return fmt.Errorf("%w: %q lists %q", ErrSelfConflict, v.ID, id)
		}
	}

	return nil
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Get returns the vegetable with the given id.
// Complexity: O(1).
func (c *Catalog) Get(id string) (Vegetable, bool) {
	if c == nil {
		return Vegetable{}, false
	}
	v, ok := c.byID[id]
	if !ok {
		return Vegetable{}, false
	}
	return *v, true
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Len returns the number of vegetables.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// IDs returns all ids in insertion order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.order)
}

// All returns every vegetable in insertion order.
// Complexity: O(V).
func (c *Catalog) All() []Vegetable {
	return c.filter(func(Vegetable) bool { return true })
}

// ByCategory returns the vegetables of category cat in insertion order.
func (c *Catalog) ByCategory(cat Category) []Vegetable {
	return c.filter(func(v Vegetable) bool { return v.Category == cat })
}

// Search returns the vegetables whose name or description contains query,
// ignoring case and surrounding whitespace. An empty query matches all.
// Complexity: O(V·S) where S is the text length per record.
func (c *Catalog) Search(query string) []Vegetable {
	q := strings.ToLower(strings.TrimSpace(query))
	return c.filter(func(v Vegetable) bool {
		return strings.Contains(strings.ToLower(v.Name), q) ||
			strings.Contains(strings.ToLower(v.Description), q)
	})
}

// ByMonth returns the vegetables whose window for activity a includes month.
// Unknown activities and months outside 1..12 match nothing.
func (c *Catalog) ByMonth(month int, a Activity) []Vegetable {
	return c.filter(func(v Vegetable) bool {
		return v.Planting.Window(a).Contains(month)
	})
}

// Categories returns the distinct categories present, in first-seen order.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	var out []Category
	for _, id := range c.order {
		cat := c.byID[id].Category
		if !slices.Contains(out, cat) {
			out = append(out, cat)
		}
	}
	return out
}

func (c *Catalog) filter(keep func(Vegetable) bool) []Vegetable {
	if c == nil {
		return nil
	}
	out := make([]Vegetable, 0, len(c.order))
	for _, id := range c.order {
		if v := *c.byID[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}
