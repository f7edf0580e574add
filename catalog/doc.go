// Package catalog holds the vegetable reference table consumed by every other
// package of github.com/katalvlaran/allotment.
//
// What:
//
//   - Vegetable is an immutable record: planting windows, days to harvest,
//     care profile and the companion/avoid lists that drive placement advice.
//   - Catalog is a load-once table keyed by vegetable id. Lookups are O(1);
//     iteration follows insertion order so listings stay stable.
//   - Default returns the built-in table decoded from an embedded YAML file.
//     FromYAML, FromTOML and Open decode caller-supplied tables.
//
// Accessors:
//
//   - Get, Has:      lookup by id.
//   - ByCategory:    filter by Category.
//   - Search:        case-insensitive substring over name and description.
//   - ByMonth:       vegetables whose window for an Activity includes a month.
//   - Categories:    distinct categories in first-seen order.
//
// All accessors are safe on a nil *Catalog and return empty results, so
// callers probing ids that may not exist never have to guard.
//
// Errors (construction only):
//
//   - ErrEmptyID, ErrDuplicateID, ErrUnknownCategory, ErrBadDays,
//     ErrBadMonth, ErrSelfConflict, ErrUnsupportedFormat.
package catalog
