package catalog

import "errors"

// Sentinel errors returned while building or decoding a Catalog.
var (
	// ErrEmptyID indicates a vegetable record without an id.
	ErrEmptyID = errors.New("catalog: vegetable id must be non-empty")
	// ErrDuplicateID indicates two records share the same id.
	ErrDuplicateID = errors.New("catalog: duplicate vegetable id")
	// ErrUnknownCategory indicates a category outside the fixed enumeration.
	ErrUnknownCategory = errors.New("catalog: unknown category")
	// ErrBadDays indicates a days-to-harvest range with min <= 0 or min > max.
	ErrBadDays = errors.New("catalog: days to harvest must satisfy 0 < min <= max")
	// ErrBadMonth indicates a planting window month outside 1..12.
	ErrBadMonth = errors.New("catalog: month must be within 1..12")
	// ErrSelfConflict indicates an id listed as both companion and avoid.
	ErrSelfConflict = errors.New("catalog: id appears in both companion and avoid lists")
	// ErrUnsupportedFormat indicates a file extension Open cannot decode.
	ErrUnsupportedFormat = errors.New("catalog: unsupported catalog file format")
)
