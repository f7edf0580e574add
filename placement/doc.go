// Package placement validates putting a vegetable into a bed cell and scores
// how well it would sit among its planted neighbors.
//
// Validate reports the aggregate compatibility with the planted Moore
// neighbors of the target cell: Bad if any neighbor is antagonistic (one
// avoid warning per offending neighbor), Good if none is antagonistic and at
// least one is a companion (with a suggestion naming them), Neutral
// otherwise. A Bad result is advice, not an invalidation; only an id the
// catalog cannot resolve makes a placement invalid.
//
// CompanionScore starts at a neutral base of 50, adds a fixed bonus per good
// neighbor and a fixed penalty per bad one, and clamps the total to [0, 100].
package placement
