// Package rotation tracks which crop family each bed grew per year and
// advises on the next one.
//
// A bed moves through the canonical three-step cycle
//
//	legumes → brassicas → roots → legumes → …
//
// so nitrogen fixers are followed by heavy feeders and then light feeders.
// A bed with no history, or whose last family sits outside the cycle
// (alliums, cucurbits, permanent), restarts at legumes.
//
// Violations: a non-permanent family that returns to a bed within two years
// is flagged, with error severity when it was grown the previous year and
// warning severity when it was grown two years earlier. History is scanned
// newest first, so the one-year conflict is the one reported when both exist.
//
// Scores (0–100): permanent 75, matches suggestion 100, error violation 10,
// warning violation 30, anything else 60.
//
// Dominant group: the most common non-permanent family among planted cells.
// Ties go to the family that comes first in the order legumes, brassicas,
// roots, solanaceae, alliums, cucurbits.
//
// History entries are facts keyed by (PlotID, Year); Upsert returns a new
// slice with the key replaced and never edits the input.
package rotation
