// Package allotment is an in-memory planning engine for allotment beds:
// where to put each vegetable, what to grow next year, and what to sow in
// the gaps.
//
// Everything is a deterministic function of a vegetable catalog, a bed and
// its rotation history. Nothing is stored, fetched or rendered here; hosts
// load their own data and hand it in.
//
//	catalog/   vegetable reference table: planting windows, care, companions
//	grid/      rectangular beds and the 8-neighbor adjacency query
//	companion/ symmetric good/neutral/bad verdict for two vegetables
//	placement/ placement validation report and clamped companion score
//	rotation/  legumes -> brassicas -> roots cycle, violations, history
//	gapfill/   ranked quick-win suggestions for an empty cell
//	planner/   one Engine binding all of the above to a catalog
//	advice/    warning kinds and severities shared by the checks
//	config/    settings for the allotment command
//	cmd/       the allotment command line
//
// Quick ASCII example (3×3 bed, carrots proposed for the center):
//
//	.  On .
//	.  ?? .
//	.  .  .
//
// Onions to the north are a listed companion, so the placement is "good"
// and scores 65; swap them for parsnips and it turns "bad" at 35.
package allotment
