// Package companion answers whether two vegetables make good neighbors.
//
// Check combines two set-membership tests, one per direction, with a fixed
// precedence: if either vegetable lists the other as one to avoid the pair
// is Bad; otherwise if either lists the other as a companion the pair is
// Good; otherwise Neutral. Because both directions are consulted the verdict
// is symmetric, Check(a, b) == Check(b, a), even when a catalog records a
// relationship on only one side.
//
// Unknown ids are not errors: any pair involving an id the catalog cannot
// resolve is Neutral, and Suggested/Avoided return an empty list.
package companion
