// Package scoring computes priority scores for pending work items.
//
// Each item is graded along seven independent dimensions (urgency, impact,
// deadline proximity, sensitivity, stakeholder tier, waiting age and meeting
// linkage), every dimension mapped to [0,1] with a textual attribution.
// A weighted sum combines the dimensions, additive modifiers bump hard
// deadlines and regulated sensitivity categories, and the final score is
// clamped back to [0,1].
//
// The scorer never fails on malformed input: a missing or unknown field is
// mapped to a documented neutral default so that one bad item degrades
// gracefully instead of aborting a whole planning pass.
package scoring
