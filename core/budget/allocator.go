// Package budget splits a day's available capacity across work lanes.
package budget

import "github.com/avelys/blockplan/core/model"

// Allocate splits aecMinutes across the given lanes proportionally to their
// daily budgets. Each share is truncated to whole minutes and the truncation
// remainder is not redistributed, so the shares can sum to slightly less
// than aecMinutes. Lanes with a zero daily budget receive zero.
func Allocate(aecMinutes int, lanes []model.Lane) map[string]int {
	shares := make(map[string]int, len(lanes))
	if aecMinutes <= 0 {
		for _, l := range lanes {
			shares[l.ID] = 0
		}
		return shares
	}

	total := 0
	for _, l := range lanes {
		if l.Budget.DailyMinutes > 0 {
			total += l.Budget.DailyMinutes
		}
	}
	for _, l := range lanes {
		if total == 0 || l.Budget.DailyMinutes <= 0 {
			shares[l.ID] = 0
			continue
		}
		shares[l.ID] = aecMinutes * l.Budget.DailyMinutes / total
	}
	return shares
}
