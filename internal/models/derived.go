package models

import (
	"math"
	"sort"
	"time"
)

// Derived presentation metrics. All functions are pure: the current time
// is injected so callers and tests stay deterministic.

// ProgressPercentage returns currentAmount/goal*100. The value is not
// clamped; overfunded campaigns exceed 100 and callers clamp for display.
func ProgressPercentage(c Campaign) float64 {
	return c.CurrentAmount / c.Goal * 100
}

// DaysLeft returns the number of whole days until the deadline, rounded
// up. Zero or negative means the campaign has ended.
func DaysLeft(c Campaign, now time.Time) int {
	remaining := c.Deadline.Sub(now)
	return int(math.Ceil(remaining.Hours() / 24))
}

// IsEnded reports whether the campaign no longer accepts donations.
func IsEnded(c Campaign, now time.Time) bool {
	return DaysLeft(c, now) <= 0
}

// AverageDonation returns the mean donation amount. The second return
// value is false when the campaign has no donors yet.
func AverageDonation(c Campaign) (float64, bool) {
	if len(c.Donors) == 0 {
		return 0, false
	}
	return c.CurrentAmount / float64(len(c.Donors)), true
}

// TopDonors returns up to n donors ordered by amount descending. The sort
// is stable: equal amounts keep their original donation order.
func TopDonors(c Campaign, n int) []Donor {
	donors := make([]Donor, len(c.Donors))
	copy(donors, c.Donors)

	sort.SliceStable(donors, func(i, j int) bool {
		return donors[i].Amount > donors[j].Amount
	})

	if n < len(donors) {
		donors = donors[:n]
	}
	return donors
}
