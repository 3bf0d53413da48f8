package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name     string
		goal     float64
		current  float64
		expected float64
	}{
		{name: "half funded", goal: 1000, current: 500, expected: 50},
		{name: "unfunded", goal: 1000, current: 0, expected: 0},
		{name: "exactly funded", goal: 25000, current: 25000, expected: 100},
		{name: "overfunded stays unclamped", goal: 1000, current: 1500, expected: 150},
		{name: "fractional", goal: 30000, current: 15600, expected: 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Campaign{Goal: tt.goal, CurrentAmount: tt.current}
			assert.Equal(t, tt.expected, ProgressPercentage(c))
		})
	}
}

func TestDaysLeft(t *testing.T) {
	now := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		expected int
	}{
		{name: "ten days ahead", deadline: now.Add(10 * 24 * time.Hour), expected: 10},
		{name: "partial day rounds up", deadline: now.Add(36 * time.Hour), expected: 2},
		{name: "same instant", deadline: now, expected: 0},
		{name: "in the past", deadline: now.Add(-48 * time.Hour), expected: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Campaign{Deadline: tt.deadline}
			assert.Equal(t, tt.expected, DaysLeft(c, now))
		})
	}
}

func TestIsEnded_MatchesDaysLeftSign(t *testing.T) {
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	open := Campaign{Deadline: now.Add(24 * time.Hour)}
	ended := Campaign{Deadline: now.Add(-time.Hour)}
	boundary := Campaign{Deadline: now}

	assert.False(t, IsEnded(open, now))
	assert.True(t, IsEnded(ended, now))
	assert.True(t, IsEnded(boundary, now))
}

func TestAverageDonation(t *testing.T) {
	c := Campaign{
		CurrentAmount: 900,
		Donors: []Donor{
			{ID: "1", Amount: 400},
			{ID: "2", Amount: 500},
		},
	}

	avg, ok := AverageDonation(c)
	require.True(t, ok)
	assert.Equal(t, 450.0, avg)
}

func TestAverageDonation_NoDonors(t *testing.T) {
	c := Campaign{CurrentAmount: 0, Donors: nil}

	_, ok := AverageDonation(c)
	assert.False(t, ok, "average must signal the no-donor case instead of dividing by zero")
}

func TestTopDonors(t *testing.T) {
	c := Campaign{
		Donors: []Donor{
			{ID: "a", Amount: 100},
			{ID: "b", Amount: 500},
			{ID: "c", Amount: 250},
			{ID: "d", Amount: 500}, // same amount as b, donated later
			{ID: "e", Amount: 50},
			{ID: "f", Amount: 300},
		},
	}

	top := TopDonors(c, 5)
	require.Len(t, top, 5)

	// Descending by amount, ties keep donation order.
	ids := make([]string, len(top))
	for i, d := range top {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"b", "d", "f", "c", "a"}, ids)

	// Strictly non-increasing amounts.
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Amount, top[i].Amount)
	}
}

func TestTopDonors_FewerThanRequested(t *testing.T) {
	c := Campaign{Donors: []Donor{{ID: "1", Amount: 10}}}

	top := TopDonors(c, 5)
	assert.Len(t, top, 1)
}

func TestTopDonors_DoesNotMutateInput(t *testing.T) {
	c := Campaign{
		Donors: []Donor{
			{ID: "a", Amount: 1},
			{ID: "b", Amount: 2},
		},
	}

	TopDonors(c, 5)

	assert.Equal(t, "a", c.Donors[0].ID, "input donor order must be preserved")
	assert.Equal(t, "b", c.Donors[1].ID)
}

func TestDonorDisplayName(t *testing.T) {
	anonymous := Donor{Name: "Jane", Anonymous: true}
	public := Donor{Name: "Jane"}

	assert.Equal(t, AnonymousName, anonymous.DisplayName())
	assert.Equal(t, "Jane", public.DisplayName())
}

func TestCampaignToResponse_HidesAnonymousNames(t *testing.T) {
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	c := Campaign{
		ID:            "c1",
		Goal:          1000,
		CurrentAmount: 500,
		Deadline:      now.Add(5 * 24 * time.Hour),
		Donors: []Donor{
			{ID: "1", Name: "Jane", Amount: 500, Anonymous: true},
		},
	}

	resp := c.ToResponse(now)

	require.Len(t, resp.Donors, 1)
	assert.Equal(t, AnonymousName, resp.Donors[0].Name)
	require.Len(t, resp.TopDonors, 1)
	assert.Equal(t, AnonymousName, resp.TopDonors[0].Name)
	assert.Equal(t, 50.0, resp.ProgressPercentage)
	assert.Equal(t, 5, resp.DaysLeft)
	require.NotNil(t, resp.AverageDonation)
	assert.Equal(t, 500.0, *resp.AverageDonation)
}

func TestCampaignToResponse_NoDonors(t *testing.T) {
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	c := Campaign{ID: "c1", Goal: 1000, CurrentAmount: 0, Deadline: now.Add(-time.Hour)}

	resp := c.ToResponse(now)

	assert.Nil(t, resp.AverageDonation)
	assert.True(t, resp.Ended)
}
