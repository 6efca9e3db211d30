package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Pothole", CategoryPothole},
		{"pothole", CategoryPothole},
		{"water_supply", CategoryWaterSupply},
		{"  Road   damage ", CategoryRoadDamage},
		{"ROAD SIGN", CategoryRoadSign},
		{"volcano", CategoryOther},
		{"", CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.in))
		})
	}
}

func TestParseSeverity(t *testing.T) {
	sev, ok := ParseSeverity("High")
	assert.True(t, ok)
	assert.Equal(t, SeverityHigh, sev)

	_, ok = ParseSeverity("high")
	assert.False(t, ok)

	_, ok = ParseSeverity("Extreme")
	assert.False(t, ok)
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in     string
		want   Priority
		wantOK bool
	}{
		{"Low", PriorityLow, true},
		{"normal", PriorityMedium, true},
		{"Medium", PriorityMedium, true},
		{" HIGH ", PriorityHigh, true},
		{"critical", PriorityCritical, true},
		{"urgent", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePriority(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusClosed.Valid())
	assert.False(t, Status("archived").Valid())
}

func TestUserIsAdmin(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}
