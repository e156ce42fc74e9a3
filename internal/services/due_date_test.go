package services

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"owing/internal/core"
)

func TestDueDate(t *testing.T) {
	tests := []struct {
		name  string
		today core.Date
		want  core.Date
	}{
		{
			name:  "same year, next month",
			today: core.NewDate(2023, 1, 5),
			want:  core.NewDate(2023, 2, 4),
		},
		{
			name:  "short february, non-leap year",
			today: core.NewDate(2023, 1, 31),
			want:  core.NewDate(2023, 3, 2),
		},
		{
			name:  "short february, leap year",
			today: core.NewDate(2024, 1, 31),
			want:  core.NewDate(2024, 3, 1),
		},
		{
			name:  "year rollover",
			today: core.NewDate(2024, 12, 15),
			want:  core.NewDate(2025, 1, 14),
		},
		{
			name:  "leap day",
			today: core.NewDate(2024, 2, 29),
			want:  core.NewDate(2024, 3, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DueDate(tt.today)
			if !got.Equal(tt.want.Time) {
				t.Errorf("DueDate(%s) = %s, want %s", tt.today, got, tt.want)
			}
			if days := got.Sub(tt.today.Time).Hours() / 24; days != PaymentTermDays {
				t.Errorf("DueDate(%s) is %v days later, want %d", tt.today, days, PaymentTermDays)
			}
		})
	}
}

func TestToday(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want core.Date
	}{
		{
			name: "utc midday",
			now:  time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
			loc:  time.UTC,
			want: core.NewDate(2024, 1, 5),
		},
		{
			name: "late utc is next day in tokyo",
			now:  time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC),
			loc:  tokyo,
			want: core.NewDate(2025, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Today(clockwork.NewFakeClockAt(tt.now), tt.loc)
			if !got.Equal(tt.want.Time) {
				t.Errorf("Today() = %s, want %s", got, tt.want)
			}
		})
	}
}
