package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedAt(t time.Time) *Record {
	return &Record{
		Answers:         AnswerSet{"q1": ChoiceAnswer(1)},
		Result:          &Result{ProfileKey: "balanced", Score: 30},
		LastCompletedAt: &t,
	}
}

func TestCanRetake(t *testing.T) {
	completed := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rec     *Record
		premium bool
		now     time.Time
		want    bool
	}{
		{
			name: "premium always allowed",
			rec:  completedAt(completed), premium: true,
			now:  completed.Add(time.Hour),
			want: true,
		},
		{
			name: "never completed",
			rec:  NewRecord(),
			now:  completed,
			want: true,
		},
		{
			name: "one day after completion",
			rec:  completedAt(completed),
			now:  completed.AddDate(0, 0, 1),
			want: false,
		},
		{
			name: "just before one month",
			rec:  completedAt(completed),
			now:  time.Date(2026, time.April, 15, 9, 59, 59, 0, time.UTC),
			want: false,
		},
		{
			name: "exactly one month",
			rec:  completedAt(completed),
			now:  time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanRetake(tt.rec, tt.premium, tt.now))
		})
	}
}

func TestNextAvailableAtClampsMonthEnd(t *testing.T) {
	tests := []struct {
		name      string
		completed time.Time
		want      time.Time
	}{
		{
			name:      "mid-month advances plainly",
			completed: time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC),
			want:      time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:      "jan 31 clamps to feb 28",
			completed: time.Date(2026, time.January, 31, 8, 30, 0, 0, time.UTC),
			want:      time.Date(2026, time.February, 28, 8, 30, 0, 0, time.UTC),
		},
		{
			name:      "jan 31 leap year clamps to feb 29",
			completed: time.Date(2028, time.January, 31, 8, 30, 0, 0, time.UTC),
			want:      time.Date(2028, time.February, 29, 8, 30, 0, 0, time.UTC),
		},
		{
			name:      "may 31 clamps to jun 30",
			completed: time.Date(2026, time.May, 31, 12, 0, 0, 0, time.UTC),
			want:      time.Date(2026, time.June, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "december rolls into next year",
			completed: time.Date(2026, time.December, 31, 23, 0, 0, 0, time.UTC),
			want:      time.Date(2027, time.January, 31, 23, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := NextAvailableAt(completedAt(tt.completed))
			require.True(t, ok)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestNextAvailableAtWithoutCompletion(t *testing.T) {
	_, ok := NextAvailableAt(NewRecord())
	assert.False(t, ok)
}

func TestRetakeClearsRecord(t *testing.T) {
	completed := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	rec := completedAt(completed)

	Retake(rec)

	assert.Empty(t, rec.Answers)
	assert.Nil(t, rec.Result)
	assert.Nil(t, rec.LastCompletedAt)
	assert.False(t, rec.Completed())
}
