package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventIsRunningAt(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	inside := Event{
		Status:    EventStatusActive,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	}

	t.Run("active inside window", func(t *testing.T) {
		assert.True(t, inside.IsRunningAt(now))
	})

	t.Run("status gates selection regardless of window", func(t *testing.T) {
		for _, status := range []EventStatus{
			EventStatusDraft, EventStatusPaused, EventStatusExpired, EventStatusDisabled,
		} {
			e := inside
			e.Status = status
			assert.False(t, e.IsRunningAt(now), "status %s", status)
		}
	})

	t.Run("window boundaries are exclusive", func(t *testing.T) {
		atStart := inside
		atStart.StartTime = now
		assert.False(t, atStart.IsRunningAt(now))

		atEnd := inside
		atEnd.EndTime = now
		assert.False(t, atEnd.IsRunningAt(now))
	})
}

func TestEventFirstAction(t *testing.T) {
	t.Run("no actions", func(t *testing.T) {
		e := Event{}
		assert.Nil(t, e.FirstAction())
	})

	t.Run("only the first action counts", func(t *testing.T) {
		e := Event{Actions: []EventAction{
			{ID: 1, ActionType: ActionDiscountPercent, ActionValue: "10"},
			{ID: 2, ActionType: ActionDiscountAmount, ActionValue: "5000"},
		}}
		first := e.FirstAction()
		assert.NotNil(t, first)
		assert.Equal(t, int64(1), first.ID)
	})
}
