package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/litmart/litmart-backend/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func targetedEvent(targets ...domain.EventTarget) *domain.Event {
	return &domain.Event{
		ID:      1,
		Name:    "Test event",
		Status:  domain.EventStatusActive,
		Targets: targets,
	}
}

func catalogBook() *domain.Book {
	return &domain.Book{
		ID:          100,
		Title:       "The Test Book",
		AuthorID:    7,
		PublisherID: 3,
		SeriesID:    int64Ptr(9),
		Categories:  []domain.Category{{ID: 20}, {ID: 21}},
	}
}

func TestEventMatchesBook_NilInputs(t *testing.T) {
	assert.False(t, EventMatchesBook(nil, catalogBook()))
	assert.False(t, EventMatchesBook(targetedEvent(), nil))
}

func TestEventMatchesBook_ZeroTargetsMatchesNothing(t *testing.T) {
	assert.False(t, EventMatchesBook(targetedEvent(), catalogBook()))
}

func TestEventMatchesBook_AllTargetMatchesEverything(t *testing.T) {
	event := targetedEvent(domain.EventTarget{TargetType: domain.TargetAll})
	assert.True(t, EventMatchesBook(event, catalogBook()))
}

func TestEventMatchesBook_BookTarget(t *testing.T) {
	t.Run("matching id", func(t *testing.T) {
		event := targetedEvent(domain.EventTarget{TargetType: domain.TargetBook, TargetID: int64Ptr(100)})
		assert.True(t, EventMatchesBook(event, catalogBook()))
	})

	t.Run("different id", func(t *testing.T) {
		event := targetedEvent(domain.EventTarget{TargetType: domain.TargetBook, TargetID: int64Ptr(999)})
		assert.False(t, EventMatchesBook(event, catalogBook()))
	})

	t.Run("nil target id", func(t *testing.T) {
		event := targetedEvent(domain.EventTarget{TargetType: domain.TargetBook})
		assert.False(t, EventMatchesBook(event, catalogBook()))
	})
}

func TestEventMatchesBook_CategoryTarget(t *testing.T) {
	t.Run("book in category", func(t *testing.T) {
		event := targetedEvent(domain.EventTarget{TargetType: domain.TargetCategory, TargetID: int64Ptr(21)})
		assert.True(t, EventMatchesBook(event, catalogBook()))
	})

	t.Run("book not in category", func(t *testing.T) {
		event := targetedEvent(domain.EventTarget{TargetType: domain.TargetCategory, TargetID: int64Ptr(55)})
		assert.False(t, EventMatchesBook(event, catalogBook()))
	})
}

func TestEventMatchesBook_SeriesTarget(t *testing.T) {
	t.Run("matching series", func(t *testing.T) {
		event := targetedEvent(domain.EventTarget{TargetType: domain.TargetSeries, TargetID: int64Ptr(9)})
		assert.True(t, EventMatchesBook(event, catalogBook()))
	})

	t.Run("book without a series never matches", func(t *testing.T) {
		event := targetedEvent(domain.EventTarget{TargetType: domain.TargetSeries, TargetID: int64Ptr(9)})
		book := catalogBook()
		book.SeriesID = nil
		assert.False(t, EventMatchesBook(event, book))
	})
}

func TestEventMatchesBook_AuthorAndPublisherTargets(t *testing.T) {
	authorEvent := targetedEvent(domain.EventTarget{TargetType: domain.TargetAuthor, TargetID: int64Ptr(7)})
	assert.True(t, EventMatchesBook(authorEvent, catalogBook()))

	publisherEvent := targetedEvent(domain.EventTarget{TargetType: domain.TargetPublisher, TargetID: int64Ptr(3)})
	assert.True(t, EventMatchesBook(publisherEvent, catalogBook()))

	wrongPublisher := targetedEvent(domain.EventTarget{TargetType: domain.TargetPublisher, TargetID: int64Ptr(4)})
	assert.False(t, EventMatchesBook(wrongPublisher, catalogBook()))
}

func TestEventMatchesBook_UserScopedTargetsAreSkipped(t *testing.T) {
	event := targetedEvent(
		domain.EventTarget{TargetType: domain.TargetUser, TargetID: int64Ptr(100)},
		domain.EventTarget{TargetType: domain.TargetNewUser},
		domain.EventTarget{TargetType: domain.TargetAllOrders},
	)
	// None of these describe the catalog, so the book must not match
	assert.False(t, EventMatchesBook(event, catalogBook()))
}

func TestEventMatchesBook_MixedTargetsAnyMatchWins(t *testing.T) {
	event := targetedEvent(
		domain.EventTarget{TargetType: domain.TargetBook, TargetID: int64Ptr(999)},
		domain.EventTarget{TargetType: domain.TargetUser, TargetID: int64Ptr(5)},
		domain.EventTarget{TargetType: domain.TargetCategory, TargetID: int64Ptr(20)},
	)
	assert.True(t, EventMatchesBook(event, catalogBook()))
}
