package service

import "github.com/litmart/litmart-backend/internal/domain"

// EventMatchesBook reports whether a book falls inside an event's target set.
// Pure predicate, no side effects.
//
// An event with zero targets matches nothing. An ALL target matches every
// book regardless of other targets. User- and order-scoped target types
// (USER, NEW_USER, ALL_ORDERS, ...) carry no meaning against a book and are
// skipped without matching or erroring.
func EventMatchesBook(event *domain.Event, book *domain.Book) bool {
	if event == nil || book == nil {
		return false
	}

	for i := range event.Targets {
		target := &event.Targets[i]

		switch target.TargetType {
		case domain.TargetAll:
			return true
		case domain.TargetBook:
			if target.TargetID != nil && *target.TargetID == book.ID {
				return true
			}
		case domain.TargetCategory:
			if target.TargetID != nil && book.InCategory(*target.TargetID) {
				return true
			}
		case domain.TargetSeries:
			if target.TargetID != nil && book.SeriesID != nil && *target.TargetID == *book.SeriesID {
				return true
			}
		case domain.TargetAuthor:
			if target.TargetID != nil && *target.TargetID == book.AuthorID {
				return true
			}
		case domain.TargetPublisher:
			if target.TargetID != nil && *target.TargetID == book.PublisherID {
				return true
			}
		default:
			// user/order-scoped target types are not evaluated against books
		}
	}

	return false
}
