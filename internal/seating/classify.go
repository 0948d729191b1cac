// Package seating строит карту мест маршрута для конкретного пассажира.
package seating

import (
	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// Classify returns the seats of the route numbered 1..capacity.
//
// Riders with a valid seat number that is still free are pinned to it, the rest take
// the lowest free seats in roster order. The seat of viewerID (if present in the roster)
// is marked as viewer; an empty viewerID marks nothing.
func Classify(route domain.Route, viewerID string) ([]domain.Seat, error) {
	if err := route.Validate(); err != nil {
		return nil, err
	}

	occupants := place(route.Roster, route.Capacity)

	seats := make([]domain.Seat, route.Capacity)
	viewerMarked := false

	for number := 1; number <= route.Capacity; number++ {
		occupant := occupants[number]

		isViewer := false
		if !viewerMarked && viewerID != "" && occupant != nil && occupant.ID == viewerID {
			isViewer = true
			viewerMarked = true
		}

		seat := domain.Seat{
			Number:   number,
			Category: categorize(occupant, isViewer),
		}
		if occupant != nil {
			seat.OccupantName = occupant.Name
		}
		seats[number-1] = seat
	}

	return seats, nil
}

// ViewerSeat возвращает номер места зрителя, если оно есть на карте
func ViewerSeat(seats []domain.Seat) (int, bool) {
	for i := range seats {
		if seats[i].IsViewer() {
			return seats[i].Number, true
		}
	}
	return 0, false
}

// place раскладывает ростер по местам; индекс результата - номер места (0 не используется)
func place(roster []domain.Person, capacity int) []*domain.Person {
	occupants := make([]*domain.Person, capacity+1)
	unpinned := make([]int, 0, len(roster))

	// Шаг 1: закрепленные места
	for i := range roster {
		seat := roster[i].SeatNumber
		if seat != nil && *seat >= 1 && *seat <= capacity && occupants[*seat] == nil {
			occupants[*seat] = &roster[i]
			continue
		}
		unpinned = append(unpinned, i)
	}

	// Шаг 2: остальные занимают минимальные свободные номера в порядке ростера
	next := 1
	for _, i := range unpinned {
		for next <= capacity && occupants[next] != nil {
			next++
		}
		if next > capacity {
			break
		}
		occupants[next] = &roster[i]
	}

	return occupants
}
