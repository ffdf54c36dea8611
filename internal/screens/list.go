package screens

import (
	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/samber/lo"
)

// replaceByID swaps the entry with item's id for item. Lists without that
// id are returned unchanged.
func replaceByID[T any](list []T, item T, id func(T) uint) []T {
	_, idx, ok := lo.FindIndexOf(list, func(existing T) bool { return id(existing) == id(item) })
	if !ok {
		return list
	}
	out := append([]T(nil), list...)
	out[idx] = item
	return out
}

func removeByID[T any](list []T, target uint, id func(T) uint) []T {
	return lo.Reject(list, func(item T, _ int) bool { return id(item) == target })
}

func findByID[T any](list []T, target uint, id func(T) uint) (T, bool) {
	return lo.Find(list, func(item T) bool { return id(item) == target })
}

func roomID(r models.Room) uint { return r.ID }
func guestID(g models.Guest) uint { return g.ID }
func reservationID(r models.Reservation) uint { return r.ID }
