package geo

import "github.com/shenikar/emergency_dispatch_system/internal/models"

// Nearest находит ближайший к origin элемент, удовлетворяющий predicate.
// При равных расстояниях выигрывает первый встреченный. Второе значение false,
// если ни один кандидат не подошел.
func Nearest[T any](origin models.Point, candidates []T, position func(T) models.Point, predicate func(T) bool) (T, bool) {
	var (
		best     T
		found    bool
		bestDist float64
	)
	for _, c := range candidates {
		if predicate != nil && !predicate(c) {
			continue
		}
		d := DistanceKm(origin, position(c))
		if !found || d < bestDist {
			best = c
			bestDist = d
			found = true
		}
	}
	return best, found
}

// Any - предикат, пропускающий всех кандидатов
func Any[T any](T) bool { return true }
