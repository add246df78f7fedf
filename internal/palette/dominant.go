// Package palette picks the dominant colour of a pixel sample and renders it.
package palette

import (
	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

// Dominant returns the most frequent exact tuple in pixels and its count.
// Ties go to the tuple seen first in pixels.
func Dominant(pixels []domain.ColorTuple) (domain.ColorTuple, int, error) {
	if len(pixels) == 0 {
		return domain.ColorTuple{}, 0, domain.ErrEmptySample
	}

	counts := make(map[domain.ColorTuple]int)
	order := make([]domain.ColorTuple, 0)

	for _, p := range pixels {
		if _, seen := counts[p]; !seen {
			order = append(order, p)
		}
		counts[p]++
	}

	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}

	return best, counts[best], nil
}
