package locator

import (
	"fmt"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

// RegionOffsets are the fractional (x, y) offsets into a face box used by
// box-based strategies: both cheeks, then the forehead.
var RegionOffsets = [][2]float64{
	{0.3, 0.4},
	{0.7, 0.4},
	{0.5, 0.2},
}

// LandmarkIDs are the face mesh indices sampled by landmark strategies:
// both cheeks, the forehead centre, the left forehead and the chin.
var LandmarkIDs = []int{205, 425, 151, 108, 200}

// AnchorsFromRegion places RegionOffsets inside r.
func AnchorsFromRegion(r domain.FaceRegion) []domain.AnchorPoint {
	anchors := make([]domain.AnchorPoint, 0, len(RegionOffsets))
	for _, off := range RegionOffsets {
		anchors = append(anchors, domain.AnchorPoint{
			X: int(float64(r.X) + off[0]*float64(r.Width)),
			Y: int(float64(r.Y) + off[1]*float64(r.Height)),
		})
	}
	return anchors
}

// AnchorsFromLandmarks denormalizes the LandmarkIDs points of set against
// an image of width x height.
func AnchorsFromLandmarks(set domain.LandmarkSet, width, height int) ([]domain.AnchorPoint, error) {
	anchors := make([]domain.AnchorPoint, 0, len(LandmarkIDs))
	for _, id := range LandmarkIDs {
		if id >= len(set) {
			return nil, fmt.Errorf("landmark %d missing from set of %d points", id, len(set))
		}
		p := set[id]
		anchors = append(anchors, domain.AnchorPoint{
			X: int(p.X * float64(width)),
			Y: int(p.Y * float64(height)),
		})
	}
	return anchors, nil
}
