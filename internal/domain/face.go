package domain

// Variant identifica a família do localizador e define o formato da resposta
type Variant string

const (
	// VariantClassical: detector de bounding box, três pontos de amostragem
	VariantClassical Variant = "classical"
	// VariantLandmark: malha de landmarks normalizados, cinco pontos
	VariantLandmark Variant = "landmark"
)

// FaceRegion is an axis-aligned face box in image pixel coordinates.
type FaceRegion struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the region has no area.
func (r FaceRegion) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// AnchorPoint is the pixel centre of one sampling patch.
type AnchorPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Landmark is a normalized mesh point; X and Y are fractions of the image size.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LandmarkSet holds the mesh of a single face, indexed by feature ID.
type LandmarkSet []Landmark

// MeshSize is the point count of the refined face mesh.
const MeshSize = 478
