package mesh

import "github.com/saturnino-fabrica-de-software/skintone/internal/domain"

// LandmarksRequest for POST /landmarks
type LandmarksRequest struct {
	Img                    string  `json:"img"` // base64 encoded image
	MaxNumFaces            int     `json:"max_num_faces"`
	MinDetectionConfidence float64 `json:"min_detection_confidence"`
}

// LandmarksResponse from POST /landmarks
type LandmarksResponse struct {
	Faces []FaceMesh `json:"faces"`
}

// FaceMesh holds the normalized points of one face, in mesh index order.
type FaceMesh struct {
	Landmarks domain.LandmarkSet `json:"landmarks"`
}
