package mesh

import "errors"

var (
	ErrMeshUnavailable = errors.New("landmark service unavailable")
	ErrInvalidResponse = errors.New("invalid response from landmark service")
	ErrIncompleteMesh  = errors.New("landmark mesh is incomplete")
	ErrImageEncoding   = errors.New("image could not be prepared for landmark service")
)
