package domain

// ColorTuple is an exact pixel value in blue, green, red order.
// Equality is exact; it is used directly as a map key when counting.
type ColorTuple [3]uint8

// NewBGR builds a tuple from channels in storage order.
func NewBGR(b, g, r uint8) ColorTuple {
	return ColorTuple{b, g, r}
}

func (c ColorTuple) B() uint8 { return c[0] }
func (c ColorTuple) G() uint8 { return c[1] }
func (c ColorTuple) R() uint8 { return c[2] }

// Ints returns the channels as plain integers in storage order, the shape
// the API echoes back.
func (c ColorTuple) Ints() []int {
	return []int{int(c[0]), int(c[1]), int(c[2])}
}

// Analysis is the outcome of one skin sampling request.
type Analysis struct {
	Locator  string        `json:"locator"`
	Variant  Variant       `json:"variant"`
	Anchors  []AnchorPoint `json:"anchors"`
	Samples  int           `json:"samples"`
	Count    int           `json:"count"`
	Dominant ColorTuple    `json:"dominant"`
	Hex      string        `json:"hex"`
	Tone     string        `json:"tone,omitempty"`
}
