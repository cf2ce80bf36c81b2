package tensor

// Classification is the outcome of checking a tensor against a colorspace.
type Classification int

const (
	// Rejected means the tensor's shape cannot hold the colorspace.
	Rejected Classification = iota
	// Plausible means the shape fits but the label does not confirm it.
	Plausible
	// Confirmed means the tensor is labeled with the colorspace.
	Confirmed
)

func (c Classification) String() string {
	switch c {
	case Confirmed:
		return "confirmed"
	case Plausible:
		return "plausible"
	default:
		return "rejected"
	}
}

// Classify checks whether t can be treated as an image in colorspace cs.
//
// 3-channel spaces need a 3-D tensor whose last dimension is 3; gray needs a 2-D
// tensor or a 3-D tensor with a single channel. A tensor whose shape fits is
// Confirmed when it is also labeled cs and Plausible otherwise. A label never
// rescues a shape that does not fit: a 2-D tensor labeled rgb is Rejected.
// A nil tensor, or any check against Unknown, is Rejected.
func Classify(t *Tensor, cs Colorspace) Classification {
	if t == nil || cs == Unknown || !ShapeFits(t, cs) {
		return Rejected
	}
	if t.colorspace == cs {
		return Confirmed
	}
	return Plausible
}

// ShapeFits reports whether t's shape is structurally compatible with cs.
func ShapeFits(t *Tensor, cs Colorspace) bool {
	if t == nil {
		return false
	}
	switch cs.Channels() {
	case 3:
		return len(t.shape) == 3 && t.shape[2] == 3
	case 1:
		return len(t.shape) == 2 || (len(t.shape) == 3 && t.shape[2] == 1)
	default:
		return false
	}
}

// ExpectedDims returns the dimensionality a conversion from cs expects:
// 3 for color spaces and 2 for gray.
func ExpectedDims(cs Colorspace) int {
	if cs == Gray {
		return 2
	}
	return 3
}
