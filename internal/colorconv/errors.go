package colorconv

import (
	"errors"
	"fmt"

	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

var (
	// ErrInvalidShape is matched by every *ShapeError.
	ErrInvalidShape = errors.New("colorconv: invalid image shape")

	// ErrLabelMismatch is matched by every *LabelError.
	ErrLabelMismatch = errors.New("colorconv: colorspace label mismatch")

	// ErrUnknownConversion is returned by Lookup and Find for unsupported pairs.
	ErrUnknownConversion = errors.New("colorconv: unknown conversion")
)

// ShapeError reports an input whose shape cannot hold the conversion's source
// colorspace. No conversion work has been done when it is returned.
type ShapeError struct {
	Conversion Conversion
	// Expected is the dimensionality the source colorspace needs (3, or 2 for gray).
	Expected int
	// Actual is the input's dimensionality; 0 for a nil tensor.
	Actual int
	// Shape is the input's full shape, nil for a nil tensor.
	Shape []int
}

func newShapeError(img *tensor.Tensor, conv Conversion) *ShapeError {
	e := &ShapeError{
		Conversion: conv,
		Expected:   tensor.ExpectedDims(conv.Source),
	}
	if img != nil {
		e.Actual = img.NDim()
		e.Shape = img.Shape()
	}
	return e
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("Image of shape %d expected. Found shape %d. This function converts %s image to its %s counterpart",
		e.Expected, e.Actual, withArticle(e.Conversion.Source), e.Conversion.Target.Title())
}

func (e *ShapeError) Unwrap() error { return ErrInvalidShape }

// LabelError reports an input whose shape fits but whose label does not match
// the conversion's source, under the RequireLabel policy.
type LabelError struct {
	Conversion Conversion
	Found      tensor.Colorspace
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("Image labeled %s expected. Found label %s. This function converts %s image to its %s counterpart",
		e.Conversion.Source, e.Found, withArticle(e.Conversion.Source), e.Conversion.Target.Title())
}

func (e *LabelError) Unwrap() error { return ErrLabelMismatch }

func withArticle(cs tensor.Colorspace) string {
	switch cs {
	case tensor.BGR, tensor.Gray:
		return "a " + cs.Title()
	default:
		return "an " + cs.Title()
	}
}
