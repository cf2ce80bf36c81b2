package colorconv

import (
	"go.uber.org/zap"

	"github.com/ironsheep/colorconv-mcp/internal/kernel"
	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

// Policy decides whether a Plausible classification is good enough.
type Policy int

const (
	// AcceptPlausible accepts any input whose shape fits the source colorspace.
	AcceptPlausible Policy = iota
	// RequireLabel only accepts inputs labeled with the source colorspace.
	RequireLabel
)

func (p Policy) String() string {
	if p == RequireLabel {
		return "require-label"
	}
	return "accept-plausible"
}

// Conversion describes one source→target pair and the kernel mode implementing it.
type Conversion struct {
	// Name is "<source>2<target>", e.g. "rgb2hsv".
	Name   string
	Source tensor.Colorspace
	Target tensor.Colorspace
	Mode   kernel.Mode
}

// Converter validates inputs, runs the kernel and labels the result.
// It holds no per-call state and is safe for concurrent use when its
// kernel is.
type Converter struct {
	kernel kernel.Kernel
	policy Policy
	logger *zap.Logger
}

// Option configures a Converter.
type Option func(c *Converter)

// WithKernel sets the conversion backend. The default is kernel.Default().
func WithKernel(k kernel.Kernel) Option {
	return func(c *Converter) {
		c.kernel = k
	}
}

// WithPolicy sets the validation policy. The default is AcceptPlausible.
func WithPolicy(p Policy) Option {
	return func(c *Converter) {
		c.policy = p
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		kernel: kernel.Default(),
		policy: AcceptPlausible,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Kernel returns the backend in use.
func (c *Converter) Kernel() kernel.Kernel { return c.kernel }

// Policy returns the validation policy in use.
func (c *Converter) Policy() Policy { return c.policy }

// Convert runs a conversion on img and returns a new tensor labeled conv.Target.
//
// The input is first classified against conv.Source:
//   - Rejected: returns a *ShapeError without calling the kernel.
//   - Plausible: accepted under AcceptPlausible (a differing known label is logged),
//     rejected with a *LabelError under RequireLabel.
//   - Confirmed: accepted.
//
// Errors from the kernel are returned as they are. img is never modified; the
// result owns freshly allocated pixel data and is never nil when err is nil.
func (c *Converter) Convert(img *tensor.Tensor, conv Conversion) (*tensor.Tensor, error) {
	if err := c.Validate(img, conv); err != nil {
		return nil, err
	}

	pix, shape, err := c.kernel.Convert(img, conv.Mode)
	if err != nil {
		return nil, err
	}

	out, err := tensor.FromPix(pix, shape, conv.Target)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("converted",
		zap.String("conversion", conv.Name),
		zap.String("kernel", c.kernel.Name()),
		zap.Ints("shape", shape),
	)
	return out, nil
}

// ConvertByName looks up a conversion by name and runs it.
func (c *Converter) ConvertByName(img *tensor.Tensor, name string) (*tensor.Tensor, error) {
	conv, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return c.Convert(img, conv)
}

// Validate applies the Convert input checks without converting.
func (c *Converter) Validate(img *tensor.Tensor, conv Conversion) error {
	switch tensor.Classify(img, conv.Source) {
	case tensor.Confirmed:
		return nil
	case tensor.Plausible:
		if c.policy == RequireLabel {
			return &LabelError{Conversion: conv, Found: img.Colorspace()}
		}
		if label := img.Colorspace(); label != tensor.Unknown {
			c.logger.Warn("input label does not match conversion source",
				zap.String("conversion", conv.Name),
				zap.Stringer("label", label),
				zap.Stringer("source", conv.Source),
			)
		}
		return nil
	default:
		return newShapeError(img, conv)
	}
}
