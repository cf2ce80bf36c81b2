package kernel

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

// ErrUnknownBackend is returned by ByName for a backend that is not compiled in.
var ErrUnknownBackend = errors.New("kernel: unknown backend")

// Kernel performs the pixel-level colorspace transform.
//
// Convert reads src as mode.Source() data and returns a freshly allocated pixel
// buffer in mode.Target() encoding together with its shape. Implementations must
// not modify src. They do not look at the tensor's label; callers validate it.
type Kernel interface {
	Name() string
	Convert(src *tensor.Tensor, mode Mode) ([]uint8, []int, error)
}

var (
	backendsMu sync.RWMutex
	backends   = map[string]func() (Kernel, error){}
)

func register(name string, factory func() (Kernel, error)) {
	backendsMu.Lock()
	backends[name] = factory
	backendsMu.Unlock()
}

func init() {
	register(ColorfulName, func() (Kernel, error) { return NewColorful(), nil })
}

// Backends returns the names of all compiled-in backends, sorted.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName constructs the backend registered under name.
func ByName(name string) (Kernel, error) {
	backendsMu.RLock()
	factory, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, name, Backends())
	}
	return factory()
}

// Default returns the pure-Go backend.
func Default() Kernel {
	return NewColorful()
}

// outputShape returns the shape of a conversion result for an h×w image.
// Single-channel output is 2-D.
func outputShape(h, w int, dst tensor.Colorspace) []int {
	if ch := dst.Channels(); ch != 1 {
		return []int{h, w, ch}
	}
	return []int{h, w}
}

func checkInput(src *tensor.Tensor, mode Mode) error {
	if src == nil {
		return errors.New("kernel: nil source tensor")
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if want := mode.Source().Channels(); src.Channels() != want {
		return fmt.Errorf("kernel: %s needs %d input channels, got %d", mode, want, src.Channels())
	}
	return nil
}
