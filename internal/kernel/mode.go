package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

// ErrUnknownMode is returned for a Mode outside the supported set.
var ErrUnknownMode = errors.New("kernel: unknown conversion mode")

// Mode selects a source→target colorspace transform.
type Mode int

const (
	RGB2BGR Mode = iota + 1
	RGB2GRAY
	RGB2HSV
	RGB2LAB
	RGB2HLS
	LAB2RGB
	LAB2BGR
	LAB2GRAY
	LAB2HSV
	LAB2HLS
	BGR2RGB
	BGR2GRAY
	BGR2HSV
	BGR2LAB
	BGR2HLS
	HSV2RGB
	HSV2BGR
	HLS2RGB
	HLS2BGR
	GRAY2RGB
	GRAY2BGR
)

type modeInfo struct {
	name     string
	src, dst tensor.Colorspace
}

var modes = map[Mode]modeInfo{
	RGB2BGR:  {"RGB2BGR", tensor.RGB, tensor.BGR},
	RGB2GRAY: {"RGB2GRAY", tensor.RGB, tensor.Gray},
	RGB2HSV:  {"RGB2HSV", tensor.RGB, tensor.HSV},
	RGB2LAB:  {"RGB2LAB", tensor.RGB, tensor.LAB},
	RGB2HLS:  {"RGB2HLS", tensor.RGB, tensor.HLS},
	LAB2RGB:  {"LAB2RGB", tensor.LAB, tensor.RGB},
	LAB2BGR:  {"LAB2BGR", tensor.LAB, tensor.BGR},
	LAB2GRAY: {"LAB2GRAY", tensor.LAB, tensor.Gray},
	LAB2HSV:  {"LAB2HSV", tensor.LAB, tensor.HSV},
	LAB2HLS:  {"LAB2HLS", tensor.LAB, tensor.HLS},
	BGR2RGB:  {"BGR2RGB", tensor.BGR, tensor.RGB},
	BGR2GRAY: {"BGR2GRAY", tensor.BGR, tensor.Gray},
	BGR2HSV:  {"BGR2HSV", tensor.BGR, tensor.HSV},
	BGR2LAB:  {"BGR2LAB", tensor.BGR, tensor.LAB},
	BGR2HLS:  {"BGR2HLS", tensor.BGR, tensor.HLS},
	HSV2RGB:  {"HSV2RGB", tensor.HSV, tensor.RGB},
	HSV2BGR:  {"HSV2BGR", tensor.HSV, tensor.BGR},
	HLS2RGB:  {"HLS2RGB", tensor.HLS, tensor.RGB},
	HLS2BGR:  {"HLS2BGR", tensor.HLS, tensor.BGR},
	GRAY2RGB: {"GRAY2RGB", tensor.Gray, tensor.RGB},
	GRAY2BGR: {"GRAY2BGR", tensor.Gray, tensor.BGR},
}

// Modes returns every supported mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, 0, len(modes))
	for m := RGB2BGR; m <= GRAY2BGR; m++ {
		out = append(out, m)
	}
	return out
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	_, ok := modes[m]
	return ok
}

func (m Mode) String() string {
	if info, ok := modes[m]; ok {
		return info.name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Source returns the colorspace the mode reads.
func (m Mode) Source() tensor.Colorspace { return modes[m].src }

// Target returns the colorspace the mode produces.
func (m Mode) Target() tensor.Colorspace { return modes[m].dst }

// ParseMode parses a mode name such as "RGB2HSV" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for m, info := range modes {
		if info.name == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ModeFor returns the mode converting src to dst, if one exists.
func ModeFor(src, dst tensor.Colorspace) (Mode, bool) {
	for m, info := range modes {
		if info.src == src && info.dst == dst {
			return m, true
		}
	}
	return 0, false
}
