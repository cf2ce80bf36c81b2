package tensor

import (
	"fmt"
	"strings"
)

// Colorspace labels how a tensor's channels are to be interpreted.
type Colorspace int

const (
	Unknown Colorspace = iota
	RGB
	BGR
	Gray
	HSV
	HLS
	LAB
)

var colorspaceNames = map[Colorspace]string{
	Unknown: "unknown",
	RGB:     "rgb",
	BGR:     "bgr",
	Gray:    "gray",
	HSV:     "hsv",
	HLS:     "hls",
	LAB:     "lab",
}

// Colorspaces returns every known label except Unknown, in declaration order.
func Colorspaces() []Colorspace {
	return []Colorspace{RGB, BGR, Gray, HSV, HLS, LAB}
}

// String returns the lowercase label name, e.g. "rgb".
func (c Colorspace) String() string {
	if name, ok := colorspaceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("colorspace(%d)", int(c))
}

// Title returns the display form used in messages, e.g. "RGB" or "Grayscale".
func (c Colorspace) Title() string {
	if c == Gray {
		return "Grayscale"
	}
	return strings.ToUpper(c.String())
}

// Channels returns the channel count implied by the label: 3 for color
// spaces, 1 for gray and 0 for Unknown.
func (c Colorspace) Channels() int {
	switch c {
	case RGB, BGR, HSV, HLS, LAB:
		return 3
	case Gray:
		return 1
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Colorspace) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Colorspace) UnmarshalText(text []byte) error {
	parsed, err := ParseColorspace(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColorspace parses a label name. Matching is case-insensitive and
// "grey"/"grayscale" are accepted for Gray.
func ParseColorspace(s string) (Colorspace, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "grey", "grayscale", "greyscale":
		return Gray, nil
	}
	for c, n := range colorspaceNames {
		if n == name {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("unknown colorspace: %q", s)
}
