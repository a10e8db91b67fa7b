package layout

import "fmt"

// TextDirection is the reading direction used to resolve start/end
// oriented values into physical left/right values.
type TextDirection int

const (
	// TextDirectionLTR lays content out left-to-right; start is left.
	TextDirectionLTR TextDirection = iota

	// TextDirectionRTL lays content out right-to-left; start is right.
	TextDirectionRTL
)

// String returns a human-readable representation of the text direction.
func (d TextDirection) String() string {
	switch d {
	case TextDirectionLTR:
		return "ltr"
	case TextDirectionRTL:
		return "rtl"
	default:
		return fmt.Sprintf("TextDirection(%d)", int(d))
	}
}
