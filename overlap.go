package sld

import (
	"fmt"
	"strings"

	"github.com/gogpu/sld/style"
)

// ParseOverlapBehavior matches one of the four overlap behaviours by
// name, ignoring case. Any other name fails with ErrOverlapBehavior.
func ParseOverlapBehavior(name string) (style.OverlapBehavior, error) {
	switch b := style.OverlapBehavior(strings.ToUpper(strings.TrimSpace(name))); b {
	case style.LatestOnTop, style.EarliestOnTop, style.Average, style.Random:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrOverlapBehavior, name)
}
