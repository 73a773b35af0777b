package sld

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for the sld package.
var (
	// ErrFrozen is returned by every setter of a frozen default.
	ErrFrozen = errors.New("sld: frozen default cannot be modified")

	// ErrChannelCount is returned when a channel selection gets the wrong
	// number of channels.
	ErrChannelCount = errors.New("sld: wrong number of channels")

	// ErrColorMapType is returned for a colour map type other than ramp,
	// intervals or values.
	ErrColorMapType = errors.New("sld: unknown colour map type")

	// ErrAlgorithm is returned when a contrast enhancement algorithm is not
	// allowed for the enhancement's method.
	ErrAlgorithm = errors.New("sld: algorithm not allowed for contrast method")

	// ErrContrastMethod is returned when a type literal names no contrast
	// method.
	ErrContrastMethod = errors.New("sld: unknown contrast method")

	// ErrOverlapBehavior is returned when a name matches no overlap behavior.
	ErrOverlapBehavior = errors.New("sld: unknown overlap behavior")

	// ErrImageOutline is returned when a raster image outline is not a
	// line or polygon symbolizer.
	ErrImageOutline = errors.New("sld: image outline must be a line or polygon symbolizer")

	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("sld: nil argument")
)

// CountError is returned when a channel list has an unsupported length.
// It matches ErrChannelCount with errors.Is.
type CountError struct {
	Op   string
	Got  int
	Want []int
}

func (e *CountError) Error() string {
	want := make([]string, len(e.Want))
	for i, w := range e.Want {
		want[i] = strconv.Itoa(w)
	}
	return fmt.Sprintf("sld: %s: got %d channels, want %s", e.Op, e.Got, strings.Join(want, " or "))
}

func (e *CountError) Unwrap() error { return ErrChannelCount }
