package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// SelectedChannelType names one source band and its optional contrast
// enhancement.
type SelectedChannelType struct {
	name     expr.Expression
	contrast *ContrastEnhancement
}

// NewSelectedChannelType returns a channel reading the named band.
func NewSelectedChannelType(name expr.Expression, ce style.ContrastEnhancement) *SelectedChannelType {
	return &SelectedChannelType{name: name, contrast: CastContrastEnhancement(ce)}
}

// CastSelectedChannelType returns c as a *SelectedChannelType.
func CastSelectedChannelType(c style.SelectedChannelType) *SelectedChannelType {
	switch x := c.(type) {
	case nil:
		return nil
	case *SelectedChannelType:
		return x
	}
	return &SelectedChannelType{
		name:     c.ChannelName(),
		contrast: CastContrastEnhancement(c.ContrastEnhancement()),
	}
}

func (c *SelectedChannelType) ChannelName() expr.Expression { return c.name }

func (c *SelectedChannelType) ContrastEnhancement() style.ContrastEnhancement {
	return ifaceOf[style.ContrastEnhancement](c.contrast)
}

func (c *SelectedChannelType) SetChannelName(name expr.Expression) { c.name = name }

func (c *SelectedChannelType) SetContrastEnhancement(ce style.ContrastEnhancement) {
	c.contrast = CastContrastEnhancement(ce)
}

func (c *SelectedChannelType) Equal(other style.SelectedChannelType) bool {
	o, ok := other.(*SelectedChannelType)
	if !ok || c == nil || o == nil {
		return ok && c == nil && o == nil
	}
	return expr.Equal(c.name, o.name) && c.contrast.Equal(o.contrast)
}

func (c *SelectedChannelType) Hash() uint64 {
	if c == nil {
		return 0
	}
	return newHasher("channel").expr(c.name).add(c.contrast.Hash()).sum()
}

func (c *SelectedChannelType) Clone() *SelectedChannelType {
	if c == nil {
		return nil
	}
	return &SelectedChannelType{name: c.name, contrast: c.contrast.Clone()}
}

func (c *SelectedChannelType) Accept(v Visitor) { v.VisitSelectedChannelType(c) }

func (c *SelectedChannelType) AcceptData(v DataVisitor, data any) any {
	return v.VisitSelectedChannelType(c, data)
}

// ChannelSelection selects the source bands of a raster: either one gray
// channel or exactly three red, green and blue channels. Setting one
// form clears the other.
type ChannelSelection struct {
	gray *SelectedChannelType
	rgb  []*SelectedChannelType
}

// NewChannelSelection returns an empty selection.
func NewChannelSelection() *ChannelSelection { return &ChannelSelection{} }

// CastChannelSelection returns c as a *ChannelSelection. A foreign
// selection exposing both forms keeps the RGB channels.
func CastChannelSelection(c style.ChannelSelection) *ChannelSelection {
	switch x := c.(type) {
	case nil:
		return nil
	case *ChannelSelection:
		return x
	}
	cs := &ChannelSelection{}
	if rgb := c.RGBChannels(); len(rgb) == 3 {
		if err := cs.SetRGBChannels(rgb); err == nil {
			return cs
		}
	}
	cs.gray = CastSelectedChannelType(c.GrayChannel())
	return cs
}

func (c *ChannelSelection) GrayChannel() style.SelectedChannelType {
	return ifaceOf[style.SelectedChannelType](c.gray)
}

// RGBChannels returns the red, green and blue channels, or nil when the
// selection is gray.
func (c *ChannelSelection) RGBChannels() []style.SelectedChannelType {
	if len(c.rgb) == 0 {
		return nil
	}
	out := make([]style.SelectedChannelType, len(c.rgb))
	for i, ch := range c.rgb {
		out[i] = ch
	}
	return out
}

// SelectedChannels returns the gray channel as a one-element list or
// the three RGB channels.
func (c *ChannelSelection) SelectedChannels() []style.SelectedChannelType {
	if c.gray != nil {
		return []style.SelectedChannelType{c.gray}
	}
	return c.RGBChannels()
}

// SetGrayChannel selects a single gray channel. A nil channel clears the
// selection.
func (c *ChannelSelection) SetGrayChannel(ch style.SelectedChannelType) {
	c.gray = CastSelectedChannelType(ch)
	c.rgb = nil
}

// SetRGBChannels selects red, green and blue channels, in that order.
// It fails with a *CountError unless exactly three channels are given,
// and with ErrNilArgument when one of them is nil.
func (c *ChannelSelection) SetRGBChannels(chs []style.SelectedChannelType) error {
	if len(chs) != 3 {
		return &CountError{Op: "SetRGBChannels", Got: len(chs), Want: []int{3}}
	}
	rgb := make([]*SelectedChannelType, 3)
	for i, ch := range chs {
		if rgb[i] = CastSelectedChannelType(ch); rgb[i] == nil {
			return ErrNilArgument
		}
	}
	c.rgb = rgb
	c.gray = nil
	return nil
}

// SetSelectedChannels takes one channel as gray or three as RGB. Any
// other count fails with a *CountError.
func (c *ChannelSelection) SetSelectedChannels(chs ...style.SelectedChannelType) error {
	switch len(chs) {
	case 1:
		if chs[0] == nil {
			return ErrNilArgument
		}
		c.SetGrayChannel(chs[0])
		return nil
	case 3:
		return c.SetRGBChannels(chs)
	}
	return &CountError{Op: "SetSelectedChannels", Got: len(chs), Want: []int{1, 3}}
}

func (c *ChannelSelection) Equal(other style.ChannelSelection) bool {
	o, ok := other.(*ChannelSelection)
	if !ok || c == nil || o == nil {
		return ok && c == nil && o == nil
	}
	if !c.gray.Equal(o.gray) || len(c.rgb) != len(o.rgb) {
		return false
	}
	for i := range c.rgb {
		if !c.rgb[i].Equal(o.rgb[i]) {
			return false
		}
	}
	return true
}

func (c *ChannelSelection) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("channel-selection").add(c.gray.Hash()).int(len(c.rgb))
	for _, ch := range c.rgb {
		h.add(ch.Hash())
	}
	return h.sum()
}

func (c *ChannelSelection) Clone() *ChannelSelection {
	if c == nil {
		return nil
	}
	cs := &ChannelSelection{gray: c.gray.Clone()}
	for _, ch := range c.rgb {
		cs.rgb = append(cs.rgb, ch.Clone())
	}
	return cs
}

func (c *ChannelSelection) Accept(v Visitor) { v.VisitChannelSelection(c) }

func (c *ChannelSelection) AcceptData(v DataVisitor, data any) any {
	return v.VisitChannelSelection(c, data)
}
