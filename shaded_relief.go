package sld

import (
	"github.com/gogpu/sld/expr"
	"github.com/gogpu/sld/style"
)

// DefaultReliefFactor is the relief factor of a new ShadedRelief.
const DefaultReliefFactor = 55

// ShadedRelief requests hill shading of an elevation raster.
type ShadedRelief struct {
	brightnessOnly bool
	reliefFactor   expr.Expression
}

// NewShadedRelief returns a shaded relief with DefaultReliefFactor.
func NewShadedRelief() *ShadedRelief {
	return &ShadedRelief{reliefFactor: expr.Int(DefaultReliefFactor)}
}

// CastShadedRelief returns s as a *ShadedRelief.
func CastShadedRelief(s style.ShadedRelief) *ShadedRelief {
	switch x := s.(type) {
	case nil:
		return nil
	case *ShadedRelief:
		return x
	}
	return &ShadedRelief{brightnessOnly: s.BrightnessOnly(), reliefFactor: s.ReliefFactor()}
}

func (s *ShadedRelief) BrightnessOnly() bool          { return s.brightnessOnly }
func (s *ShadedRelief) ReliefFactor() expr.Expression { return s.reliefFactor }

func (s *ShadedRelief) SetBrightnessOnly(b bool)          { s.brightnessOnly = b }
func (s *ShadedRelief) SetReliefFactor(f expr.Expression) { s.reliefFactor = f }

func (s *ShadedRelief) Equal(other style.ShadedRelief) bool {
	o, ok := other.(*ShadedRelief)
	if !ok || s == nil || o == nil {
		return ok && s == nil && o == nil
	}
	return s.brightnessOnly == o.brightnessOnly && expr.Equal(s.reliefFactor, o.reliefFactor)
}

func (s *ShadedRelief) Hash() uint64 {
	if s == nil {
		return 0
	}
	return newHasher("shaded-relief").bool(s.brightnessOnly).expr(s.reliefFactor).sum()
}

func (s *ShadedRelief) Clone() *ShadedRelief {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s *ShadedRelief) Accept(v Visitor) { v.VisitShadedRelief(s) }

func (s *ShadedRelief) AcceptData(v DataVisitor, data any) any {
	return v.VisitShadedRelief(s, data)
}
