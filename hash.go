package sld

import (
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/sld/expr"
)

// hashMultiplier combines field hashes in declaration order.
const hashMultiplier = 31

// hasher accumulates field hashes. Unordered collections are summed
// before they are folded in, so map iteration order does not matter.
type hasher struct {
	h uint64
}

func newHasher(kind string) *hasher { return &hasher{h: xxhash.Sum64String(kind)} }

func (h *hasher) add(v uint64) *hasher {
	h.h = h.h*hashMultiplier + v
	return h
}

func (h *hasher) expr(e expr.Expression) *hasher { return h.add(expr.Hash(e)) }

func (h *hasher) exprs(es []expr.Expression) *hasher {
	h.add(uint64(len(es)))
	for _, e := range es {
		h.expr(e)
	}
	return h
}

func (h *hasher) str(s string) *hasher { return h.add(xxhash.Sum64String(s)) }

func (h *hasher) bytes(b []byte) *hasher { return h.add(xxhash.Sum64(b)) }

func (h *hasher) bool(b bool) *hasher {
	if b {
		return h.add(1)
	}
	return h.add(2)
}

func (h *hasher) int(i int) *hasher { return h.add(uint64(i)) }

func (h *hasher) float(f float64) *hasher {
	if f == 0 {
		f = 0 // fold -0
	}
	return h.add(math.Float64bits(f))
}

func (h *hasher) strMap(m map[string]string) *hasher {
	var sum uint64
	for k, v := range m {
		sum += xxhash.Sum64String(k)*hashMultiplier + xxhash.Sum64String(v)
	}
	return h.add(sum)
}

func (h *hasher) exprMap(m map[string]expr.Expression) *hasher {
	var sum uint64
	for k, v := range m {
		sum += xxhash.Sum64String(k)*hashMultiplier + expr.Hash(v)
	}
	return h.add(sum)
}

func (h *hasher) strSet(s []string) *hasher {
	var sum uint64
	for _, v := range s {
		sum += xxhash.Sum64String(v)
	}
	return h.add(sum)
}

func (h *hasher) sum() uint64 { return h.h }

func exprsEqual(a, b []expr.Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !expr.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func strMapEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

func exprMapEqual(a, b map[string]expr.Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !expr.Equal(v, w) {
			return false
		}
	}
	return true
}

// setEqual compares two duplicate-free lists as sets.
func setEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	in := make(map[T]struct{}, len(a))
	for _, v := range a {
		in[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := in[v]; !ok {
			return false
		}
	}
	return true
}

func copyExprs(es []expr.Expression) []expr.Expression {
	if len(es) == 0 {
		return nil
	}
	return append([]expr.Expression(nil), es...)
}

func copyStrMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyExprMap(m map[string]expr.Expression) map[string]expr.Expression {
	if len(m) == 0 {
		return nil
	}
	c := make(map[string]expr.Expression, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// ifaceOf returns p as the capability interface I, or the zero I when p
// is nil. It keeps typed nil pointers out of interface-typed results.
func ifaceOf[I any, T any](p *T) I {
	if p == nil {
		var zero I
		return zero
	}
	return any(p).(I)
}
