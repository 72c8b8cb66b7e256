// Package core has core logic for series generation, range queries and benchmarks.
package core

import "github.com/lodlab/chartbench/schema"

// DefaultMinViewportWidth is the smallest visible range width a viewport
// allows. Zooms that would shrink the range below it are rejected.
const DefaultMinViewportWidth = 10.0

// Viewport maintains the currently visible sub-range of a 1-D domain and
// broadcasts changes to registered observers. It is driven from a single
// goroutine; observers run inline on the mutating call's stack, in
// registration order, before the mutator returns.
type Viewport struct {
	domainMin float64
	domainMax float64
	start     float64
	end       float64
	minWidth  float64
	observers []func(schema.Range)
}

// NewViewport creates a viewport spanning the full domain.
func NewViewport(domainMin, domainMax float64) *Viewport {
	return &Viewport{
		domainMin: domainMin,
		domainMax: domainMax,
		start:     domainMin,
		end:       domainMax,
		minWidth:  DefaultMinViewportWidth,
	}
}

// OnChange registers an observer invoked synchronously on every successful
// mutation. Rejected zooms do not notify.
func (v *Viewport) OnChange(fn func(schema.Range)) {
	v.observers = append(v.observers, fn)
}

// Range returns a read-only snapshot of the visible range.
func (v *Viewport) Range() schema.Range {
	return schema.Range{Start: v.start, End: v.end, Width: v.end - v.start}
}

// Domain returns the fixed bounds of the addressable range.
func (v *Viewport) Domain() (min, max float64) {
	return v.domainMin, v.domainMax
}

// Zoom scales the visible width by factor (factor < 1 zooms in), keeping the
// point at pivot (a fraction in [0,1] of the current view) visually fixed.
// A zoom whose resulting width would fall below the minimum width or exceed
// the full domain width is a silent no-op.
func (v *Viewport) Zoom(factor, pivot float64) {
	if factor <= 0 {
		return
	}
	if pivot < 0 {
		pivot = 0
	} else if pivot > 1 {
		pivot = 1
	}
	width := v.end - v.start
	newWidth := width * factor
	if newWidth < v.minWidth || newWidth > v.domainMax-v.domainMin {
		return
	}
	pivotValue := v.start + pivot*width
	v.start = pivotValue - pivot*newWidth
	v.end = v.start + newWidth
	v.slideIntoDomain()
	v.notify()
}

// Pan shifts the visible range by delta units, preserving its width. If
// either edge would leave the domain, the range slides to the nearest valid
// position instead.
func (v *Viewport) Pan(delta float64) {
	v.start += delta
	v.end += delta
	v.slideIntoDomain()
	v.notify()
}

// SetRange sets the visible range absolutely. Each bound is clamped
// independently to the domain.
func (v *Viewport) SetRange(start, end float64) {
	if start > end {
		start, end = end, start
	}
	if start < v.domainMin {
		start = v.domainMin
	}
	if end > v.domainMax {
		end = v.domainMax
	}
	v.start = start
	v.end = end
	v.notify()
}

// Resize updates the domain's upper bound, used when the series length
// changes. It does not move the visible range; callers wanting a reset must
// follow with SetRange.
func (v *Viewport) Resize(newDomainMax float64) {
	v.domainMax = newDomainMax
}

// slideIntoDomain shifts the range back inside the domain without shrinking
// it. The width is already bounded by the domain width at this point.
func (v *Viewport) slideIntoDomain() {
	if v.start < v.domainMin {
		v.end += v.domainMin - v.start
		v.start = v.domainMin
	}
	if v.end > v.domainMax {
		v.start -= v.end - v.domainMax
		v.end = v.domainMax
	}
	if v.start < v.domainMin {
		v.start = v.domainMin
	}
}

func (v *Viewport) notify() {
	r := v.Range()
	for _, fn := range v.observers {
		fn(r)
	}
}
