package render

import (
	"math"

	"github.com/user-none/minarch/internal/scaler"
)

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Select runs the scaler-selector algorithm and writes its result into d.
// The Descriptor's DstW/DstH always end up equal to the device's
// presentation surface size (the canvas the caller clears and presents);
// DstX/DstY give the offset of the centered sub-rectangle the
// blitter actually writes into within that canvas -- this split is what
// lets NATIVE and ASPECT letterbox/pillarbox while still reporting a
// device-sized destination surface.
func Select(d *Descriptor, p Params) {
	mode := p.Mode
	if mode == Cropped && !p.Device.SupportsCropped {
		mode = Native
	}

	d.Format = p.Format
	d.SrcP = p.SrcP
	d.TrueW, d.TrueH = p.TrueW, p.TrueH
	d.DstW, d.DstH = p.Device.Width, p.Device.Height

	coreAspect := p.CoreAspect
	if coreAspect <= 0 {
		coreAspect = float64(p.SrcW) / float64(p.SrcH)
	}

	switch mode {
	case Native:
		selectNative(d, p)
	case Cropped:
		selectCropped(d, p)
	case Fullscreen:
		selectFullscreen(d, p, coreAspect)
	case Aspect:
		selectAspect(d, p, coreAspect)
	}

	selectBlit(d)
}

// selectNative picks the largest integer scale that fits the source inside
// the device without cropping, centering the result; if the device is
// smaller than the source in either axis it falls back to a 1:1 copy
// cropped symmetrically to fit.
func selectNative(d *Descriptor, p Params) {
	s := min(p.Device.Width/p.SrcW, p.Device.Height/p.SrcH)

	if s == 0 {
		// Forced crop: the device is smaller than the source in at
		// least one axis, so copy 1:1 and clip the source symmetrically
		// from both sides to the device size.
		d.Scale = 0
		d.Aspect = 0
		d.DstX, d.DstY = 0, 0

		clipW := min(p.SrcW, p.Device.Width)
		clipH := min(p.SrcH, p.Device.Height)
		d.SrcX = (p.SrcW - clipW) / 2
		d.SrcY = (p.SrcH - clipH) / 2
		d.SrcW, d.SrcH = clipW, clipH
		return
	}

	d.Scale = s
	d.Aspect = 0
	d.SrcX, d.SrcY = 0, 0
	d.SrcW, d.SrcH = p.SrcW, p.SrcH

	contentW, contentH := p.SrcW*s, p.SrcH*s
	d.DstX = (p.Device.Width - contentW) / 2
	d.DstY = (p.Device.Height - contentH) / 2
}

// selectCropped fills the device exactly, clipping whichever axis
// overflows.
func selectCropped(d *Descriptor, p Params) {
	s := max(ceilDiv(p.Device.Width, p.SrcW), ceilDiv(p.Device.Height, p.SrcH))
	if s < 1 {
		s = 1
	}
	d.Scale = s
	d.Aspect = 0
	d.DstX, d.DstY = 0, 0

	visW := ceilDiv(p.Device.Width, s)
	visH := ceilDiv(p.Device.Height, s)
	visW = min(visW, p.SrcW)
	visH = min(visH, p.SrcH)

	d.SrcX = (p.SrcW - visW) / 2
	d.SrcY = (p.SrcH - visH) / 2
	d.SrcW, d.SrcH = visW, visH
}

// selectFullscreen stretches the source to fill the device ignoring aspect
// ratio, either with an exact integer scale or, when FitToDevice calls for
// a non-integer stretch, routing to the fractional scaler via Scale = -1.
func selectFullscreen(d *Descriptor, p Params, coreAspect float64) {
	d.SrcX, d.SrcY = 0, 0
	d.SrcW, d.SrcH = p.SrcW, p.SrcH
	d.DstX, d.DstY = 0, 0

	if p.FitToDevice {
		if p.SrcW == p.Device.Width && p.SrcH == p.Device.Height {
			d.Scale = 1
		} else {
			d.Scale = -1
		}
		d.Aspect = -1
		return
	}

	s := max(ceilDiv(p.Device.Width, p.SrcW), ceilDiv(p.Device.Height, p.SrcH))
	// Odd-height snap: if the vertical remainder lands in (0, 8), back
	// the factor down by one step worth of 8 pixels of slack.
	remainder := p.SrcH*s - p.Device.Height
	if remainder > 0 && remainder < 8 {
		s--
		if s < 1 {
			s = 1
		}
	}
	d.Scale = s
	d.Aspect = -1
}

// selectAspect fits the source into a box matching coreAspect, then scales
// that box to the device -- either an exact-fit non-integer scale when
// FitToDevice is set, or an integer scale with letterbox/pillarbox bars
// otherwise.
func selectAspect(d *Descriptor, p Params, coreAspect float64) {
	d.Aspect = coreAspect
	d.SrcX, d.SrcY = 0, 0

	aspectW := p.SrcW
	aspectH := int(math.Ceil(float64(aspectW) / coreAspect))
	if aspectH < p.SrcH {
		// Swap-enlarge: grow aspectW instead so the box can hold the
		// full source.
		aspectW = int(math.Ceil(float64(p.SrcH) * coreAspect))
		aspectH = p.SrcH
	}
	d.SrcW, d.SrcH = p.SrcW, p.SrcH

	if p.FitToDevice {
		f := math.Min(float64(p.Device.Width)/float64(aspectW), float64(p.Device.Height)/float64(aspectH))
		if f < 1 {
			f = 1
		}
		contentW := int(float64(aspectW) * f)
		contentH := int(float64(aspectH) * f)
		d.DstX = (p.Device.Width - contentW) / 2
		d.DstY = (p.Device.Height - contentH) / 2
		if f == 1 && contentW == p.SrcW && contentH == p.SrcH {
			d.Scale = 1
		} else {
			d.Scale = -1
		}
		return
	}

	s := max(ceilDiv(p.Device.Width, p.SrcW), ceilDiv(p.Device.Height, p.SrcH))
	d.Scale = s

	deviceAspect := float64(p.Device.Width) / float64(p.Device.Height)
	contentW := p.SrcW * s
	contentH := p.SrcH * s

	if int(coreAspect*1000) > int(deviceAspect*1000) {
		// Core wider than device: letterbox (bars top/bottom).
		scaledH := int(float64(contentW) / coreAspect)
		d.DstX = (p.Device.Width - contentW) / 2
		d.DstY = (scaledH - contentH) / 2
	} else {
		// Core narrower than device: pillarbox, snapped to a multiple
		// of 8.
		scaledW := int(float64(contentH) * coreAspect)
		scaledW -= scaledW % 8
		d.DstX = (scaledW - contentW) / 2
		d.DstY = (p.Device.Height - contentH) / 2
	}
}

// selectBlit picks the scaler function by (scale, pixel_format), routing
// -1 to the fractional/AA scaler (a
// hard-coded recipe when the resolution matches one, otherwise a generic
// resize) and 0 to a 1:1 copy.
func selectBlit(d *Descriptor) {
	switch {
	case d.Scale == 0:
		if d.Format == RGBA8888 {
			d.Blit = scaler.Dispatch32(1, 1)
		} else {
			d.Blit = scaler.Dispatch16(1, 1)
		}
	case d.Scale == -1:
		if d.Format == RGB565 {
			// A hard-coded Recipe or the generic resize both end up
			// calling the same masked-average implementation; FindRecipe
			// exists so callers can distinguish "known common source" from
			// "arbitrary ratio" for logging/diagnostics.
			d.Blit = scaler.AAScale
			return
		}
		// RGBA8888 fractional path: a 1:1 copy as the fallback, since
		// the AA masks are RGB565-specific.
		d.Blit = scaler.Dispatch32(1, 1)
	default:
		if d.Format == RGBA8888 {
			d.Blit = scaler.NeonDispatch32(d.Scale, d.Scale)
		} else {
			d.Blit = scaler.NeonDispatch16(d.Scale, d.Scale)
		}
	}
}
