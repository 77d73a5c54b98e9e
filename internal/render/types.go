// Package render implements the scaler-selector: given source geometry,
// device geometry, and a user scaling mode, it computes the source/
// destination rectangles, integer scale factor, and blitter function that
// the frame loop uses for every frame. Grounded in the fit/center
// arithmetic of the teacher's standalone/renderer.go (DrawFramebuffer) and
// standalone/shader/xbr.go (scaleToScreen/selectOptimalScale), reworked
// into pure CPU integer math with no GPU image in the loop.
package render

import "github.com/user-none/minarch/internal/scaler"

// PixelFormat identifies which of the two supported pixel layouts a
// buffer uses.
type PixelFormat int

const (
	RGB565 PixelFormat = iota
	RGBA8888
)

// BytesPerPixel returns the byte width of one pixel in this format.
func (f PixelFormat) BytesPerPixel() int {
	if f == RGBA8888 {
		return 4
	}
	return 2
}

// ScaleMode is the user-selected screen-scaling mode.
type ScaleMode int

const (
	Native ScaleMode = iota
	Aspect
	Fullscreen
	Cropped
)

// Sharpness is the user's filtering preference. NATIVE always uses
// nearest-neighbor regardless of this setting.
type Sharpness int

const (
	Sharp Sharpness = iota
	Crisp
	Soft
)

// Rect is an integer destination or source rectangle.
type Rect struct {
	X, Y, W, H int
}

// Descriptor is the mutable record that governs every blit. SrcW/SrcH is
// the cropped source; TrueW/TrueH is the uncropped source reported by the
// emulator, used to detect geometry changes.
type Descriptor struct {
	Format PixelFormat

	SrcX, SrcY, SrcW, SrcH, SrcP int
	TrueW, TrueH                int

	DstX, DstY, DstW, DstH, DstP int

	// Scale is the integer factor (1..6), -1 for fractional/AA, or 0 for
	// forced-crop copy.
	Scale int

	// Aspect is 0 for integer (native/cropped), -1 for fullscreen
	// stretch, or the core-reported aspect ratio (width/height) for
	// centered letterbox/pillarbox.
	Aspect float64

	Blit scaler.Func
}

// NeedsReselect reports whether a blit whose (SrcW, SrcH) differs from
// (TrueW, TrueH), or whose DstP is zero, must have the scaler reselected
// before running.
func (d *Descriptor) NeedsReselect(srcW, srcH int) bool {
	if d.DstP == 0 {
		return true
	}
	return srcW != d.TrueW || srcH != d.TrueH
}

// Invalidate forces the next Select call to fully recompute geometry, the
// way the menu's state-preservation path zeros dst_p when the user changes
// scaling mode or sharpness.
func (d *Descriptor) Invalidate() {
	d.DstP = 0
}

// Device describes the platform's presentation surface.
type Device struct {
	Width, Height int
	// SupportsCropped is false on platforms that only ever present a
	// fixed logical size; CROPPED falls back to NATIVE there.
	SupportsCropped bool
}

// Params bundles every input Select needs to compute a Descriptor.
type Params struct {
	SrcW, SrcH, SrcP int
	TrueW, TrueH     int
	Format           PixelFormat
	Device           Device
	Mode             ScaleMode
	Sharpness        Sharpness
	CoreAspect       float64 // 0 means "use src_w/src_h"
	FitToDevice      bool
}
