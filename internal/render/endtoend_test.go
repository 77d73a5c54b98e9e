package render

import "testing"

// fillChecker fills a bpp-byte-per-pixel buffer of width x height with a
// 2-pixel checkerboard: even-parity pixels are all-zero bytes, odd-parity
// pixels are all-0xFF bytes. Both supported pixel formats represent those
// two colors identically at the byte level, so a single fill routine and a
// single replication check cover RGB565 and RGBA8888 alike.
func fillChecker(w, h, bpp int) []byte {
	buf := make([]byte, w*h*bpp)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(0x00)
			if (x+y)%2 == 1 {
				v = 0xFF
			}
			base := (y*w + x) * bpp
			for b := 0; b < bpp; b++ {
				buf[base+b] = v
			}
		}
	}
	return buf
}

// assertChecker verifies dst holds an s-times replication of the w x h
// checkerboard src: every source pixel appears as an s x s block of
// matching bytes at the corresponding destination position.
func assertChecker(t *testing.T, src, dst []byte, w, h, s, bpp int) {
	t.Helper()
	dw := w * s
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			want := src[(j*w+i)*bpp : (j*w+i)*bpp+bpp]
			for dy := 0; dy < s; dy++ {
				for dx := 0; dx < s; dx++ {
					base := ((j*s+dy)*dw + (i*s + dx)) * bpp
					got := dst[base : base+bpp]
					for b := 0; b < bpp; b++ {
						if got[b] != want[b] {
							t.Fatalf("dst pixel (%d,%d) byte %d = %#x want %#x",
								i*s+dx, j*s+dy, b, got[b], want[b])
						}
					}
				}
			}
		}
	}
}

// TestEndToEndS1NativeFit is scenario S1: a 160x144 source on a 640x480
// device in NATIVE mode selects the largest integer scale that fits
// without cropping (3x) and centers the result with an 80x24 margin.
func TestEndToEndS1NativeFit(t *testing.T) {
	d := &Descriptor{}
	srcW, srcH := 160, 144
	Select(d, Params{
		SrcW: srcW, SrcH: srcH, TrueW: srcW, TrueH: srcH,
		Format: RGB565,
		Device: Device{Width: 640, Height: 480},
		Mode:   Native,
	})
	if d.Scale != 3 {
		t.Fatalf("scale=%d want 3", d.Scale)
	}
	if d.DstX != 80 || d.DstY != 24 {
		t.Fatalf("(dst_x,dst_y)=(%d,%d) want (80,24)", d.DstX, d.DstY)
	}

	src := fillChecker(srcW, srcH, 2)
	dst := make([]byte, srcW*d.Scale*srcH*d.Scale*2)
	d.Blit(src, dst, d.SrcW, d.SrcH, d.SrcP, srcW*d.Scale, srcH*d.Scale, 0)
	assertChecker(t, src, dst, srcW, srcH, d.Scale, 2)
}

// TestEndToEndS2FullscreenOversized is scenario S2: the same 160x144
// source stretched to fill a 640x480 device with FULLSCREEN (not
// fit-to-device) selects scale 4, producing a 640x576 image that overflows
// the device vertically rather than snapping down a step.
func TestEndToEndS2FullscreenOversized(t *testing.T) {
	d := &Descriptor{}
	srcW, srcH := 160, 144
	Select(d, Params{
		SrcW: srcW, SrcH: srcH, TrueW: srcW, TrueH: srcH,
		Format: RGB565,
		Device: Device{Width: 640, Height: 480},
		Mode:   Fullscreen, FitToDevice: false,
	})
	if d.Scale != 4 {
		t.Fatalf("scale=%d want 4", d.Scale)
	}
	contentW, contentH := srcW*d.Scale, srcH*d.Scale
	if contentW != 640 || contentH != 576 {
		t.Fatalf("content=(%d,%d) want (640,576)", contentW, contentH)
	}
	if d.DstX != 0 || d.DstY != 0 {
		t.Fatalf("(dst_x,dst_y)=(%d,%d) want (0,0)", d.DstX, d.DstY)
	}

	src := fillChecker(srcW, srcH, 2)
	dst := make([]byte, contentW*contentH*2)
	d.Blit(src, dst, d.SrcW, d.SrcH, d.SrcP, contentW, contentH, 0)
	assertChecker(t, src, dst, srcW, srcH, d.Scale, 2)
}

// TestEndToEndS3AspectFitPillarbox is scenario S3: a 256x224 source with a
// core-reported 8/7 aspect ratio, fit to a 320x240 device, selects a
// fractional scale whose content box (274x240) is pillarboxed with 23
// pixels of bar on each side and no vertical bar.
func TestEndToEndS3AspectFitPillarbox(t *testing.T) {
	d := &Descriptor{}
	srcW, srcH := 256, 224
	Select(d, Params{
		SrcW: srcW, SrcH: srcH, TrueW: srcW, TrueH: srcH,
		Format: RGB565,
		Device: Device{Width: 320, Height: 240},
		Mode:   Aspect, FitToDevice: true, CoreAspect: 8.0 / 7.0,
	})
	if d.Scale != -1 {
		t.Fatalf("scale=%d want -1 (fractional)", d.Scale)
	}
	if d.DstX != 23 || d.DstY != 0 {
		t.Fatalf("(dst_x,dst_y)=(%d,%d) want (23,0)", d.DstX, d.DstY)
	}

	// Content box is 274x240: 23 pixels of pillarbox bar on each side,
	// filling the device exactly top to bottom.
	const contentW, contentH = 274, 240
	if got := 320 - 2*d.DstX; got != contentW {
		t.Fatalf("derived content width=%d want %d", got, contentW)
	}

	src := fillChecker(srcW, srcH, 2)
	dst := make([]byte, contentW*contentH*2)
	d.Blit(src, dst, d.SrcW, d.SrcH, d.SrcP, contentW, contentH, 0)
	// The fractional resizer blends neighboring samples, so exact
	// replication isn't expected here; confirm it actually ran rather
	// than leaving the destination untouched.
	allZero := true
	for _, b := range dst {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("fractional blit left destination buffer untouched")
	}
}

// TestEndToEndS4NativeNearMatch is scenario S4: a 240x160 source is one
// integer scale step away from its 320x240 device in both axes, so NATIVE
// mode settles on scale 1 centered with a 40 pixel margin on every side --
// equivalently, the device's origin sits 40 pixels before the source's in
// both axes.
func TestEndToEndS4NativeNearMatch(t *testing.T) {
	d := &Descriptor{}
	srcW, srcH := 240, 160
	Select(d, Params{
		SrcW: srcW, SrcH: srcH, TrueW: srcW, TrueH: srcH,
		Format: RGB565,
		Device: Device{Width: 320, Height: 240},
		Mode:   Native,
	})
	if d.Scale != 1 {
		t.Fatalf("scale=%d want 1", d.Scale)
	}
	if d.DstX != 40 || d.DstY != 40 {
		t.Fatalf("(dst_x,dst_y)=(%d,%d) want (40,40)", d.DstX, d.DstY)
	}
	if d.SrcW != srcW || d.SrcH != srcH {
		t.Fatalf("src rect=(%d,%d) want full source (%d,%d), no crop", d.SrcW, d.SrcH, srcW, srcH)
	}

	src := fillChecker(srcW, srcH, 2)
	dst := make([]byte, srcW*srcH*2)
	d.Blit(src, dst, d.SrcW, d.SrcH, d.SrcP, srcW, srcH, 0)
	assertChecker(t, src, dst, srcW, srcH, 1, 2)
}

// TestEndToEndS5CroppedExactFill is scenario S5: a 320x240 source on a
// 640x480 device in CROPPED mode divides evenly at scale 2, filling the
// device exactly with no cropping needed.
func TestEndToEndS5CroppedExactFill(t *testing.T) {
	d := &Descriptor{}
	srcW, srcH := 320, 240
	Select(d, Params{
		SrcW: srcW, SrcH: srcH, TrueW: srcW, TrueH: srcH,
		Format: RGB565,
		Device: Device{Width: 640, Height: 480, SupportsCropped: true},
		Mode:   Cropped,
	})
	if d.Scale != 2 {
		t.Fatalf("scale=%d want 2", d.Scale)
	}
	if d.SrcW != srcW || d.SrcH != srcH {
		t.Fatalf("src rect=(%d,%d) want full source (%d,%d), no crop", d.SrcW, d.SrcH, srcW, srcH)
	}
	if d.DstX != 0 || d.DstY != 0 {
		t.Fatalf("(dst_x,dst_y)=(%d,%d) want (0,0)", d.DstX, d.DstY)
	}

	src := fillChecker(srcW, srcH, 2)
	dst := make([]byte, srcW*d.Scale*srcH*d.Scale*2)
	d.Blit(src, dst, d.SrcW, d.SrcH, d.SrcP, srcW*d.Scale, srcH*d.Scale, 0)
	assertChecker(t, src, dst, srcW, srcH, d.Scale, 2)
}

// TestEndToEndS6FullscreenRGBA8888ExactFill is scenario S6: a 320x240
// RGBA8888 source on a 640x480 device in FULLSCREEN mode divides evenly at
// scale 2, exercising the 32-bit-per-pixel blit path end to end.
func TestEndToEndS6FullscreenRGBA8888ExactFill(t *testing.T) {
	d := &Descriptor{}
	srcW, srcH := 320, 240
	Select(d, Params{
		SrcW: srcW, SrcH: srcH, TrueW: srcW, TrueH: srcH,
		Format: RGBA8888,
		Device: Device{Width: 640, Height: 480},
		Mode:   Fullscreen, FitToDevice: false,
	})
	if d.Scale != 2 {
		t.Fatalf("scale=%d want 2", d.Scale)
	}
	contentW, contentH := srcW*d.Scale, srcH*d.Scale
	if contentW != 640 || contentH != 480 {
		t.Fatalf("content=(%d,%d) want (640,480)", contentW, contentH)
	}

	src := fillChecker(srcW, srcH, 4)
	dst := make([]byte, contentW*contentH*4)
	d.Blit(src, dst, d.SrcW, d.SrcH, d.SrcP, contentW, contentH, 0)
	assertChecker(t, src, dst, srcW, srcH, d.Scale, 4)
}
