package scaler

import "unsafe"

// aligned4 reports whether a byte slice's backing address and every given
// pitch are 4-byte aligned -- the precondition the NEON scalers require
// before touching wide vector loads/stores.
func aligned4(buf []byte, pitches ...int) bool {
	if len(buf) == 0 {
		return true
	}
	if uintptr(unsafe.Pointer(&buf[0]))%4 != 0 {
		return false
	}
	for _, p := range pitches {
		if p%4 != 0 {
			return false
		}
	}
	return true
}

// NeonDispatch16 returns a scaler for RGB565 pixels that takes the
// wide-chunk accelerated path (see scaler_arm64.go) when the platform has
// NEON and both buffers/pitches are 4-byte aligned, and falls back to the
// portable Dispatch16 implementation otherwise -- byte-for-byte identical
// output either way, satisfying testable property 3.
func NeonDispatch16(xmul, ymul int) Func {
	portable := Dispatch16(xmul, ymul)
	if !neonAvailable || !jaggedFactorValid(xmul, ymul) {
		return portable
	}
	wide := wideChunkScale16(xmul, ymul)
	return func(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
		sp2 := pitchOf(sp, sw, bpp16)
		dp2 := pitchOf(dp, sw*xmul, bpp16)
		if !aligned4(src, sp2) || !aligned4(dst, dp2) {
			portable(src, dst, sw, sh, sp, dw, dh, dp)
			return
		}
		wide(src, dst, sw, sh, sp, dw, dh, dp)
	}
}

// NeonDispatch32 is NeonDispatch16 for RGBA8888 pixels.
func NeonDispatch32(xmul, ymul int) Func {
	portable := Dispatch32(xmul, ymul)
	if !neonAvailable || !jaggedFactorValid(xmul, ymul) {
		return portable
	}
	wide := wideChunkScale32(xmul, ymul)
	return func(src, dst []byte, sw, sh, sp, dw, dh, dp int) {
		sp2 := pitchOf(sp, sw, bpp32)
		dp2 := pitchOf(dp, sw*xmul, bpp32)
		if !aligned4(src, sp2) || !aligned4(dst, dp2) {
			portable(src, dst, sw, sh, sp, dw, dh, dp)
			return
		}
		wide(src, dst, sw, sh, sp, dw, dh, dp)
	}
}

// MemcpyAligned is the package's stand-in for the original's memcpy_neon
// helper: a plain bulk copy. The integer scalers replicate an
// already-scaled row with copy() directly and do not call it.
func MemcpyAligned(dst, src []byte) {
	copy(dst, src)
}
