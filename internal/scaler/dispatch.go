package scaler

// maxFactor mirrors scaler_c16/scaler_c32's dispatch table: scale factors
// run 1..6 on each axis, but the table is jagged -- rows xmul=1..4 only
// define ymul up to 4, xmul=5 goes up to 5, and xmul=6 goes up to 6. Any
// other combination the original leaves as "dummy" (a no-op), which this
// package preserves exactly (see SPEC_FULL.md's supplemented-features
// note) rather than filling in the full square that a naive reading of
// "6x8 table" would suggest.
var maxYForX = [6]int{4, 4, 4, 4, 5, 6}

func jaggedFactorValid(xmul, ymul int) bool {
	if xmul < 1 || xmul > 6 || ymul < 1 {
		return false
	}
	return ymul <= maxYForX[xmul-1]
}

// Dispatch16 selects the scaleXxY function for RGB565 pixels the way
// scaler_c16 does: out-of-range or undefined (xmul, ymul) pairs resolve to
// a no-op, never a panic or an error.
func Dispatch16(xmul, ymul int) Func {
	if !jaggedFactorValid(xmul, ymul) {
		return dummy
	}
	return New16(xmul, ymul)
}

// Dispatch32 is Dispatch16 for RGBA8888 pixels.
func Dispatch32(xmul, ymul int) Func {
	if !jaggedFactorValid(xmul, ymul) {
		return dummy
	}
	return New32(xmul, ymul)
}
