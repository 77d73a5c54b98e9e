//go:build !arm64

package scaler

// neonAvailable is always false off arm64; NeonDispatch16/32 collapse to
// the portable C-equivalent path, matching platforms the original scaler
// builds without HAS_NEON.
var neonAvailable = false

func wideChunkScale16(xmul, ymul int) Func { return New16(xmul, ymul) }
func wideChunkScale32(xmul, ymul int) Func { return New32(xmul, ymul) }
