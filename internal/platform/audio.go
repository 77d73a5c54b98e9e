package platform

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// AudioBufferMillis is the ring buffer's target depth, matching the
// teacher's ~167ms-at-48kHz-stereo-16-bit sizing rationale
// (standalone/audio.go's ringBufferCapacity) scaled to whatever sample
// rate the loaded core reports instead of a hard-coded 48000.
const AudioBufferMillis = 167

// AudioSink is the platform-owned audio mixer: a single-writer/single-
// reader queue the worker's audio callbacks push into without blocking,
// and an oto player pulls from. Grounded in the teacher's AudioPlayer
// (standalone/audio.go),
// adapted to build its ring buffer from the core-reported sample rate
// (AVInfo.SampleRate) rather than a fixed 48000, since a libretro-style
// core is free to report any rate.
type AudioSink struct {
	player  *oto.Player
	ring    *RingBuffer
	scratch []byte
}

// NewAudioSink opens an oto playback context at sampleRate and returns a
// sink ready to receive PushSample/PushBatch calls from the core's audio
// callbacks. Stereo signed 16-bit little-endian, the only format a
// libretro-style audio-sample-batch callback delivers.
func NewAudioSink(sampleRate int) (*AudioSink, error) {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   50 * time.Millisecond,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("platform: oto audio not available: %w", err)
	}
	<-ready

	capacity := sampleRate * 2 * 2 * AudioBufferMillis / 1000 // stereo, 2 bytes/sample
	ring := NewRingBuffer(capacity)
	player := ctx.NewPlayer(ring)
	player.SetVolume(1.0)
	player.Play()

	return &AudioSink{player: player, ring: ring}, nil
}

// PushSample queues one stereo frame, the sink's counterpart to
// core.AudioSampleCallback.
func (a *AudioSink) PushSample(left, right int16) {
	a.scratch = append(a.scratch[:0], byte(left), byte(left>>8), byte(right), byte(right>>8))
	a.ring.Write(a.scratch)
}

// PushBatch queues frames interleaved stereo int16 samples, the sink's
// counterpart to core.AudioSampleBatchCallback. Returns the number of
// frames accepted -- always all of them, since the ring buffer drops the
// oldest data on overflow rather than rejecting new data.
func (a *AudioSink) PushBatch(data []int16, frames int) int {
	need := frames * 4
	if cap(a.scratch) < need {
		a.scratch = make([]byte, need)
	}
	a.scratch = a.scratch[:need]
	for i := 0; i < frames*2; i++ {
		s := data[i]
		a.scratch[i*2] = byte(s)
		a.scratch[i*2+1] = byte(s >> 8)
	}
	a.ring.Write(a.scratch)
	return frames
}

// Clear drops any buffered-but-unplayed audio, used after a save-state
// load so stale samples don't play back out of sync with the new frame.
func (a *AudioSink) Clear() {
	a.ring.Clear()
}

// SetVolume sets playback volume; 1.0 is unity gain.
func (a *AudioSink) SetVolume(v float64) {
	a.player.SetVolume(v)
}

// Close stops playback and releases the oto player and ring buffer.
func (a *AudioSink) Close() error {
	a.ring.Close()
	return a.player.Close()
}
