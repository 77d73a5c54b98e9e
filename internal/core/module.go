// Package core defines the libretro-style emulator module contract minarch
// drives one frame at a time, and the environment callback bridge the
// module uses to request services from the frontend. Grounded in the
// teacher's api/emulator.go and api/system.go interfaces, reshaped from a
// narrow Go-native Emulator interface into the dynamically-loaded C-ABI
// contract a libretro-style core actually presents.
package core

import "github.com/user-none/minarch/internal/render"

// Region mirrors the teacher's api.Region: NTSC vs PAL timing.
type Region int

const (
	RegionNTSC Region = iota
	RegionPAL
)

// AVInfo is the subset of retro_system_av_info the frontend consumes:
// geometry for the render descriptor and timing for the frame loop and
// fast-forward metering.
type AVInfo struct {
	BaseWidth, BaseHeight, MaxWidth, MaxHeight int
	AspectRatio                                float64
	FPS                                        float64
	SampleRate                                 float64
}

// SystemInfo mirrors get_system_info: static facts about the core that
// don't depend on a loaded game.
type SystemInfo struct {
	LibraryName, LibraryVersion string
	ValidExtensions             []string
	// NeedFullPath mirrors retro_system_info.need_fullpath: when true the
	// frontend must pass a path rather than the ROM's bytes. It interacts
	// with ZIP-archived ROMs needing extraction to a real path first --
	// see internal/romload.
	NeedFullPath bool
}

// Module is the frontend-side view of a dynamically loaded libretro-style
// emulator module: the subset of the libretro API surface the frontend
// actually drives. A concrete implementation loads these from a shared
// object via internal/core's Loader; tests use an in-memory fake.
type Module interface {
	Init()
	Deinit()
	GetSystemInfo() SystemInfo
	GetSystemAVInfo() AVInfo
	SetControllerPortDevice(port int, device uint)
	Reset()
	Run()
	SerializeSize() uint
	Serialize(buf []byte) bool
	Unserialize(buf []byte) bool
	LoadGame(path string, data []byte) bool
	UnloadGame()
	GetMemoryData(id uint) []byte
	GetMemorySize(id uint) uint

	SetEnvironment(cb EnvironmentCallback)
	SetVideoRefresh(cb VideoRefreshCallback)
	SetAudioSample(cb AudioSampleCallback)
	SetAudioSampleBatch(cb AudioSampleBatchCallback)
	SetInputPoll(cb InputPollCallback)
	SetInputState(cb InputStateCallback)
}

// VideoRefreshCallback is the video-push callback: the module hands the
// frontend one frame's pixels, pitch in bytes, and logical geometry. The
// frontend's only job here is to copy into the backbuffer (inline mode:
// run the scaler directly; threaded mode: copy under the shared mutex).
type VideoRefreshCallback func(data []byte, width, height, pitch int)

// AudioSampleCallback delivers one stereo sample pair.
type AudioSampleCallback func(left, right int16)

// AudioSampleBatchCallback delivers interleaved stereo frames and returns
// the number of frames consumed.
type AudioSampleBatchCallback func(data []int16, frames int) int

// InputPollCallback asks the frontend to latch the current input state for
// this frame; the frontend pre-captures the per-core button bitmask before
// the worker runs so InputState never blocks on shared state.
type InputPollCallback func()

// InputStateCallback returns one button's digital/analog state for a
// given port/device/index/id tuple, per the libretro calling convention.
type InputStateCallback func(port int, device, index, id uint) int16

// DiscControlInterface mirrors SET_DISK_CONTROL_INTERFACE/_EXT: the vtable
// a module exposes for multi-disc image swapping.
type DiscControlInterface struct {
	SetEjectState      func(ejected bool) bool
	GetEjectState      func() bool
	GetImageIndex      func() uint
	SetImageIndex      func(index uint) bool
	GetNumImages       func() uint
	ReplaceImageIndex  func(index uint, path string) bool
	AddImageIndex      func() bool
}

// render.PixelFormat re-export avoids a second enum for the same concept
// in this package; SetPixelFormat below rejects anything but RGB565
// unless downsampling is explicitly enabled by the caller.
type PixelFormat = render.PixelFormat
