package core

import (
	"log"

	"github.com/user-none/minarch/internal/render"
)

// EnvCode enumerates the environment callback request codes the frontend
// must honor. Values are illustrative, not wire-compatible with any
// particular libretro header -- this module never talks to a real
// libretro core binary, only to Go Modules built against this package's
// own Module interface.
type EnvCode int

const (
	EnvCanDupe EnvCode = iota
	EnvGetOverscan
	EnvSetMessage
	EnvGetSystemDirectory
	EnvSetPixelFormat
	EnvSetInputDescriptors
	EnvSetDiskControlInterface
	EnvGetVariable
	EnvSetVariables
	EnvGetVariableUpdate
	EnvSetCoreOptions
	EnvGetInputBitmasks
	EnvGetRumbleInterface
	EnvGetLogInterface
	EnvGetSaveDirectory
	EnvSetControllerInfo
	EnvSetVariable
)

// EnvironmentCallback is the single entry point a Module calls to reach
// frontend services. data's concrete type depends on cmd; Environment
// below is the frontend-side implementation every loaded Module is wired
// to via SetEnvironment.
type EnvironmentCallback func(code EnvCode, data any) bool

// InputDescriptor records one button label the core exposed via
// SET_INPUT_DESCRIPTORS.
type InputDescriptor struct {
	Port, Device, Index, ID uint
	Description             string
}

// ControllerInfo mirrors SET_CONTROLLER_INFO enough to detect a
// DualShock-style alternate pad.
type ControllerInfo struct {
	Types []string
}

// Environment is the frontend's implementation of every environment
// callback code the module can issue. It is main-thread-owned state:
// option lists, button bindings, and the disc-control vtable are read
// and written only here, never touched directly by the frame worker.
type Environment struct {
	SystemDir, SaveDir string

	PixelFormat     PixelFormat
	PixelFormatOK   bool
	AllowDownsample bool

	InputDescriptors []InputDescriptor
	DiscControl      *DiscControlInterface
	Controller       ControllerInfo

	Options *OptionList

	RumbleSet func(port int, strength uint16)
	Logger    func(format string, args ...any)
}

// NewEnvironment builds an Environment with sane defaults: GET_LOG_INTERFACE
// falls back to the standard logger when the caller doesn't supply one,
// matching the teacher's log.Printf-everywhere convention.
func NewEnvironment(systemDir, saveDir string) *Environment {
	return &Environment{
		SystemDir: systemDir,
		SaveDir:   saveDir,
		Options:   NewOptionList(),
		Logger:    func(format string, args ...any) { log.Printf(format, args...) },
	}
}

// Callback returns the EnvironmentCallback a Module should be wired to via
// SetEnvironment. Every code this Environment doesn't recognize returns
// false ("not supported"), never panics.
func (e *Environment) Callback() EnvironmentCallback {
	return func(code EnvCode, data any) bool {
		switch code {
		case EnvCanDupe:
			return true
		case EnvGetOverscan:
			return true
		case EnvSetMessage:
			if msg, ok := data.(string); ok {
				e.Logger("minarch: core message: %s", msg)
			}
			return true
		case EnvGetSystemDirectory:
			if ptr, ok := data.(*string); ok {
				*ptr = e.SystemDir
			}
			return true
		case EnvSetPixelFormat:
			fmtVal, ok := data.(PixelFormat)
			if !ok {
				return false
			}
			if fmtVal != render.RGB565 && !e.AllowDownsample {
				return false
			}
			e.PixelFormat = fmtVal
			e.PixelFormatOK = true
			return true
		case EnvSetInputDescriptors:
			if d, ok := data.([]InputDescriptor); ok {
				e.InputDescriptors = d
				return true
			}
			return false
		case EnvSetDiskControlInterface:
			if d, ok := data.(*DiscControlInterface); ok {
				e.DiscControl = d
				return true
			}
			return false
		case EnvGetVariable:
			key, ok := data.(*VariableRequest)
			if !ok {
				return false
			}
			opt := e.Options.Get(key.Key)
			if opt == nil {
				return false
			}
			key.Value = opt.Values[opt.CurrentIndex]
			return true
		case EnvSetVariables:
			defs, ok := data.([]LegacyVariable)
			if !ok {
				return false
			}
			e.Options.LoadLegacy(defs)
			return true
		case EnvGetVariableUpdate:
			if ptr, ok := data.(*bool); ok {
				*ptr = e.Options.Changed
				e.Options.Changed = false
			}
			return true
		case EnvSetCoreOptions:
			defs, ok := data.([]OptionDefinition)
			if !ok {
				return false
			}
			e.Options.LoadDefinitions(defs)
			return true
		case EnvGetInputBitmasks:
			return true
		case EnvGetRumbleInterface:
			if ptr, ok := data.(*func(port int, strength uint16)); ok {
				*ptr = e.RumbleSet
			}
			return true
		case EnvGetLogInterface:
			if ptr, ok := data.(*func(format string, args ...any)); ok {
				*ptr = e.Logger
			}
			return true
		case EnvGetSaveDirectory:
			if ptr, ok := data.(*string); ok {
				*ptr = e.SaveDir
			}
			return true
		case EnvSetControllerInfo:
			if ci, ok := data.(ControllerInfo); ok {
				e.Controller = ci
				return true
			}
			return false
		case EnvSetVariable:
			kv, ok := data.(*VariableRequest)
			if !ok {
				return false
			}
			if e.Options.Set(kv.Key, kv.Value) {
				e.Options.Changed = true
				return true
			}
			return false
		default:
			return false
		}
	}
}

// VariableRequest is the GET_VARIABLE/SET_VARIABLE payload: a key the core
// wants the current (or to set a new) value for.
type VariableRequest struct {
	Key   string
	Value string
}
