package main

import (
	"github.com/user-none/minarch/internal/core"
	"github.com/user-none/minarch/internal/render"
)

// optionKeyScreenScaling and optionKeyScreenSharpness must match the
// unexported keys internal/menu's Handle checks to decide whether a
// cycled option needs a scaler reselect (menu.go's scaleDirty rule) --
// they aren't core options, so there is no Module-reported definition to
// read them from; the frontend seeds them itself via frontendOptions.
const (
	optionKeyScreenScaling   = "minarch_screen_scaling"
	optionKeyScreenSharpness = "minarch_screen_sharpness"
)

// frontendOptions returns the two frontend-owned Options a pak's
// emulator-reported options never cover: screen scaling mode and filter
// sharpness. Seeded into core.OptionList alongside
// whatever the loaded module defines via SET_VARIABLES/SET_CORE_OPTIONS,
// so both live in the same MENU_VAR screen the way the original's
// Frontend/Emulator option tabs do.
func frontendOptions() []core.OptionDefinition {
	return []core.OptionDefinition{
		{
			Key:  optionKeyScreenScaling,
			Desc: "Screen Scaling",
			Info: "Native: pixel-perfect integer scale. Aspect: largest integer scale preserving the core's aspect ratio. Fullscreen: stretch to fill. Cropped: crop overscan before scaling.",
			Values: []core.OptionValue{
				{Value: "native", Label: "Native"},
				{Value: "aspect", Label: "Aspect"},
				{Value: "fullscreen", Label: "Fullscreen"},
				{Value: "cropped", Label: "Cropped"},
			},
			Default: "aspect",
		},
		{
			Key:  optionKeyScreenSharpness,
			Desc: "Screen Sharpness",
			Info: "Sharp: nearest-neighbor. Crisp: a light blend between pixels. Soft: a heavier blend, closest to a CRT's softness.",
			Values: []core.OptionValue{
				{Value: "sharp", Label: "Sharp"},
				{Value: "crisp", Label: "Crisp"},
				{Value: "soft", Label: "Soft"},
			},
			Default: "sharp",
		},
	}
}

func scaleModeFromValue(v string) render.ScaleMode {
	switch v {
	case "fullscreen":
		return render.Fullscreen
	case "cropped":
		return render.Cropped
	case "aspect":
		return render.Aspect
	default:
		return render.Native
	}
}

func sharpnessFromValue(v string) render.Sharpness {
	switch v {
	case "crisp":
		return render.Crisp
	case "soft":
		return render.Soft
	default:
		return render.Sharp
	}
}

// syncScaling reads the current value of the two frontend Options into
// l's ScaleMode/Sharpness fields. Cheap enough to call every frame rather
// than threading a change notification through the menu.
func syncScaling(l loopScaleSink, options *core.OptionList) {
	if opt := options.Get(optionKeyScreenScaling); opt != nil && opt.CurrentIndex < len(opt.Values) {
		l.SetScaleMode(scaleModeFromValue(opt.Values[opt.CurrentIndex]))
	}
	if opt := options.Get(optionKeyScreenSharpness); opt != nil && opt.CurrentIndex < len(opt.Values) {
		l.SetSharpness(sharpnessFromValue(opt.Values[opt.CurrentIndex]))
	}
}

// loopScaleSink is the narrow slice of *loop.Loop syncScaling needs,
// kept as an interface so the merge logic above is testable without
// constructing a full Loop (which requires a live core.Module).
type loopScaleSink interface {
	SetScaleMode(render.ScaleMode)
	SetSharpness(render.Sharpness)
}

// applyConfigToOptions resets every option to its default, then applies
// whatever merged has on top -- the reset half matters after Restore
// Defaults, where merged no longer carries the overrides that used to
// be in effect.
func applyConfigToOptions(options *core.OptionList, merged configGetter) {
	for _, opt := range options.All() {
		opt.CurrentIndex = opt.DefaultIndex
	}
	for _, opt := range options.All() {
		if v, ok := merged.Get(opt.Key); ok {
			options.Set(opt.Key, v)
		}
	}
}

// configGetter is the one config.Set method applyConfigToOptions needs,
// kept as an interface for the same testability reason as loopScaleSink.
type configGetter interface {
	Get(key string) (string, bool)
}
