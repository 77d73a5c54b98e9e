package main

import (
	"testing"

	"github.com/user-none/minarch/internal/core"
	"github.com/user-none/minarch/internal/render"
)

func TestScaleModeFromValue(t *testing.T) {
	cases := map[string]render.ScaleMode{
		"native":     render.Native,
		"aspect":     render.Aspect,
		"fullscreen": render.Fullscreen,
		"cropped":    render.Cropped,
		"garbage":    render.Native,
	}
	for v, want := range cases {
		if got := scaleModeFromValue(v); got != want {
			t.Errorf("scaleModeFromValue(%q) = %v, want %v", v, got, want)
		}
	}
}

func TestSharpnessFromValue(t *testing.T) {
	cases := map[string]render.Sharpness{
		"sharp":   render.Sharp,
		"crisp":   render.Crisp,
		"soft":    render.Soft,
		"garbage": render.Sharp,
	}
	for v, want := range cases {
		if got := sharpnessFromValue(v); got != want {
			t.Errorf("sharpnessFromValue(%q) = %v, want %v", v, got, want)
		}
	}
}

type fakeScaleSink struct {
	mode  render.ScaleMode
	sharp render.Sharpness
}

func (f *fakeScaleSink) SetScaleMode(m render.ScaleMode) { f.mode = m }
func (f *fakeScaleSink) SetSharpness(s render.Sharpness) { f.sharp = s }

func TestSyncScalingReadsCurrentOptionValues(t *testing.T) {
	options := core.NewOptionList()
	options.LoadDefinitions(frontendOptions())
	options.Set(optionKeyScreenScaling, "cropped")
	options.Set(optionKeyScreenSharpness, "soft")

	sink := &fakeScaleSink{}
	syncScaling(sink, options)

	if sink.mode != render.Cropped {
		t.Fatalf("expected Cropped, got %v", sink.mode)
	}
	if sink.sharp != render.Soft {
		t.Fatalf("expected Soft, got %v", sink.sharp)
	}
}

func TestSyncScalingIgnoresMissingOptions(t *testing.T) {
	options := core.NewOptionList()
	sink := &fakeScaleSink{mode: render.Fullscreen, sharp: render.Crisp}
	syncScaling(sink, options)
	if sink.mode != render.Fullscreen || sink.sharp != render.Crisp {
		t.Fatal("expected syncScaling to leave sink untouched when options are absent")
	}
}

type fakeConfigGetter map[string]string

func (f fakeConfigGetter) Get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func TestApplyConfigToOptionsAppliesOverride(t *testing.T) {
	options := core.NewOptionList()
	options.LoadDefinitions(frontendOptions())
	applyConfigToOptions(options, fakeConfigGetter{optionKeyScreenScaling: "cropped"})

	opt := options.Get(optionKeyScreenScaling)
	if opt.Values[opt.CurrentIndex] != "cropped" {
		t.Fatalf("expected cropped, got %s", opt.Values[opt.CurrentIndex])
	}
	// Screen Sharpness wasn't in merged, so it keeps its default.
	sharp := options.Get(optionKeyScreenSharpness)
	if sharp.CurrentIndex != sharp.DefaultIndex {
		t.Fatalf("expected sharpness to stay at default, got index %d", sharp.CurrentIndex)
	}
}

func TestApplyConfigToOptionsResetsStaleOverrides(t *testing.T) {
	options := core.NewOptionList()
	options.LoadDefinitions(frontendOptions())
	options.Set(optionKeyScreenScaling, "cropped")

	applyConfigToOptions(options, fakeConfigGetter{})

	opt := options.Get(optionKeyScreenScaling)
	if opt.CurrentIndex != opt.DefaultIndex {
		t.Fatal("expected stale override to reset to default when merged no longer has it")
	}
}
