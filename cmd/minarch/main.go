// Command minarch is the desktop frontend: it dynamically loads one
// emulator core, runs one ROM, and presents it in an Ebiten window with
// the in-game menu, save states, and rebindable controls. Grounded in the
// teacher's standalone/directrun.go entry point, generalized from a fixed
// single-core build into a core loaded by path at runtime.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/user-none/minarch/internal/config"
	"github.com/user-none/minarch/internal/core"
	"github.com/user-none/minarch/internal/inputmap"
	"github.com/user-none/minarch/internal/logging"
	"github.com/user-none/minarch/internal/loop"
	"github.com/user-none/minarch/internal/menu"
	"github.com/user-none/minarch/internal/platform"
	"github.com/user-none/minarch/internal/render"
	"github.com/user-none/minarch/internal/romload"
	"github.com/user-none/minarch/internal/savestate"
)

// retroDeviceJoypad is the conventional RETRO_DEVICE_JOYPAD id every
// libretro-style core expects on SetControllerPortDevice; this is the
// only device type the frontend ever requests.
const retroDeviceJoypad = 1

// deviceWidth and deviceHeight size the presentation surface render.Select
// scales into. This port targets a single desktop window rather than a
// fixed handheld panel, so the numbers are a 4:3 reference size rather
// than a specific device's panel -- FitToDevice plus the user's scaling
// mode do the rest.
const deviceWidth, deviceHeight = 640, 480

type options struct {
	corePath        string
	romPath         string
	systemDir       string
	configDir       string
	saveDir         string
	allowDownsample bool
	fastForward     int
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("minarch", flag.ContinueOnError)
	var o options
	fs.StringVar(&o.corePath, "core", "", "path to the emulator core's shared object")
	fs.StringVar(&o.romPath, "rom", "", "path to the rom (or archive containing it) to run")
	fs.StringVar(&o.systemDir, "system-dir", "", "directory the core reads BIOS/system files from (default: config dir)")
	fs.StringVar(&o.configDir, "config-dir", "", "directory minarch reads/writes its own config from (default: platform app-data dir)")
	fs.StringVar(&o.saveDir, "save-dir", "", "directory the core writes battery saves to (default: platform app-data dir)")
	fs.BoolVar(&o.allowDownsample, "allow-downsample", false, "allow cores that report a pixel format other than RGB565")
	fs.IntVar(&o.fastForward, "fast-forward-speed", 3, "speed multiplier applied while fast-forward is held or toggled")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.corePath == "" || o.romPath == "" {
		return options{}, fmt.Errorf("minarch: -core and -rom are required")
	}

	var err error
	if o.configDir == "" {
		if o.configDir, err = defaultConfigDir(); err != nil {
			return options{}, err
		}
	}
	if o.saveDir == "" {
		if o.saveDir, err = defaultSaveDir(); err != nil {
			return options{}, err
		}
	}
	if o.systemDir == "" {
		o.systemDir = o.configDir
	}
	return o, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		logging.Fatalf("%v", err)
	}
	if err := run(opts); err != nil {
		logging.Fatalf("%v", err)
	}
}

func run(opts options) error {
	for _, dir := range []string{opts.configDir, opts.saveDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("minarch: %w", err)
		}
	}

	var loader core.Loader
	module, err := loader.Load(opts.corePath)
	if err != nil {
		return err
	}
	defer module.Deinit()

	env := core.NewEnvironment(opts.systemDir, opts.saveDir)
	env.AllowDownsample = opts.allowDownsample
	module.SetEnvironment(env.Callback())
	module.Init()
	module.SetControllerPortDevice(0, retroDeviceJoypad)

	sysInfo := module.GetSystemInfo()
	romData, romName, err := romload.Load(opts.romPath, sysInfo.ValidExtensions)
	if err != nil {
		return fmt.Errorf("minarch: %w", err)
	}

	var loaded bool
	if sysInfo.NeedFullPath {
		loaded = module.LoadGame(opts.romPath, nil)
	} else {
		loaded = module.LoadGame(romName, romData)
	}
	if !loaded {
		return fmt.Errorf("minarch: core rejected %s", opts.romPath)
	}
	defer module.UnloadGame()

	avInfo := module.GetSystemAVInfo()

	cfgPaths := config.Paths{
		SystemPath:     filepath.Join(opts.configDir, "system.cfg"),
		PakDefaultPath: strings.TrimSuffix(opts.corePath, filepath.Ext(opts.corePath)) + ".cfg",
		GlobalUserPath: filepath.Join(opts.configDir, "minarch.cfg"),
		RomPath:        opts.romPath,
	}
	cfg, err := config.Load(cfgPaths)
	if err != nil {
		return fmt.Errorf("minarch: config: %w", err)
	}

	env.Options.LoadDefinitions(frontendOptions())
	applyConfigToOptions(env.Options, cfg.Merged)

	buttons := buildButtons(inputmap.DefaultButtons(), env.InputDescriptors)
	shortcuts := inputmap.DefaultShortcuts()
	buttonMapping, shortcutMapping := buildMappings(buttons, shortcuts, cfg.Merged, nil)

	device := render.Device{Width: deviceWidth, Height: deviceHeight, SupportsCropped: true}
	desc := &render.Descriptor{Format: env.PixelFormat}

	l := loop.NewLoop(module, desc, device, deviceWidth*deviceHeight*4)
	l.CoreAspect = avInfo.AspectRatio
	l.FitToDevice = true
	l.Pacer.CoreFPS = avInfo.FPS

	var audio *platform.AudioSink
	if sink, audioErr := platform.NewAudioSink(int(avInfo.SampleRate)); audioErr != nil {
		logging.Warnf("audio: %v", audioErr)
	} else {
		audio = sink
		module.SetAudioSample(func(left, right int16) { audio.PushSample(left, right) })
		module.SetAudioSampleBatch(func(data []int16, frames int) int { return audio.PushBatch(data, frames) })
	}

	resumeMarkerPath := filepath.Join(opts.saveDir, "resume.txt")
	saves := savestate.NewManager(opts.romPath, resumeMarkerPath)
	discs, hasDiscs, discErr := savestate.DetectM3U(opts.romPath)
	if discErr != nil {
		logging.Warnf("disc detection: %v", discErr)
	}
	if !hasDiscs {
		discs = nil
	}

	l.Start(loop.Inline)

	if resumedRom, ok := savestate.ConsumeResumeMarker(resumeMarkerPath); ok && resumedRom == opts.romPath && saves.HasResumeState() {
		if err := saves.Load(module, savestate.AutoResumeSlot); err != nil {
			logging.Warnf("auto-resume: %v", err)
		}
	}

	m := menu.New(env.Options, cfg, saves, discs, desc)
	m.Disc = env.DiscControl
	m.Buttons = buttonBindings(buttons, buttonMapping)
	m.Shortcuts = shortcutBindings(shortcuts, shortcutMapping)

	display := platform.NewEbitenDisplay(sysInfo.LibraryName, device)

	w := &wiring{
		opts:            opts,
		module:          module,
		env:             env,
		cfgPaths:        cfgPaths,
		buttons:         buttons,
		shortcuts:       shortcuts,
		buttonMapping:   buttonMapping,
		shortcutMapping: shortcutMapping,
		loop:            l,
		menu:            m,
		display:         display,
		saves:           saves,
		audio:           audio,
		currentSlot:     saves.ReadLastSlot(),
	}
	w.cfg = cfg
	l.PollInput = w.pollInput

	defer l.Quit()
	if audio != nil {
		defer audio.Close()
	}

	return display.Run(w.step)
}
