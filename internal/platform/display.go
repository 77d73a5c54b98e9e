package platform

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/user-none/minarch/internal/inputmap"
	"github.com/user-none/minarch/internal/menu"
	"github.com/user-none/minarch/internal/render"
	"github.com/user-none/minarch/internal/scaler"
)

// StepFunc is called once per presentation tick. pixels/desc describe
// the already-scaled buffer to blit, in desc.Format at desc.DstW x
// desc.DstH x desc.DstP; ok is false to close the window.
type StepFunc func() (pixels []byte, desc *render.Descriptor, ok bool)

// Display is the presentation-interface stand-in for the out-of-scope
// platform layer: the window, the blit of an already-scaled CPU pixel
// buffer, and raw keyboard/gamepad polling. Nothing implementing Display
// may resample a pixel -- that stays in internal/render and
// internal/scaler.
type Display interface {
	// Run opens the window and blocks until step reports ok=false.
	Run(step StepFunc) error

	// Buttons polls mapping's keyboard/gamepad bindings into the
	// per-core button bitmask, gated by menuHeld so a modifier-flagged
	// binding only contributes its menu-combo half while the menu
	// button is held.
	Buttons(mapping inputmap.Mapping, menuHeld bool) uint32

	// Shortcuts is Buttons' counterpart for hotkey bindings.
	Shortcuts(mapping inputmap.Mapping, menuHeld bool) uint32

	// MenuHeld reports whether the menu button is currently down.
	MenuHeld() bool

	// MenuPressed reports whether the menu button transitioned down
	// this tick -- the entry/exit edge the menu opens and closes on,
	// distinct from the held level MenuHeld reports.
	MenuPressed() bool

	// MenuAction returns the first menu-navigation edge detected this
	// tick, if any.
	MenuAction() (menu.Action, bool)

	// CaptureInput reports the first keyboard or gamepad press detected
	// this tick, for the menu's rebinding flow (menu.AwaitingInput).
	// Reserved keys never satisfy a capture. label is the same name
	// string inputmap's Parse/ToName pair uses.
	CaptureInput() (label string, isGamepad bool, ok bool)
}

// EbitenDisplay is minarch's sole concrete Display, grounded in the
// teacher's directRunner (standalone/directrun.go): a minimal
// ebiten.Game wrapper around one emulator session, stripped of the
// library/settings/achievements UI that belongs to App instead. Menu
// navigation edge polling is grounded in standalone/pausemenu.go's
// Update, generalized from a hand-rolled pause overlay into edges fed
// to internal/menu.
type EbitenDisplay struct {
	title  string
	device render.Device
	step   StepFunc

	img          *ebiten.Image
	rgba         []byte
	pixels       []byte
	desc         *render.Descriptor
	lastW, lastH int
}

var _ Display = (*EbitenDisplay)(nil)

// NewEbitenDisplay returns a Display that opens a window sized for
// device and titled title.
func NewEbitenDisplay(title string, device render.Device) *EbitenDisplay {
	return &EbitenDisplay{title: title, device: device}
}

// Run implements Display.
func (d *EbitenDisplay) Run(step StepFunc) error {
	d.step = step
	ebiten.SetWindowTitle(d.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(d.device.Width, d.device.Height)
	return ebiten.RunGame(d)
}

// Update implements ebiten.Game.
func (d *EbitenDisplay) Update() error {
	pixels, desc, ok := d.step()
	if !ok {
		// Matches the teacher's App.Exit: os.Exit(0) instead of
		// unwinding RunGame, avoiding log.Fatal's stack trace
		// (standalone/app.go). The step closure has already flushed
		// whatever state needed flushing by the time it returns false.
		os.Exit(0)
	}
	d.pixels, d.desc = pixels, desc
	return nil
}

// Draw implements ebiten.Game. It performs the presentation-time pixel
// transforms this package is allowed: a 1:1 RGB565->RGBA8888
// reinterpretation via the scaler package's existing conversion blit,
// plus a channel swap to ebiten's byte order -- see convertToRGBA.
// Neither is a resample: both produce exactly as many pixels out as in.
func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	desc := d.desc
	if desc == nil || len(d.pixels) == 0 {
		return
	}
	w, h := desc.DstW, desc.DstH
	if w <= 0 || h <= 0 {
		return
	}
	if d.img == nil || d.lastW != w || d.lastH != h {
		d.img = ebiten.NewImage(w, h)
		d.lastW, d.lastH = w, h
	}

	need := w * h * 4
	if cap(d.rgba) < need {
		d.rgba = make([]byte, need)
	}
	d.rgba = d.rgba[:need]

	convertToRGBA(d.pixels, d.rgba, w, h, desc.Format, desc.DstP)
	d.img.WritePixels(d.rgba)

	opts := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	opts.GeoM.Translate(float64(desc.DstX), float64(desc.DstY))
	screen.DrawImage(d.img, opts)
}

// convertToRGBA fills dst (tightly packed, true R,G,B,A byte order,
// w*h*4 bytes) from src, which is w x h pixels at srcPitch bytes/row in
// format. For RGB565 this reuses the scaler package's existing 1:1
// conversion blit; for RGBA8888 it is a pitch-stripping copy. Neither
// branch resamples -- both produce exactly w x h pixels out for w x h
// pixels in. Both paths finish with a channel swap: the scaler
// package's pixels (RGB565-converted or core-reported RGBA8888 alike)
// follow libretro's native XRGB8888 word convention
// (0xAARRGGBB, little-endian memory order B,G,R,A), while
// ebiten.Image.WritePixels wants true R,G,B,A bytes.
func convertToRGBA(src, dst []byte, w, h int, format render.PixelFormat, srcPitch int) {
	if format == render.RGB565 {
		scaler.Scale1xC16to32(src, dst, w, h, srcPitch, w, h, 0)
	} else {
		if srcPitch <= 0 {
			srcPitch = w * 4
		}
		if srcPitch == w*4 {
			copy(dst, src[:w*h*4])
		} else {
			for y := 0; y < h; y++ {
				copy(dst[y*w*4:(y+1)*w*4], src[y*srcPitch:y*srcPitch+w*4])
			}
		}
	}
	swapRedBlue(dst)
}

// swapRedBlue exchanges the R and B bytes of every pixel in place, a
// per-pixel 1:1 operation rather than a resample.
func swapRedBlue(p []byte) {
	for i := 0; i+3 < len(p); i += 4 {
		p[i], p[i+2] = p[i+2], p[i]
	}
}

// Layout implements ebiten.Game, scaling logical to physical pixels
// for HiDPI displays the way the teacher's App.Layout does.
func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

// Buttons implements Display, reusing inputmap.Poll against the first
// connected gamepad, the same "player 1: keyboard + first gamepad"
// convention as the teacher's pollInputToShared.
func (d *EbitenDisplay) Buttons(mapping inputmap.Mapping, menuHeld bool) uint32 {
	id, hasGamepad := primaryGamepad()
	return inputmap.Poll(mapping, id, hasGamepad, menuHeld)
}

// Shortcuts implements Display. Hotkeys poll the same way buttons do;
// only the mapping table differs.
func (d *EbitenDisplay) Shortcuts(mapping inputmap.Mapping, menuHeld bool) uint32 {
	return d.Buttons(mapping, menuHeld)
}

// menuPad is the gamepad Select/Back button reserved for opening/closing
// the menu; its keyboard counterpart, Escape (already reserved against
// rebinding in internal/inputmap), is checked directly.
const menuPad = ebiten.StandardGamepadButtonCenterLeft

// MenuHeld implements Display.
func (d *EbitenDisplay) MenuHeld() bool {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadButtonPressed(id, menuPad) {
			return true
		}
	}
	return false
}

// MenuPressed implements Display.
func (d *EbitenDisplay) MenuPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, menuPad) {
			return true
		}
	}
	return false
}

// MenuAction implements Display. Keyboard edges are checked before
// gamepad edges, matching the priority order of the teacher's
// PauseMenu.Update.
func (d *EbitenDisplay) MenuAction() (menu.Action, bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		return menu.ActionUp, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		return menu.ActionDown, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA):
		return menu.ActionLeft, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD):
		return menu.ActionRight, true
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return menu.ActionConfirm, true
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		return menu.ActionCancel, true
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		return menu.ActionClear, true
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		switch {
		case inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftTop):
			return menu.ActionUp, true
		case inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftBottom):
			return menu.ActionDown, true
		case inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftLeft):
			return menu.ActionLeft, true
		case inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight):
			return menu.ActionRight, true
		case inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom):
			return menu.ActionConfirm, true
		case inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight):
			return menu.ActionCancel, true
		case inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft):
			return menu.ActionClear, true
		}
	}
	return menu.Action(0), false
}

// CaptureInput implements Display, grounded in the teacher's input
// settings screen (standalone/screens/settings/input.go), which scans
// AppendJustPressedKeys and the standard gamepad button range the same
// way to learn a user's desired rebinding.
func (d *EbitenDisplay) CaptureInput() (string, bool, bool) {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if inputmap.IsReservedKey(k) {
			continue
		}
		if name, ok := inputmap.KeyToName(k); ok {
			return name, false, true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for btn := ebiten.StandardGamepadButton(0); btn <= ebiten.StandardGamepadButtonMax; btn++ {
			if !inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				continue
			}
			if name, ok := inputmap.PadToName(btn); ok {
				return name, true, true
			}
		}
	}
	return "", false, false
}

// primaryGamepad returns the first connected gamepad, grounded in the
// teacher's pollInputToShared (standalone/directrun.go): player 1 gets
// keyboard plus the first gamepad ID reported.
func primaryGamepad() (ebiten.GamepadID, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
