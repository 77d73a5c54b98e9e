// Package mnerr collects the sentinel errors shared across minarch's
// packages so callers can use errors.Is instead of string matching.
package mnerr

import "errors"

var (
	// ErrNoROMFile is returned when an archive contains no file matching
	// any of the core's declared extensions.
	ErrNoROMFile = errors.New("no rom file found in archive")

	// ErrUnsupportedFormat is returned when an archive's magic bytes and
	// extension both fail to match a known container format.
	ErrUnsupportedFormat = errors.New("unsupported archive format")

	// ErrFileTooLarge is returned when a ROM exceeds the loader's size cap.
	ErrFileTooLarge = errors.New("rom file too large")

	// ErrEncryptedEntry is returned when a ZIP entry has the encrypted bit
	// set in its general-purpose flags.
	ErrEncryptedEntry = errors.New("encrypted zip entries are not supported")

	// ErrDataDescriptorEntry is returned when a ZIP entry relies on a
	// trailing data descriptor instead of a known-good local header.
	ErrDataDescriptorEntry = errors.New("zip entries using data descriptors are not supported")

	// ErrStateMissing is returned by a state load when the slot is empty.
	ErrStateMissing = errors.New("save state not present")

	// ErrCoreSymbol is returned when a loaded emulator module is missing a
	// required entry point.
	ErrCoreSymbol = errors.New("emulator module missing required symbol")

	// ErrPixelFormat is returned when a core reports a pixel format other
	// than RGB565 and downsampling has not been enabled.
	ErrPixelFormat = errors.New("unsupported pixel format")

	// ErrNoGame is returned by state/config operations issued before a
	// ROM has been loaded.
	ErrNoGame = errors.New("no game loaded")
)
