// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build windows

package action

// Windows raw-input registration and WM_INPUT decoding. x/sys/windows
// doesn't wrap RegisterRawInputDevices/GetRawInputData directly, so they're
// called the way the rest of the Go ecosystem reaches Win32 APIs absent
// from the package: a lazy DLL handle plus NewProc, the same pattern used
// for any user32/kernel32 export x/sys/windows hasn't bound.

import (
	"fmt"
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procRegisterRawInputDevices  = user32.NewProc("RegisterRawInputDevices")
	procGetRawInputData          = user32.NewProc("GetRawInputData")
)

const (
	ridevInputSink = 0x00000100
	ridevRemove    = 0x00000001

	usagePageGeneric = 0x01
	usageMouse       = 0x02
	usageKeyboard    = 0x06

	ridInput = 0x10000003

	ritypeMouse    = 0
	ritypeKeyboard = 1

	mouseMoveRelative = 0x00
	mouseMoveAbsolute = 0x01

	riMouseWheel        = 0x0400
	riMouseHWheel       = 0x0800
	riMouseLeftDown     = 0x0001
	riMouseLeftUp       = 0x0002
	riMouseRightDown    = 0x0004
	riMouseRightUp      = 0x0008
	riMouseMiddleDown   = 0x0010
	riMouseMiddleUp     = 0x0020
	riMouseButton4Down  = 0x0040
	riMouseButton4Up    = 0x0080
	riMouseButton5Down  = 0x0100
	riMouseButton5Up    = 0x0200

	keyBreak = 0x01 // RI_KEY_BREAK - key up.
)

// rawInputDevice mirrors the Win32 RAWINPUTDEVICE struct.
type rawInputDevice struct {
	UsagePage uint16
	Usage     uint16
	Flags     uint32
	Target    windows.HWND
}

// rawInputHeader mirrors RAWINPUTHEADER.
type rawInputHeader struct {
	Type   uint32
	Size   uint32
	Device windows.Handle
	Param  uintptr
}

// rawMouse mirrors the fields of RAWMOUSE this package reads. The real
// struct has a union for button data; the two fields used here
// (ButtonFlags, ButtonData) occupy the same offsets regardless of which
// union member the OS populated.
type rawMouse struct {
	Flags          uint16
	_              uint16
	ButtonFlags    uint16
	ButtonData     uint16
	RawButtons     uint32
	LastX          int32
	LastY          int32
	ExtraInfo      uint32
}

// rawKeyboard mirrors RAWKEYBOARD.
type rawKeyboard struct {
	MakeCode         uint16
	Flags            uint16
	Reserved         uint16
	VKey             uint16
	Message          uint32
	ExtraInformation uint32
}

// registerOsInput registers the process for raw keyboard and mouse input
// against the window set via SetWindow. A zero hwnd is treated as "no
// window yet attached" and is not an error - the caller may be running
// headless (tests, a dedicated XR-only build).
func (s *ActionSystem) registerOsInput() error {
	if s.hwnd == 0 {
		log.Warn().Msg("no window set, skipping raw input registration")
		return nil
	}
	devices := []rawInputDevice{
		{UsagePage: usagePageGeneric, Usage: usageMouse, Flags: ridevInputSink, Target: windows.HWND(s.hwnd)},
		{UsagePage: usagePageGeneric, Usage: usageKeyboard, Flags: ridevInputSink, Target: windows.HWND(s.hwnd)},
	}
	return registerRawInputDevices(devices)
}

// deregisterOsInput unregisters raw input devices, best-effort: a failure
// here is logged, never returned, since it happens during teardown where
// there is no caller left to usefully react to an error.
func (s *ActionSystem) deregisterOsInput() {
	devices := []rawInputDevice{
		{UsagePage: usagePageGeneric, Usage: usageMouse, Flags: ridevRemove},
		{UsagePage: usagePageGeneric, Usage: usageKeyboard, Flags: ridevRemove},
	}
	if err := registerRawInputDevices(devices); err != nil {
		log.Warn().Err(err).Msg("deregister raw input failed")
	}
}

func registerRawInputDevices(devices []rawInputDevice) error {
	ret, _, err := procRegisterRawInputDevices.Call(
		uintptr(unsafe.Pointer(&devices[0])),
		uintptr(len(devices)),
		uintptr(unsafe.Sizeof(devices[0])),
	)
	if ret == 0 {
		return fmt.Errorf("RegisterRawInputDevices: %w", err)
	}
	return nil
}

// HandleRawInput decodes a WM_INPUT message's lParam (an HRAWINPUT) and
// dispatches the resulting keyboard or mouse event into the action system.
// Called from the host's window procedure on every WM_INPUT message;
// cursor-inside-client-area gating is the caller's responsibility, applied
// before this is invoked, per the OS adapter contract's "drop messages
// outside the window" rule.
func (s *ActionSystem) HandleRawInput(lParam uintptr) error {
	var size uint32
	ret, _, _ := procGetRawInputData.Call(
		lParam,
		ridInput,
		0,
		uintptr(unsafe.Pointer(&size)),
		unsafe.Sizeof(rawInputHeader{}),
	)
	if ret != 0 {
		return newError(OsFailure, "get raw input size", fmt.Errorf("GetRawInputData returned %d", ret))
	}
	if size == 0 {
		return nil
	}
	buf := make([]byte, size)
	ret, _, err := procGetRawInputData.Call(
		lParam,
		ridInput,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
		unsafe.Sizeof(rawInputHeader{}),
	)
	if int32(ret) == -1 {
		return newError(OsFailure, "get raw input data", err)
	}
	header := (*rawInputHeader)(unsafe.Pointer(&buf[0]))
	payload := buf[unsafe.Sizeof(rawInputHeader{}):]
	switch header.Type {
	case ritypeMouse:
		s.handleRawMouse((*rawMouse)(unsafe.Pointer(&payload[0])))
	case ritypeKeyboard:
		s.handleRawKeyboard((*rawKeyboard)(unsafe.Pointer(&payload[0])))
	}
	return nil
}

func (s *ActionSystem) handleRawKeyboard(kb *rawKeyboard) {
	b := VKeyToBoolBinding(int(kb.VKey))
	if b == BoolUndefined {
		return
	}
	s.TriggerBool(b, kb.Flags&keyBreak == 0)
}

var mouseButtonEvents = []struct {
	downFlag, upFlag uint16
	binding          BoolBinding
}{
	{riMouseLeftDown, riMouseLeftUp, MouseClickL},
	{riMouseRightDown, riMouseRightUp, MouseClickR},
	{riMouseMiddleDown, riMouseMiddleUp, MouseClickM},
	{riMouseButton4Down, riMouseButton4Up, MouseClickX1},
	{riMouseButton5Down, riMouseButton5Up, MouseClickX2},
}

func (s *ActionSystem) handleRawMouse(m *rawMouse) {
	for _, e := range mouseButtonEvents {
		if m.ButtonFlags&e.downFlag != 0 {
			s.TriggerBool(e.binding, true)
		}
		if m.ButtonFlags&e.upFlag != 0 {
			s.TriggerBool(e.binding, false)
		}
	}
	if m.ButtonFlags&riMouseWheel != 0 {
		s.AccumulateScroll(float64(int16(m.ButtonData)), false)
	}
	if m.ButtonFlags&riMouseHWheel != 0 {
		s.AccumulateScroll(float64(int16(m.ButtonData)), true)
	}
	if m.Flags&mouseMoveAbsolute != 0 {
		s.UpdateAbsoluteCursor(float64(m.LastX), float64(m.LastY))
	} else {
		s.AccumulateMouseMoved(float64(m.LastX), float64(m.LastY))
	}
}
