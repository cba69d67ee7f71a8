// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

// keymap.go is the OS→binding translation for the host platform: a total
// function from a platform virtual-key code to a BoolBinding, returning
// BoolUndefined for unmapped codes. Left/right modifier variants collapse
// to their logical modifier. Grounded bit-exact against the AXR engine's
// axrWParamToBoolInputActionEnum switch (actionUtils.cpp), which targets
// the Win32 virtual-key namespace; the constants below are that namespace,
// defined locally since x/sys/windows does not export VK_* values.
const (
	vkLButton  = 0x01
	vkRButton  = 0x02
	vkMButton  = 0x04
	vkXButton1 = 0x05
	vkXButton2 = 0x06

	vkBack     = 0x08
	vkTab      = 0x09
	vkReturn   = 0x0D
	vkShift    = 0x10
	vkControl  = 0x11
	vkMenu     = 0x12
	vkPause    = 0x13
	vkCapital  = 0x14
	vkEscape   = 0x1B
	vkSpace    = 0x20
	vkPrior    = 0x21
	vkNext     = 0x22
	vkEnd      = 0x23
	vkHome     = 0x24
	vkLeft     = 0x25
	vkUp       = 0x26
	vkRight    = 0x27
	vkDown     = 0x28
	vkSnapshot = 0x2C
	vkInsert   = 0x2D
	vkDelete   = 0x2E

	vkKey0 = 0x30
	vkKey9 = 0x39
	vkKeyA = 0x41
	vkKeyZ = 0x5A

	vkLWin = 0x5B
	vkRWin = 0x5C

	vkNumpad0 = 0x60
	vkNumpad9 = 0x69

	vkF1  = 0x70
	vkF12 = 0x7B

	vkNumLock  = 0x90
	vkScroll   = 0x91
	vkLShift   = 0xA0
	vkRShift   = 0xA1
	vkLControl = 0xA2
	vkRControl = 0xA3
	vkLMenu    = 0xA4
	vkRMenu    = 0xA5

	vkSubtract = 0x6D
	vkDecimal  = 0x6E
	vkDivide   = 0x6F
	vkMultiply = 0x6A
	vkAdd      = 0x6B

	vkOemPlus   = 0xBB
	vkOemComma  = 0xBC
	vkOemMinus  = 0xBD
	vkOemPeriod = 0xBE
	vkOem1      = 0xBA
	vkOem2      = 0xBF
	vkOem3      = 0xC0
	vkOem4      = 0xDB
	vkOem5      = 0xDC
	vkOem6      = 0xDD
	vkOem7      = 0xDE
)

// keyboardDigits and keyboardLetters are built once rather than spelled out
// as 36 individual switch cases, since the virtual-key codes for 0-9 and
// A-Z are contiguous in the Win32 namespace; keyboardNumpad and
// keyboardFunction do the same for the numpad digits and F1-F12.
var keyboardDigits = [...]BoolBinding{
	Keyboard0, Keyboard1, Keyboard2, Keyboard3, Keyboard4,
	Keyboard5, Keyboard6, Keyboard7, Keyboard8, Keyboard9,
}

var keyboardLetters = [...]BoolBinding{
	KeyboardA, KeyboardB, KeyboardC, KeyboardD, KeyboardE, KeyboardF, KeyboardG,
	KeyboardH, KeyboardI, KeyboardJ, KeyboardK, KeyboardL, KeyboardM, KeyboardN,
	KeyboardO, KeyboardP, KeyboardQ, KeyboardR, KeyboardS, KeyboardT, KeyboardU,
	KeyboardV, KeyboardW, KeyboardX, KeyboardY, KeyboardZ,
}

var keyboardNumpad = [...]BoolBinding{
	KeyboardNumPad0, KeyboardNumPad1, KeyboardNumPad2, KeyboardNumPad3, KeyboardNumPad4,
	KeyboardNumPad5, KeyboardNumPad6, KeyboardNumPad7, KeyboardNumPad8, KeyboardNumPad9,
}

var keyboardFunction = [...]BoolBinding{
	KeyboardF1, KeyboardF2, KeyboardF3, KeyboardF4, KeyboardF5, KeyboardF6,
	KeyboardF7, KeyboardF8, KeyboardF9, KeyboardF10, KeyboardF11, KeyboardF12,
}

// VKeyToBoolBinding maps a Win32 virtual-key code to its BoolBinding,
// returning BoolUndefined for a code this vocabulary doesn't cover. Both
// left/right variants of Shift/Control/Alt collapse to the single logical
// modifier binding, matching the source switch's fallthrough groups.
func VKeyToBoolBinding(vkey int) BoolBinding {
	switch {
	case vkey >= vkKey0 && vkey <= vkKey9:
		return keyboardDigits[vkey-vkKey0]
	case vkey >= vkKeyA && vkey <= vkKeyZ:
		return keyboardLetters[vkey-vkKeyA]
	case vkey >= vkNumpad0 && vkey <= vkNumpad9:
		return keyboardNumpad[vkey-vkNumpad0]
	case vkey >= vkF1 && vkey <= vkF12:
		return keyboardFunction[vkey-vkF1]
	}

	switch vkey {
	case vkLButton:
		return MouseClickL
	case vkRButton:
		return MouseClickR
	case vkMButton:
		return MouseClickM
	case vkXButton1:
		return MouseClickX1
	case vkXButton2:
		return MouseClickX2

	case vkBack:
		return KeyboardBackspace
	case vkTab:
		return KeyboardTab
	case vkReturn:
		return KeyboardEnter
	case vkShift, vkLShift, vkRShift:
		return KeyboardShift
	case vkControl, vkLControl, vkRControl:
		return KeyboardCtrl
	case vkMenu, vkLMenu, vkRMenu:
		return KeyboardAlt
	case vkPause:
		return KeyboardPause
	case vkCapital:
		return KeyboardCapsLock
	case vkEscape:
		return KeyboardEscape
	case vkSpace:
		return KeyboardSpace
	case vkPrior:
		return KeyboardPageUp
	case vkNext:
		return KeyboardPageDown
	case vkEnd:
		return KeyboardEnd
	case vkHome:
		return KeyboardHome
	case vkLeft:
		return KeyboardLeftArrow
	case vkUp:
		return KeyboardUpArrow
	case vkRight:
		return KeyboardRightArrow
	case vkDown:
		return KeyboardDownArrow
	case vkSnapshot:
		return KeyboardPrintScreen
	case vkInsert:
		return KeyboardInsert
	case vkDelete:
		return KeyboardDelete
	case vkLWin:
		return KeyboardWinL
	case vkRWin:
		return KeyboardWinR
	case vkNumLock:
		return KeyboardNumLock
	case vkScroll:
		return KeyboardScrollLock
	case vkSubtract:
		return KeyboardSubtract
	case vkDecimal:
		return KeyboardDecimal
	case vkDivide:
		return KeyboardDivide
	case vkMultiply, vkAdd, vkOemPlus:
		return KeyboardPlus
	case vkOemComma:
		return KeyboardComma
	case vkOemMinus:
		return KeyboardMinus
	case vkOemPeriod:
		return KeyboardPeriod
	case vkOem1:
		return KeyboardOEM1SemicolonColon
	case vkOem2:
		return KeyboardOEM2SlashQuestion
	case vkOem3:
		return KeyboardOEM3BacktickTilde
	case vkOem4:
		return KeyboardOEM4OpenBracketBrace
	case vkOem5:
		return KeyboardOEM5BackslashPipe
	case vkOem6:
		return KeyboardOEM6CloseBracketBrace
	case vkOem7:
		return KeyboardOEM7Quotes
	default:
		return BoolUndefined
	}
}
