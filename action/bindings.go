// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

// bindings.go is the closed, compile-time binding vocabulary: five disjoint
// enumerations (Bool/Float/Vec2/Pose/Haptic), each laid out with Start/End
// sentinels per device region so membership checks are O(1) range tests,
// mirroring the AXR engine's AxrBoolInputActionEnum family this package is
// modeled on. Constants use explicit Start+N offsets rather than iota so the
// numbering survives insertions without renumbering every binding below it.

// BoolBinding is a boolean (pressed/released) input binding: mouse buttons,
// keyboard keys, or XR controller buttons.
type BoolBinding int

const (
	BoolUndefined BoolBinding = 0

	// ---- Mouse - reserved block of 16 ----
	boolMouseStart BoolBinding = 1

	MouseClickL         = boolMouseStart + 0
	MouseClickR         = boolMouseStart + 1
	MouseClickM         = boolMouseStart + 2
	MouseClickX1        = boolMouseStart + 3
	MouseClickX2        = boolMouseStart + 4
	MouseDoubleClickL   = boolMouseStart + 5
	MouseDoubleClickR   = boolMouseStart + 6
	MouseDoubleClickM   = boolMouseStart + 7
	MouseDoubleClickX1  = boolMouseStart + 8
	MouseDoubleClickX2  = boolMouseStart + 9

	boolMouseEnd = boolMouseStart + 15

	// ---- Keyboard - reserved block of 128 ----
	boolKeyboardStart = boolMouseEnd + 1

	KeyboardBackspace             = boolKeyboardStart + 0
	KeyboardTab                   = boolKeyboardStart + 1
	KeyboardEnter                 = boolKeyboardStart + 2
	KeyboardShift                 = boolKeyboardStart + 3
	KeyboardCtrl                  = boolKeyboardStart + 4
	KeyboardAlt                   = boolKeyboardStart + 5
	KeyboardPause                 = boolKeyboardStart + 6
	KeyboardCapsLock              = boolKeyboardStart + 7
	KeyboardEscape                = boolKeyboardStart + 8
	KeyboardSpace                 = boolKeyboardStart + 9
	KeyboardPageUp                = boolKeyboardStart + 10
	KeyboardPageDown              = boolKeyboardStart + 11
	KeyboardEnd                   = boolKeyboardStart + 12
	KeyboardHome                  = boolKeyboardStart + 13
	KeyboardLeftArrow             = boolKeyboardStart + 14
	KeyboardUpArrow               = boolKeyboardStart + 15
	KeyboardRightArrow            = boolKeyboardStart + 16
	KeyboardDownArrow             = boolKeyboardStart + 17
	KeyboardPrintScreen           = boolKeyboardStart + 18
	KeyboardInsert                = boolKeyboardStart + 19
	KeyboardDelete                = boolKeyboardStart + 20
	Keyboard0                     = boolKeyboardStart + 21
	Keyboard1                     = boolKeyboardStart + 22
	Keyboard2                     = boolKeyboardStart + 23
	Keyboard3                     = boolKeyboardStart + 24
	Keyboard4                     = boolKeyboardStart + 25
	Keyboard5                     = boolKeyboardStart + 26
	Keyboard6                     = boolKeyboardStart + 27
	Keyboard7                     = boolKeyboardStart + 28
	Keyboard8                     = boolKeyboardStart + 29
	Keyboard9                     = boolKeyboardStart + 30
	KeyboardA                     = boolKeyboardStart + 31
	KeyboardB                     = boolKeyboardStart + 32
	KeyboardC                     = boolKeyboardStart + 33
	KeyboardD                     = boolKeyboardStart + 34
	KeyboardE                     = boolKeyboardStart + 35
	KeyboardF                     = boolKeyboardStart + 36
	KeyboardG                     = boolKeyboardStart + 37
	KeyboardH                     = boolKeyboardStart + 38
	KeyboardI                     = boolKeyboardStart + 39
	KeyboardJ                     = boolKeyboardStart + 40
	KeyboardK                     = boolKeyboardStart + 41
	KeyboardL                     = boolKeyboardStart + 42
	KeyboardM                     = boolKeyboardStart + 43
	KeyboardN                     = boolKeyboardStart + 44
	KeyboardO                     = boolKeyboardStart + 45
	KeyboardP                     = boolKeyboardStart + 46
	KeyboardQ                     = boolKeyboardStart + 47
	KeyboardR                     = boolKeyboardStart + 48
	KeyboardS                     = boolKeyboardStart + 49
	KeyboardT                     = boolKeyboardStart + 50
	KeyboardU                     = boolKeyboardStart + 51
	KeyboardV                     = boolKeyboardStart + 52
	KeyboardW                     = boolKeyboardStart + 53
	KeyboardX                     = boolKeyboardStart + 54
	KeyboardY                     = boolKeyboardStart + 55
	KeyboardZ                     = boolKeyboardStart + 56
	KeyboardWinL                  = boolKeyboardStart + 57
	KeyboardWinR                  = boolKeyboardStart + 58
	KeyboardNumPad0               = boolKeyboardStart + 59
	KeyboardNumPad1               = boolKeyboardStart + 60
	KeyboardNumPad2               = boolKeyboardStart + 61
	KeyboardNumPad3               = boolKeyboardStart + 62
	KeyboardNumPad4               = boolKeyboardStart + 63
	KeyboardNumPad5               = boolKeyboardStart + 64
	KeyboardNumPad6               = boolKeyboardStart + 65
	KeyboardNumPad7               = boolKeyboardStart + 66
	KeyboardNumPad8               = boolKeyboardStart + 67
	KeyboardNumPad9               = boolKeyboardStart + 68
	KeyboardF1                    = boolKeyboardStart + 69
	KeyboardF2                    = boolKeyboardStart + 70
	KeyboardF3                    = boolKeyboardStart + 71
	KeyboardF4                    = boolKeyboardStart + 72
	KeyboardF5                    = boolKeyboardStart + 73
	KeyboardF6                    = boolKeyboardStart + 74
	KeyboardF7                    = boolKeyboardStart + 75
	KeyboardF8                    = boolKeyboardStart + 76
	KeyboardF9                    = boolKeyboardStart + 77
	KeyboardF10                   = boolKeyboardStart + 78
	KeyboardF11                   = boolKeyboardStart + 79
	KeyboardF12                   = boolKeyboardStart + 80
	KeyboardNumLock               = boolKeyboardStart + 81
	KeyboardScrollLock            = boolKeyboardStart + 82
	KeyboardSubtract              = boolKeyboardStart + 83
	KeyboardDecimal                = boolKeyboardStart + 84
	KeyboardDivide                = boolKeyboardStart + 85
	KeyboardPlus                  = boolKeyboardStart + 86
	KeyboardComma                 = boolKeyboardStart + 87
	KeyboardMinus                 = boolKeyboardStart + 88
	KeyboardPeriod                = boolKeyboardStart + 89
	KeyboardOEM1SemicolonColon    = boolKeyboardStart + 90
	KeyboardOEM2SlashQuestion     = boolKeyboardStart + 91
	KeyboardOEM3BacktickTilde     = boolKeyboardStart + 92
	KeyboardOEM4OpenBracketBrace  = boolKeyboardStart + 93
	KeyboardOEM5BackslashPipe     = boolKeyboardStart + 94
	KeyboardOEM6CloseBracketBrace = boolKeyboardStart + 95
	KeyboardOEM7Quotes            = boolKeyboardStart + 96

	boolKeyboardEnd = boolKeyboardStart + 127

	// ---- XR - reserved block of 128 ----
	boolXrStart = boolKeyboardEnd + 1

	XrControllerLeftSelectClick       = boolXrStart + 0
	XrControllerRightSelectClick      = boolXrStart + 1
	XrControllerLeftMenuClick         = boolXrStart + 2
	XrControllerRightMenuClick        = boolXrStart + 3
	XrControllerLeftAClick            = boolXrStart + 4
	XrControllerRightAClick           = boolXrStart + 5
	XrControllerLeftATouch            = boolXrStart + 6
	XrControllerRightATouch           = boolXrStart + 7
	XrControllerLeftBClick            = boolXrStart + 8
	XrControllerRightBClick           = boolXrStart + 9
	XrControllerLeftBTouch            = boolXrStart + 10
	XrControllerRightBTouch           = boolXrStart + 11
	XrControllerLeftTriggerClick      = boolXrStart + 12
	XrControllerRightTriggerClick     = boolXrStart + 13
	XrControllerLeftTriggerTouch      = boolXrStart + 14
	XrControllerRightTriggerTouch     = boolXrStart + 15
	XrControllerLeftThumbstickClick   = boolXrStart + 16
	XrControllerRightThumbstickClick  = boolXrStart + 17
	XrControllerLeftThumbstickTouch   = boolXrStart + 18
	XrControllerRightThumbstickTouch  = boolXrStart + 19
	XrControllerLeftTrackpadTouch     = boolXrStart + 20
	XrControllerRightTrackpadTouch    = boolXrStart + 21

	boolXrEnd = boolXrStart + 127
)

// IsXrBool reports whether b falls in the XR controller device region.
func IsXrBool(b BoolBinding) bool { return b >= boolXrStart && b <= boolXrEnd }

// IsMouseBool reports whether b falls in the mouse device region.
func IsMouseBool(b BoolBinding) bool { return b >= boolMouseStart && b <= boolMouseEnd }

// IsKeyboardBool reports whether b falls in the keyboard device region.
func IsKeyboardBool(b BoolBinding) bool { return b >= boolKeyboardStart && b <= boolKeyboardEnd }

// FloatBinding is an analog input binding in [0,1] or [-1,1]: the mouse
// wheel, or an XR controller analog axis.
type FloatBinding int

const (
	FloatUndefined FloatBinding = 0

	floatMouseStart FloatBinding = 1

	MouseWheel           = floatMouseStart + 0
	MouseWheelHorizontal = floatMouseStart + 1

	floatMouseEnd = floatMouseStart + 3

	floatXrStart = floatMouseEnd + 1

	XrControllerLeftSqueezeValue   = floatXrStart + 0
	XrControllerRightSqueezeValue  = floatXrStart + 1
	XrControllerLeftSqueezeForce   = floatXrStart + 2
	XrControllerRightSqueezeForce  = floatXrStart + 3
	XrControllerLeftTriggerValue   = floatXrStart + 4
	XrControllerRightTriggerValue  = floatXrStart + 5
	XrControllerLeftThumbstickX    = floatXrStart + 6
	XrControllerRightThumbstickX   = floatXrStart + 7
	XrControllerLeftThumbstickY    = floatXrStart + 8
	XrControllerRightThumbstickY   = floatXrStart + 9
	XrControllerLeftTrackpadX      = floatXrStart + 10
	XrControllerRightTrackpadX     = floatXrStart + 11
	XrControllerLeftTrackpadY      = floatXrStart + 12
	XrControllerRightTrackpadY     = floatXrStart + 13
	XrControllerLeftTrackpadForce  = floatXrStart + 14
	XrControllerRightTrackpadForce = floatXrStart + 15

	floatXrEnd = floatXrStart + 127
)

// IsXrFloat reports whether f falls in the XR controller device region.
func IsXrFloat(f FloatBinding) bool { return f >= floatXrStart && f <= floatXrEnd }

// Vec2Binding is a two-component input binding: mouse movement/position, or
// an XR thumbstick/trackpad.
type Vec2Binding int

const (
	Vec2Undefined Vec2Binding = 0

	vec2MouseStart Vec2Binding = 1

	MouseMoved    = vec2MouseStart + 0
	MousePosition = vec2MouseStart + 1

	vec2MouseEnd = vec2MouseStart + 3

	vec2XrStart = vec2MouseEnd + 1

	XrControllerLeftThumbstick  = vec2XrStart + 0
	XrControllerRightThumbstick = vec2XrStart + 1
	XrControllerLeftTrackpad    = vec2XrStart + 2
	XrControllerRightTrackpad   = vec2XrStart + 3

	vec2XrEnd = vec2XrStart + 127
)

// IsXrVec2 reports whether v falls in the XR controller device region.
func IsXrVec2(v Vec2Binding) bool { return v >= vec2XrStart && v <= vec2XrEnd }

// PoseBinding is a rigid-body-transform input binding: the HMD, or an XR
// controller grip/aim pose.
type PoseBinding int

const (
	PoseUndefined PoseBinding = 0

	poseXrStart PoseBinding = 1

	// PoseXrHMD resolves against the XR view/local space rather than an
	// action space; see ActionSystem's per-frame XR sync. The original AXR
	// header left this as a TODO with no enum value - both ioActionSystem
	// and xrSystem headers treat it as first class, so it's included here.
	PoseXrHMD             = poseXrStart + 0
	XrControllerLeftGrip  = poseXrStart + 1
	XrControllerRightGrip = poseXrStart + 2
	XrControllerLeftAim   = poseXrStart + 3
	XrControllerRightAim  = poseXrStart + 4

	poseXrEnd = poseXrStart + 127
)

// IsXrPose reports whether p falls in the XR device region. PoseXrHMD
// counts: it's XR-visible even though it resolves against a different
// reference space than the per-action spaces used by grip/aim.
func IsXrPose(p PoseBinding) bool { return p >= poseXrStart && p <= poseXrEnd }

// HapticBinding is a haptic output binding: an XR controller, left or right.
type HapticBinding int

const (
	HapticUndefined HapticBinding = 0

	hapticXrStart HapticBinding = 1

	HapticXrControllerLeft  = hapticXrStart + 0
	HapticXrControllerRight = hapticXrStart + 1

	hapticXrEnd = hapticXrStart + 127
)

// IsXrHaptic reports whether h falls in the XR device region. All haptic
// bindings are XR bindings; the predicate exists for symmetry with the
// other four binding kinds.
func IsXrHaptic(h HapticBinding) bool { return h >= hapticXrStart && h <= hapticXrEnd }
