package raylibsurface

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/phanxgames/pebble"
)

// OpenGL blend factors and equation used with rl.BlendCustom.
const (
	glZero             = 0
	glOne              = 1
	glOneMinusSrcColor = 0x0301
	glSrcAlpha         = 0x0302
	glOneMinusSrcAlpha = 0x0303
	glOneMinusDstAlpha = 0x0305
	glFuncAdd          = 0x8006
)

type blendState struct {
	mode     rl.BlendMode
	src, dst int32
}

// blendFor maps a pebble blend mode to a raylib blend mode, with GL factors
// when the mode is custom. ok is false for source-over, which needs no
// change.
func blendFor(b pebble.BlendMode) (factors blendState, ok bool) {
	switch b {
	case pebble.BlendAdd:
		return blendState{mode: rl.BlendAdditive}, true
	case pebble.BlendMultiply:
		return blendState{mode: rl.BlendMultiplied}, true
	case pebble.BlendScreen:
		return blendState{mode: rl.BlendCustom, src: glOne, dst: glOneMinusSrcColor}, true
	case pebble.BlendErase:
		return blendState{mode: rl.BlendCustom, src: glZero, dst: glOneMinusSrcAlpha}, true
	case pebble.BlendMask:
		return blendState{mode: rl.BlendCustom, src: glZero, dst: glSrcAlpha}, true
	case pebble.BlendBelow:
		return blendState{mode: rl.BlendCustom, src: glOneMinusDstAlpha, dst: glOne}, true
	case pebble.BlendCopy:
		return blendState{mode: rl.BlendCustom, src: glOne, dst: glZero}, true
	}
	return blendState{}, false
}

// applyBlend begins the blend mode for b. It reports whether EndBlendMode
// must be called.
func applyBlend(b pebble.BlendMode) bool {
	factors, ok := blendFor(b)
	if !ok {
		return false
	}
	if factors.mode == rl.BlendCustom {
		rl.SetBlendFactors(factors.src, factors.dst, glFuncAdd)
	}
	rl.BeginBlendMode(factors.mode)
	return true
}
