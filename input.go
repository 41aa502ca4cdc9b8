package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/dronesim/obj"
)

const (
	// turnRate is radians per second for keys and a fully deflected stick.
	turnRate  = 2.5
	deadzone  = 0.3
	mouseTurn = 0.004
)

// Input polls keyboard, mouse and the first gamepad into drone controls.
type Input struct {
	tps float64

	lastCursorX int
	mouseLook   bool
}

func NewInput(tps int) *Input {
	if tps <= 0 {
		tps = 60
	}
	return &Input{tps: float64(tps)}
}

// Poll reads this frame's devices. Pressed fields use just-pressed edges so a
// held key fires once.
func (i *Input) Poll() obj.Input {
	var in obj.Input

	var moveX, moveY float64
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		moveY += 1
	}

	var turn float64
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		turn += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		turn -= 1
	}
	in.Turn = turn * turnRate / i.tps

	// Right mouse drag turns the drone.
	cx, _ := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if i.mouseLook {
			in.Turn -= float64(cx-i.lastCursorX) * mouseTurn
		}
		i.mouseLook = true
	} else {
		i.mouseLook = false
	}
	i.lastCursorX = cx

	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.CrouchHeld = ebiten.IsKeyPressed(ebiten.KeyC) || ebiten.IsKeyPressed(ebiten.KeyControlLeft)
	in.SprintHeld = ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	in.WalkTogglePressed = inpututil.IsKeyJustPressed(ebiten.KeyCapsLock)
	in.AttackPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyF)

	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]

		lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if lx*lx+ly*ly > deadzone*deadzone {
			moveX, moveY = lx, ly
		}
		rx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickHorizontal)
		if rx < -deadzone || rx > deadzone {
			in.Turn = -rx * turnRate / i.tps
		}

		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		in.CrouchHeld = in.CrouchHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightRight)
		in.SprintHeld = in.SprintHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftStick)
		in.WalkTogglePressed = in.WalkTogglePressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		in.AttackPressed = in.AttackPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	in.Move = mgl64.Vec2{moveX, moveY}
	return in
}
