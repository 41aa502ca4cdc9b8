package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/dronesim/common"
	"github.com/milk9111/dronesim/component"
	"github.com/milk9111/dronesim/obj"
	"github.com/milk9111/dronesim/physics"
	"github.com/milk9111/dronesim/system"
)

const (
	defaultScale = 16.0
	minScale     = 4.0
	maxScale     = 64.0
)

// View draws the arena from above: world X to the right, world Z down.
type View struct {
	scale float64
}

func NewView() *View {
	return &View{scale: defaultScale}
}

// ZoomBy applies a mouse-wheel step.
func (v *View) ZoomBy(step float64) {
	if step == 0 {
		return
	}
	v.scale = math.Max(minScale, math.Min(maxScale, v.scale*math.Pow(1.1, step)))
}

func (v *View) toScreen(p mgl64.Vec3) (float32, float32) {
	return float32(baseWidth/2 + p.X()*v.scale), float32(baseHeight/2 + p.Z()*v.scale)
}

func (v *View) Draw(screen *ebiten.Image, w *system.World) {
	screen.Fill(colornames.Black)
	if w == nil || w.Specs == nil {
		return
	}

	for _, b := range w.Specs.Arena.Boxes {
		x0, y0 := v.toScreen(b.Min.Vec3())
		x1, y1 := v.toScreen(b.Max.Vec3())
		var clr color.Color = colornames.Slategray
		if b.Color != nil {
			clr = b.Color
		}
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, clr, false)
		if !b.Floor {
			vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Lightgray, false)
		}
	}

	for _, d := range w.Dummies {
		clr := colornames.Khaki
		if d.States.Current() == obj.StateDummyDead {
			clr = colornames.Dimgray
		}
		v.drawBody(screen, d.Body, clr)
		v.drawHurtboxes(screen, d.Hurtboxes)
	}

	for _, n := range w.NPCs {
		v.drawVision(screen, n)
		v.drawPath(screen, n)
		v.drawBody(screen, n.Body, colornames.Orange)
		v.drawHurtboxes(screen, n.Hurtboxes)
	}

	v.drawBody(screen, w.DroneBody, colornames.Crimson)
	if w.Drone.Weapon != nil && w.Drone.Weapon.Hitbox.Enabled() {
		area := w.Drone.Weapon.Hitbox.Area()
		x, y := v.toScreen(area.Position())
		vector.StrokeCircle(screen, x, y, float32(area.Shape().Radius*v.scale), 2, colornames.Yellow, true)
	}
}

func (v *View) drawBody(screen *ebiten.Image, body *physics.CharacterBody, clr color.Color) {
	if body == nil {
		return
	}
	x, y := v.toScreen(body.Position())
	r := float32(body.Shape().Radius * v.scale)
	if body.CollisionEnabled() {
		vector.FillCircle(screen, x, y, r, clr, true)
	} else {
		vector.StrokeCircle(screen, x, y, r, 1, clr, true)
	}

	facing := common.RotateY(common.Forward, body.Yaw())
	if body.Kind() == physics.KindNPC {
		facing = common.RotateY(common.Back, body.Yaw())
	}
	fx, fy := v.toScreen(body.Position().Add(facing.Mul(body.Shape().Radius * 1.6)))
	vector.StrokeLine(screen, x, y, fx, fy, 2, colornames.White, true)
}

// drawHurtboxes outlines the zones weapons can still detect.
func (v *View) drawHurtboxes(screen *ebiten.Image, zones []*component.Hurtbox) {
	for _, h := range zones {
		area := h.Area()
		if area == nil || area.Disabled() {
			continue
		}
		x, y := v.toScreen(area.Position())
		shape := area.Shape()
		if shape.Radius > 0 {
			vector.StrokeCircle(screen, x, y, float32(shape.Radius*v.scale), 1, colornames.Mediumpurple, true)
			continue
		}
		w, d := float32(shape.HalfExtents.X()*v.scale), float32(shape.HalfExtents.Z()*v.scale)
		vector.StrokeRect(screen, x-w, y-d, 2*w, 2*d, 1, colornames.Mediumpurple, false)
	}
}

func (v *View) drawVision(screen *ebiten.Image, n *system.NPCActor) {
	pos := n.Body.Position()
	half := mgl64.DegToRad(n.VisionAngle / 2)
	clr := colornames.Darkolivegreen
	if n.PlayerInRange {
		clr = colornames.Firebrick
	}
	x, y := v.toScreen(pos)
	for _, a := range []float64{-half, half} {
		edge := common.RotateY(common.Back, n.Body.Yaw()+a).Mul(n.VisionRange)
		ex, ey := v.toScreen(pos.Add(edge))
		vector.StrokeLine(screen, x, y, ex, ey, 1, clr, true)
	}
	if last, ok := n.LastKnownPlayerPosition(); ok && !n.PlayerInRange {
		lx, ly := v.toScreen(last)
		vector.StrokeCircle(screen, lx, ly, 4, 1, colornames.Gold, true)
	}
}

func (v *View) drawPath(screen *ebiten.Image, n *system.NPCActor) {
	path := n.Agent.Path()
	if len(path) == 0 {
		return
	}
	px, py := v.toScreen(n.Body.Position())
	for _, p := range path {
		x, y := v.toScreen(p)
		vector.StrokeLine(screen, px, py, x, y, 1, colornames.Cornflowerblue, false)
		px, py = x, y
	}
}

// Status is a one-screen summary of every actor's states.
func (v *View) Status(w *system.World) string {
	if w == nil || w.Drone == nil {
		return ""
	}
	var sb strings.Builder
	d := w.Drone
	fmt.Fprintf(&sb, "drone  loco=%s attack=%s hp=%d walkToggle=%v pos=%.2f\n",
		d.Locomotion.Current(), d.Attack.Current(), d.Health.Current, d.IsWalkToggled, w.DronePosition())
	for i, n := range w.NPCs {
		fmt.Fprintf(&sb, "npc%d   state=%s anim=%s hp=%d\n", i, n.States.Current(), n.Animation(), n.Health.Current)
	}
	for i, du := range w.Dummies {
		fmt.Fprintf(&sb, "dummy%d state=%s hp=%d/%d armor=%s\n", i, du.States.Current(), du.Health.Current, du.Health.Max, armorList(du.Equipment))
	}
	return sb.String()
}

// armorList names the equipped pieces in slot order.
func armorList(e *component.Equipment) string {
	var names []string
	for slot := component.SlotHead; slot <= component.SlotFeet; slot++ {
		if a := e.Armor(slot); a != nil {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
