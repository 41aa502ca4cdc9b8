package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/milk9111/dronesim/common"
	"github.com/milk9111/dronesim/component"
	"github.com/milk9111/dronesim/fsm"
	"github.com/milk9111/dronesim/physics"
	"github.com/milk9111/dronesim/prefabs"
)

// animNPC is the NPC's single animation state node.
const animNPC = "animations"

// Navigator follows a path toward a target on the NPC's behalf.
type Navigator interface {
	SetTargetPosition(p mgl64.Vec3)
	IsNavigationFinished() bool
	NextPathPosition() mgl64.Vec3
}

// Target is something the NPC can see.
type Target interface {
	ID() uuid.UUID
	Position() mgl64.Vec3
}

// NPC is an AI actor that watches for the player, chases it while it is in
// sight and searches its last known position after losing it.
type NPC struct {
	component.DamageReceiver

	Body      physics.Kinematic
	Query     physics.Query
	Nav       Navigator
	Anim      Animator
	Movement  *component.Movement
	Vision    *physics.Area
	Hurtboxes []*component.Hurtbox

	ChaseSpeed         float64
	TurnSpeed          float64
	VisionRange        float64
	VisionAngle        float64 // degrees, full cone
	EyeHeight          float64
	SightTargetHeight  float64
	StopDistance       float64
	SearchLookDuration float64
	SweepRate          float64
	SweepDegrees       float64
	Sweep              Sweep

	PlayerInRange bool

	States *fsm.Manager[*NPC]

	tracked     Target
	player      mgl64.Vec3
	hasPlayer   bool
	lastKnown   mgl64.Vec3
	hasLastSeen bool
	animation   string
}

func NewNPC(spec *prefabs.NPCSpec, body physics.Kinematic, query physics.Query, nav Navigator, anim Animator) *NPC {
	n := &NPC{
		Body:               body,
		Query:              query,
		Nav:                nav,
		Anim:               anim,
		Movement:           component.NewMovement(body, spec.ChaseSpeed),
		ChaseSpeed:         spec.ChaseSpeed,
		TurnSpeed:          spec.TurnSpeed,
		VisionRange:        spec.VisionRange,
		VisionAngle:        spec.VisionAngle,
		EyeHeight:          spec.EyeHeight,
		SightTargetHeight:  spec.SightTargetHeight,
		StopDistance:       spec.StopDistance,
		SearchLookDuration: spec.SearchLookDuration,
		SweepRate:          spec.SweepRate,
		SweepDegrees:       spec.SweepDegrees,
		Sweep:              SineSweep(spec.SweepRate, spec.SweepDegrees),
	}
	n.DamageReceiver = component.DamageReceiver{
		ID:        body.ID(),
		Health:    component.NewHealth(spec.Health),
		Equipment: component.NewEquipment(),
	}
	n.States = newNPCStates(n)
	n.States.TransitionTo(StateNPCIdle)
	return n
}

// AttachVision makes area the NPC's broad-phase vision volume. Player bodies
// entering it become the sight candidate.
func (n *NPC) AttachVision(area *physics.Area) {
	if area == nil {
		return
	}
	n.Vision = area
	area.Mask |= physics.LayerBody
	area.Monitoring = true
	area.SetShape(physics.AreaShape{Radius: n.VisionRange})
	area.OnBodyEntered = func(b *physics.CharacterBody) {
		if b.Kind() == physics.KindPlayer {
			n.Track(b)
		}
	}
	area.OnBodyExited = func(b *physics.CharacterBody) {
		if b.Kind() == physics.KindPlayer {
			n.Untrack(b)
		}
	}
}

// Track sets the sight candidate.
func (n *NPC) Track(t Target) {
	n.tracked = t
}

// Untrack clears the sight candidate if it is t.
func (n *NPC) Untrack(t Target) {
	if n.tracked != nil && n.tracked.ID() == t.ID() {
		n.tracked = nil
	}
}

// PhysicsProcess refreshes perception, then runs the state machine.
func (n *NPC) PhysicsProcess(delta float64) {
	if pos, ok := n.CanSeePlayer(); ok {
		n.PlayerInRange = true
		n.player, n.hasPlayer = pos, true
		n.lastKnown, n.hasLastSeen = pos, true
	} else {
		n.PlayerInRange = false
		n.hasPlayer = false
	}
	n.States.Update(delta)
}

// CanSeePlayer runs the narrow-phase sight check against the tracked
// candidate: a horizontal cone test, then a line-of-sight ray.
func (n *NPC) CanSeePlayer() (mgl64.Vec3, bool) {
	if n.tracked == nil {
		return mgl64.Vec3{}, false
	}
	eye := n.Body.Position().Add(common.Up.Mul(n.EyeHeight))
	target := n.tracked.Position()

	forward := common.Normalized(common.Flatten(n.Facing()))
	toPlayer := common.Normalized(common.Flatten(target.Sub(eye)))
	angle := mgl64.RadToDeg(common.AngleBetween(forward, toPlayer))
	if angle > n.VisionAngle/2 {
		return mgl64.Vec3{}, false
	}

	if n.Query != nil {
		hit, ok := n.Query.IntersectRay(eye, target.Add(common.Up.Mul(n.SightTargetHeight)), n.Body.ID())
		if ok && hit.Collider != n.tracked.ID() {
			return mgl64.Vec3{}, false
		}
	}
	return target, true
}

// Facing is the horizontal direction the NPC looks along.
func (n *NPC) Facing() mgl64.Vec3 {
	return common.RotateY(common.Back, n.Body.Yaw())
}

// PlayerPosition is where the player was seen this tick.
func (n *NPC) PlayerPosition() (mgl64.Vec3, bool) {
	return n.player, n.hasPlayer
}

// LastKnownPlayerPosition survives losing sight until a search gives up.
func (n *NPC) LastKnownPlayerPosition() (mgl64.Vec3, bool) {
	return n.lastKnown, n.hasLastSeen
}

func (n *NPC) ClearLastKnownPosition() {
	n.hasLastSeen = false
}

// RotateToward turns the NPC toward dir at TurnSpeed. A direction with no
// horizontal component leaves the yaw alone.
func (n *NPC) RotateToward(dir mgl64.Vec3, delta float64) {
	if dir.X() == 0 && dir.Z() == 0 {
		return
	}
	target := math.Atan2(dir.X(), dir.Z())
	n.Body.SetYaw(common.LerpAngle(n.Body.Yaw(), target, n.TurnSpeed*delta))
}

// SetAnimation requests name unless it is already playing.
func (n *NPC) SetAnimation(name string) {
	if n.animation == name || n.Anim == nil {
		return
	}
	n.animation = name
	n.Anim.RequestTransition(animNPC, name)
}

// Animation returns the last animation requested.
func (n *NPC) Animation() string {
	return n.animation
}
