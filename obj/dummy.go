package obj

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/dronesim/component"
	"github.com/milk9111/dronesim/fsm"
	"github.com/milk9111/dronesim/physics"
	"github.com/milk9111/dronesim/prefabs"
)

const (
	StateDummyIdle fsm.StateID = "idle"
	StateDummyDead fsm.StateID = "dead"
)

// Dummy is a training target. It stands still, takes hits and drops out of
// the collision world once its health runs out.
type Dummy struct {
	component.DamageReceiver

	Body      physics.Kinematic
	Movement  *component.Movement
	Hurtboxes []*component.Hurtbox

	States *fsm.Manager[*Dummy]
}

func NewDummy(spec *prefabs.DummySpec, body physics.Kinematic) *Dummy {
	d := &Dummy{
		Body:     body,
		Movement: component.NewMovement(body, 0),
	}
	d.DamageReceiver = component.DamageReceiver{
		ID:        body.ID(),
		Health:    component.NewHealth(spec.Health),
		Equipment: component.NewEquipment(),
	}
	d.States = fsm.NewManager(d, "dummy").
		Register(StateDummyIdle, func() fsm.State[*Dummy] { return &dummyIdleState{} }).
		Register(StateDummyDead, func() fsm.State[*Dummy] { return &dummyDeadState{} })
	d.States.TransitionTo(StateDummyIdle)
	return d
}

func (d *Dummy) PhysicsProcess(delta float64) {
	d.States.Update(delta)
}

type collisionToggler interface {
	SetCollisionEnabled(enabled bool)
}

type dummyIdleState struct {
	fsm.Base[*Dummy]
}

func (dummyIdleState) PreUpdate(d *Dummy) {
	if !d.Health.IsAlive() {
		d.States.TransitionTo(StateDummyDead)
	}
}

func (dummyIdleState) Update(d *Dummy, delta float64) {
	d.Movement.Update(delta, mgl64.Vec3{})
}

type dummyDeadState struct {
	fsm.Base[*Dummy]
}

func (dummyDeadState) Enter(d *Dummy) {
	if c, ok := d.Body.(collisionToggler); ok {
		c.SetCollisionEnabled(false)
	}
	for _, h := range d.Hurtboxes {
		h.SetEnabled(false)
	}
}
