package obj

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/dronesim/common"
	"github.com/milk9111/dronesim/fsm"
)

// Perception axis states.
const (
	StateNPCIdle   fsm.StateID = "idle"
	StateNPCChase  fsm.StateID = "chase"
	StateNPCSearch fsm.StateID = "search"
	StateNPCFall   fsm.StateID = "fall"
)

func newNPCStates(n *NPC) *fsm.Manager[*NPC] {
	return fsm.NewManager(n, "perception").
		Register(StateNPCIdle, func() fsm.State[*NPC] { return &npcIdleState{} }).
		Register(StateNPCChase, func() fsm.State[*NPC] { return &npcChaseState{} }).
		Register(StateNPCSearch, func() fsm.State[*NPC] { return &npcSearchState{} }).
		Register(StateNPCFall, func() fsm.State[*NPC] { return &npcFallState{} })
}

type npcIdleState struct {
	fsm.Base[*NPC]
}

func (npcIdleState) Enter(n *NPC) {
	n.SetAnimation("idle")
}

func (npcIdleState) PreUpdate(n *NPC) {
	if !n.Body.IsOnFloor() {
		n.States.TransitionTo(StateNPCFall)
		return
	}
	if n.PlayerInRange {
		n.States.TransitionTo(StateNPCChase)
		return
	}
	if _, ok := n.LastKnownPlayerPosition(); ok {
		n.States.TransitionTo(StateNPCSearch)
	}
}

func (npcIdleState) Update(n *NPC, delta float64) {
	n.Movement.Update(delta, mgl64.Vec3{})
}

type npcChaseState struct {
	fsm.Base[*NPC]
}

func (npcChaseState) Enter(n *NPC) {
	if p, ok := n.PlayerPosition(); ok {
		n.Nav.SetTargetPosition(p)
	}
	n.SetAnimation("run")
}

func (npcChaseState) PreUpdate(n *NPC) {
	if !n.Body.IsOnFloor() {
		n.States.TransitionTo(StateNPCFall)
		return
	}
	p, ok := n.PlayerPosition()
	if !ok {
		n.States.TransitionTo(StateNPCSearch)
		return
	}
	n.Nav.SetTargetPosition(p)
}

func (npcChaseState) Update(n *NPC, delta float64) {
	var dir, toPlayer mgl64.Vec3
	if p, ok := n.PlayerPosition(); ok {
		n.Nav.SetTargetPosition(p)
		toPlayer = p.Sub(n.Body.Position())
	}

	if toPlayer.Len() > n.StopDistance {
		if !n.Nav.IsNavigationFinished() {
			dir = common.Normalized(common.Flatten(n.Nav.NextPathPosition().Sub(n.Body.Position())))
		} else {
			dir = common.Normalized(common.Flatten(toPlayer))
		}
	}

	n.RotateToward(dir, delta)
	n.Movement.Update(delta, dir)
}

// npcSearchState walks to the last known player position, then sweeps its
// view left and right before giving up.
type npcSearchState struct {
	fsm.Base[*NPC]
	looking bool
	timer   float64
	baseYaw float64
}

func (s *npcSearchState) Enter(n *NPC) {
	s.looking = false
	s.timer = 0
	s.baseYaw = 0
	if p, ok := n.LastKnownPlayerPosition(); ok {
		n.Nav.SetTargetPosition(p)
	}
}

func (s *npcSearchState) PreUpdate(n *NPC) {
	if !n.Body.IsOnFloor() {
		n.States.TransitionTo(StateNPCFall)
		return
	}
	if _, ok := n.PlayerPosition(); ok {
		n.States.TransitionTo(StateNPCChase)
		return
	}
	if p, ok := n.LastKnownPlayerPosition(); ok && !s.looking {
		n.Nav.SetTargetPosition(p)
	}
}

func (s *npcSearchState) Update(n *NPC, delta float64) {
	var dir mgl64.Vec3

	if !s.looking && !n.Nav.IsNavigationFinished() {
		dir = common.Normalized(common.Flatten(n.Nav.NextPathPosition().Sub(n.Body.Position())))
		n.RotateToward(dir, delta)
		n.SetAnimation("run")
	} else {
		if !s.looking {
			s.looking = true
			s.baseYaw = n.Body.Yaw()
		}
		n.SetAnimation("idle")
		s.timer += delta

		var sweep float64
		if n.Sweep != nil {
			sweep = n.Sweep(s.timer)
		}
		n.RotateToward(common.RotateY(common.Back, s.baseYaw+sweep), delta)

		if s.timer >= n.SearchLookDuration {
			n.ClearLastKnownPosition()
			n.States.TransitionTo(StateNPCIdle)
		}
	}

	n.Movement.Update(delta, dir)
}

type npcFallState struct {
	fsm.Base[*NPC]
}

func (npcFallState) Enter(n *NPC) {
	n.SetAnimation("idle")
}

func (npcFallState) PreUpdate(n *NPC) {
	if !n.Body.IsOnFloor() {
		return
	}
	if _, ok := n.PlayerPosition(); ok {
		n.States.TransitionTo(StateNPCChase)
	} else if _, ok := n.LastKnownPlayerPosition(); ok {
		n.States.TransitionTo(StateNPCSearch)
	} else {
		n.States.TransitionTo(StateNPCIdle)
	}
}

func (npcFallState) Update(n *NPC, delta float64) {
	n.Movement.Update(delta, mgl64.Vec3{})
}
