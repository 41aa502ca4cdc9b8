package system

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/milk9111/dronesim/component"
)

// CombatLog is the world's shared combat event emitter. It logs every event
// and keeps running totals per target.
type CombatLog struct {
	emitter component.CombatEventEmitter
	logger  *slog.Logger

	Hits   int
	Deaths int
	Damage map[uuid.UUID]int
}

func NewCombatLog(logger *slog.Logger) *CombatLog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &CombatLog{logger: logger, Damage: make(map[uuid.UUID]int)}
	c.emitter.Subscribe(c.record)
	return c
}

// Emitter is handed to hitboxes and defenders.
func (c *CombatLog) Emitter() *component.CombatEventEmitter {
	if c == nil {
		return nil
	}
	return &c.emitter
}

// Subscribe adds another listener behind the log.
func (c *CombatLog) Subscribe(h component.CombatEventHandler) {
	if c == nil {
		return
	}
	c.emitter.Subscribe(h)
}

func (c *CombatLog) record(evt component.CombatEvent) {
	switch evt.Type {
	case component.EventHit:
		c.Hits++
		c.logger.Debug("system: hit", "attacker", evt.AttackerID, "target", evt.TargetID, "hurtbox", evt.HurtboxID, "multiplier", evt.Multiplier)
	case component.EventDamageApplied:
		c.Damage[evt.TargetID] += evt.Damage
		c.logger.Info("system: damage applied", "attacker", evt.AttackerID, "target", evt.TargetID, "damage", evt.Damage)
	case component.EventDeath:
		c.Deaths++
		c.logger.Info("system: target died", "attacker", evt.AttackerID, "target", evt.TargetID)
	}
}
