package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dronesim/physics"
)

type protectionStub int

func (p protectionStub) TotalProtection(ProtectionType) int { return int(p) }

func TestResolveDamage(t *testing.T) {
	cases := []struct {
		name       string
		amount     int
		damageType DamageType
		multiplier float64
		protection int
		want       int
	}{
		{"headshot_with_armor", 10, DamagePhysical, 1.5, 4, 11},
		{"body_no_armor", 10, DamagePhysical, 1, 0, 10},
		{"piercing_ignores_armor", 10, DamagePiercing, 1.5, 4, 15},
		{"armor_exceeds_damage", 3, DamagePhysical, 1, 10, 0},
		{"rounds_down", 5, DamagePhysical, 1.25, 0, 6},
		{"rounds_half_up", 5, DamagePhysical, 1.3, 0, 7},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			effect := DamageEffect{Amount: c.amount, Type: c.damageType}
			got := ResolveDamage(effect, c.multiplier, protectionStub(c.protection))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestResolveDamageWithoutProtection(t *testing.T) {
	assert.Equal(t, 10, ResolveDamage(DamageEffect{Amount: 10}, 1, nil))
}

type hitRig struct {
	world    *physics.World
	hitbox   *Hitbox
	hurtbox  *Hurtbox
	wielder  *DamageReceiver
	defender *DamageReceiver
	events   []CombatEvent
}

func newHitRig(t *testing.T, effect *DamageEffect, multiplier float64, protection int) *hitRig {
	t.Helper()
	r := &hitRig{world: physics.NewWorld()}
	emitter := &CombatEventEmitter{}
	emitter.Subscribe(func(evt CombatEvent) { r.events = append(r.events, evt) })

	r.wielder = &DamageReceiver{ID: uuid.New(), Health: NewHealth(100), Emitter: emitter}
	r.defender = &DamageReceiver{ID: uuid.New(), Health: NewHealth(100), Equipment: NewEquipment(), Emitter: emitter}
	if protection > 0 {
		require.True(t, r.defender.Equipment.EquipArmor(&Armor{
			Name:       "Padded Vest",
			Slot:       SlotBody,
			Protection: []ProtectionEffect{{Name: "padding", Amount: protection, Type: ProtectionPhysical}},
		}))
	}

	hurtArea := r.world.AddArea(physics.AreaShape{HalfExtents: mgl64.Vec3{0.5, 1, 0.5}}, 0, 0)
	hurtArea.SetPosition(mgl64.Vec3{0, 1, 0})
	r.hurtbox = NewHurtbox(hurtArea, "head", multiplier, r.defender)

	hitArea := r.world.AddArea(physics.AreaShape{Radius: 0.4}, 0, 0)
	hitArea.SetPosition(mgl64.Vec3{0, 1.5, 0.3})
	r.hitbox = NewHitbox(hitArea)
	r.hitbox.Emitter = emitter
	r.hitbox.Initialize(&Weapon{Name: "Basic Club", Effect: effect}, r.wielder, r.wielder.ID)
	return r
}

func club() *DamageEffect {
	return &DamageEffect{Name: "Blunt Damage", Amount: 10, Type: DamagePhysical}
}

func TestHitboxCreditsOncePerActivation(t *testing.T) {
	r := newHitRig(t, club(), 1.5, 4)

	r.hitbox.Enable()
	for i := 0; i < 5; i++ {
		r.world.FlushOverlaps()
	}
	assert.Equal(t, 89, r.defender.Health.Current)
	assert.Equal(t, 1, r.hitbox.HitCount())

	r.hitbox.Disable()
	r.world.FlushOverlaps()
	assert.Equal(t, 89, r.defender.Health.Current, "no credit while disabled")

	r.hitbox.Enable()
	assert.Equal(t, 0, r.hitbox.HitCount(), "enable clears the hit set")
	r.world.FlushOverlaps()
	assert.Equal(t, 78, r.defender.Health.Current)
}

func TestHitboxEmitsEvents(t *testing.T) {
	r := newHitRig(t, club(), 1.5, 4)
	r.defender.Health.Current = 11

	r.hitbox.Enable()
	r.world.FlushOverlaps()

	require.Len(t, r.events, 3)
	assert.Equal(t, EventHit, r.events[0].Type)
	assert.Equal(t, r.wielder.ID, r.events[0].AttackerID)
	assert.Equal(t, r.defender.ID, r.events[0].TargetID)
	assert.Equal(t, r.hurtbox.ID(), r.events[0].HurtboxID)
	assert.Equal(t, EventDamageApplied, r.events[1].Type)
	assert.Equal(t, 11, r.events[1].Damage)
	assert.Equal(t, r.wielder.ID, r.events[1].AttackerID)
	assert.Equal(t, EventDeath, r.events[2].Type)
	assert.False(t, r.defender.Health.IsAlive())
}

func TestHitboxIgnoresWielder(t *testing.T) {
	r := newHitRig(t, club(), 1, 0)
	r.hurtbox.Owner = r.wielder

	r.hitbox.Enable()
	r.world.FlushOverlaps()

	assert.Equal(t, 100, r.wielder.Health.Current)
	assert.Equal(t, 0, r.hitbox.HitCount())
}

func TestHitboxIgnoresUnusableInput(t *testing.T) {
	cases := []struct {
		name  string
		setup func(r *hitRig) *physics.Area
	}{
		{"disabled", func(r *hitRig) *physics.Area {
			r.hitbox.Disable()
			return r.hurtbox.Area()
		}},
		{"not_a_hurtbox", func(r *hitRig) *physics.Area {
			other := r.world.AddArea(physics.AreaShape{Radius: 1}, physics.LayerHurtbox, 0)
			other.Owner = "scenery"
			return other
		}},
		{"ownerless_zone", func(r *hitRig) *physics.Area {
			r.hurtbox.Owner = nil
			return r.hurtbox.Area()
		}},
		{"weapon_without_damage", func(r *hitRig) *physics.Area {
			r.hitbox.Initialize(&Weapon{Name: "Stick"}, r.wielder, r.wielder.ID)
			return r.hurtbox.Area()
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newHitRig(t, club(), 1, 0)
			r.hitbox.Enable()
			area := c.setup(r)

			r.hitbox.OnAreaEntered(area)

			assert.Equal(t, 100, r.defender.Health.Current)
			assert.Equal(t, 0, r.hitbox.HitCount())
			assert.Empty(t, r.events)
		})
	}
}

func TestDeadDefenderIgnoresDamage(t *testing.T) {
	var events []CombatEvent
	d := &DamageReceiver{
		ID:      uuid.New(),
		Health:  NewHealth(50),
		Emitter: &CombatEventEmitter{Handlers: []CombatEventHandler{func(e CombatEvent) { events = append(events, e) }}},
	}
	d.Health.Current = 0

	d.ReceiveDamage(DamageEffect{Amount: 10}, 1)

	assert.Equal(t, 0, d.Health.Current)
	assert.Empty(t, events)
}

func TestDamageFloorLeavesHealthUntouched(t *testing.T) {
	r := newHitRig(t, club(), 1, 40)

	r.hitbox.Enable()
	r.world.FlushOverlaps()

	assert.Equal(t, 100, r.defender.Health.Current)
	require.Len(t, r.events, 2)
	assert.Equal(t, 0, r.events[1].Damage)
}

func TestWeaponSceneWithoutHitbox(t *testing.T) {
	scene := NewWeaponScene(&Weapon{Name: "Basic Club", Effect: club()}, nil)
	assert.NotPanics(t, func() {
		scene.InitializeWeapon(nil, uuid.Nil)
		scene.EnableHitbox()
		scene.DisableHitbox()
	})
}
