package obj

import (
	"fmt"

	"github.com/milk9111/dronesim/component"
	"github.com/milk9111/dronesim/physics"
	"github.com/milk9111/dronesim/prefabs"
)

// BuildHurtboxes creates one hurtbox per spec, attached to body and credited
// to owner.
func BuildHurtboxes(world *physics.World, body *physics.CharacterBody, owner component.Damageable, specs []prefabs.HurtboxSpec) []*component.Hurtbox {
	out := make([]*component.Hurtbox, 0, len(specs))
	for _, s := range specs {
		area := world.AddArea(physics.AreaShape{Radius: s.Radius, HalfExtents: s.HalfExtents.Vec3()}, physics.LayerHurtbox, 0)
		area.Attach(body, s.Offset.Vec3())
		out = append(out, component.NewHurtbox(area, s.Name, s.Multiplier, owner))
	}
	return out
}

// BuildWeapon spawns a weapon's hitbox in front of body.
func BuildWeapon(world *physics.World, body *physics.CharacterBody, spec prefabs.WeaponSpec, emitter *component.CombatEventEmitter) (*component.WeaponScene, error) {
	damageType, err := component.ParseDamageType(spec.DamageType)
	if err != nil {
		return nil, fmt.Errorf("obj: weapon %s: %w", spec.ID, err)
	}
	weapon := &component.Weapon{
		Name:        spec.Name,
		Description: spec.Description,
		Effect: &component.DamageEffect{
			Name:   spec.Effect,
			Amount: spec.Damage,
			Type:   damageType,
		},
	}

	area := world.AddArea(physics.AreaShape{Radius: spec.Hitbox.Radius}, physics.LayerHitbox, physics.LayerHurtbox)
	area.Attach(body, spec.Hitbox.Offset.Vec3())
	hitbox := component.NewHitbox(area)
	hitbox.Emitter = emitter
	return component.NewWeaponScene(weapon, hitbox), nil
}

// BuildArmor converts an armor spec into an equippable piece.
func BuildArmor(spec prefabs.ArmorSpec) (*component.Armor, error) {
	slot, ok := component.ParseEquipmentSlot(spec.Slot)
	if !ok {
		return nil, fmt.Errorf("obj: armor %s: unknown slot %q", spec.ID, spec.Slot)
	}
	armor := &component.Armor{Name: spec.Name, Slot: slot}
	for _, p := range spec.Protection {
		pt, err := component.ParseProtectionType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("obj: armor %s: %w", spec.ID, err)
		}
		armor.Protection = append(armor.Protection, component.ProtectionEffect{Name: p.Name, Amount: p.Amount, Type: pt})
	}
	return armor, nil
}

// EquipArmor looks up each id in items and equips it.
func EquipArmor(eq *component.Equipment, items *prefabs.ItemsSpec, ids []string) error {
	for _, id := range ids {
		spec, ok := items.ArmorPiece(id)
		if !ok {
			return fmt.Errorf("obj: unknown armor %q", id)
		}
		armor, err := BuildArmor(spec)
		if err != nil {
			return err
		}
		if !eq.EquipArmor(armor) {
			return fmt.Errorf("obj: armor %q: slot %s already taken", id, armor.Slot)
		}
	}
	return nil
}
