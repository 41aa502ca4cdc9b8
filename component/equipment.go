package component

// EquipmentSlot names where a wearable sits.
type EquipmentSlot int

const (
	SlotHead EquipmentSlot = iota
	SlotBody
	SlotLegs
	SlotFeet
)

func (s EquipmentSlot) String() string {
	switch s {
	case SlotHead:
		return "head"
	case SlotBody:
		return "body"
	case SlotLegs:
		return "legs"
	case SlotFeet:
		return "feet"
	}
	return "unknown"
}

// ParseEquipmentSlot maps a config name to an armor slot.
func ParseEquipmentSlot(s string) (EquipmentSlot, bool) {
	for slot := SlotHead; slot <= SlotFeet; slot++ {
		if slot.String() == s {
			return slot, true
		}
	}
	return 0, false
}

// Armor is a wearable that grants protection.
type Armor struct {
	Name       string
	Slot       EquipmentSlot
	Protection []ProtectionEffect
}

// GetProtection sums the armor's protection of type t.
func (a *Armor) GetProtection(t ProtectionType) int {
	if a == nil {
		return 0
	}
	total := 0
	for _, p := range a.Protection {
		if p.Type == t {
			total += p.Amount
		}
	}
	return total
}

// Equipment holds one armor piece per slot.
type Equipment struct {
	armor map[EquipmentSlot]*Armor
}

// NewEquipment creates empty equipment.
func NewEquipment() *Equipment {
	return &Equipment{armor: make(map[EquipmentSlot]*Armor)}
}

// EquipArmor puts a in its slot. It fails when the slot is taken.
func (e *Equipment) EquipArmor(a *Armor) bool {
	if e == nil || a == nil || a.Slot < SlotHead || a.Slot > SlotFeet {
		return false
	}
	if e.armor == nil {
		e.armor = make(map[EquipmentSlot]*Armor)
	}
	if _, ok := e.armor[a.Slot]; ok {
		return false
	}
	e.armor[a.Slot] = a
	return true
}

// UnequipArmor empties slot and returns what was there.
func (e *Equipment) UnequipArmor(slot EquipmentSlot) *Armor {
	if e == nil {
		return nil
	}
	a := e.armor[slot]
	delete(e.armor, slot)
	return a
}

// Armor returns the piece in slot, if any.
func (e *Equipment) Armor(slot EquipmentSlot) *Armor {
	if e == nil {
		return nil
	}
	return e.armor[slot]
}

// TotalProtection sums protection of type t over every equipped piece.
func (e *Equipment) TotalProtection(t ProtectionType) int {
	if e == nil {
		return 0
	}
	total := 0
	for _, a := range e.armor {
		total += a.GetProtection(t)
	}
	return total
}
