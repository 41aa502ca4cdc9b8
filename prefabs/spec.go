package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/dronesim/tween"
)

// ErrInvalidSpec wraps every validation failure.
var ErrInvalidSpec = errors.New("invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type validator interface {
	Validate() error
}

func loadValidated[T any, P interface {
	*T
	validator
}](filename string) (*T, error) {
	spec, err := LoadSpec[T](filename)
	if err != nil {
		return nil, err
	}
	if err := P(&spec).Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidSpec}, args...)...)
}

type DroneSpec struct {
	Name            string        `yaml:"name"`
	WalkSpeed       float64       `yaml:"walk_speed"`
	RunSpeed        float64       `yaml:"run_speed"`
	JumpVelocity    float64       `yaml:"jump_velocity"`
	CrouchScale     float64       `yaml:"crouch_scale"`
	SneakSpeedScale float64       `yaml:"sneak_speed_scale"`
	VaultSpeed      float64       `yaml:"vault_speed"`
	VaultTrans      string        `yaml:"vault_transition"`
	VaultEase       string        `yaml:"vault_ease"`
	CameraHeight    float64       `yaml:"camera_height"`
	Collider        ColliderSpec  `yaml:"collider"`
	Health          int           `yaml:"health"`
	Hurtboxes       []HurtboxSpec `yaml:"hurtboxes"`
	Weapon          string        `yaml:"weapon"`
	Armor           []string      `yaml:"armor"`
}

func LoadDroneSpec() (*DroneSpec, error) {
	return loadValidated[DroneSpec]("drone.yaml")
}

// VaultTransitionName returns the configured vault curve, sine when unset.
func (s *DroneSpec) VaultTransitionName() string {
	if s.VaultTrans == "" {
		return tween.TransSine.String()
	}
	return s.VaultTrans
}

// VaultEaseName returns the configured vault easing, out_in when unset.
func (s *DroneSpec) VaultEaseName() string {
	if s.VaultEase == "" {
		return tween.EaseOutIn.String()
	}
	return s.VaultEase
}

func (s *DroneSpec) Validate() error {
	var errs []error
	if s.WalkSpeed <= 0 {
		errs = append(errs, invalid("walk_speed must be positive"))
	}
	if s.RunSpeed < s.WalkSpeed {
		errs = append(errs, invalid("run_speed %.2f below walk_speed %.2f", s.RunSpeed, s.WalkSpeed))
	}
	if s.JumpVelocity <= 0 {
		errs = append(errs, invalid("jump_velocity must be positive"))
	}
	if s.CrouchScale <= 0 || s.CrouchScale > 1 {
		errs = append(errs, invalid("crouch_scale must be in (0, 1]"))
	}
	if s.SneakSpeedScale <= 0 || s.SneakSpeedScale > 1 {
		errs = append(errs, invalid("sneak_speed_scale must be in (0, 1]"))
	}
	if s.VaultSpeed <= 0 {
		errs = append(errs, invalid("vault_speed must be positive"))
	}
	if _, ok := tween.ParseTrans(s.VaultTransitionName()); !ok {
		errs = append(errs, invalid("unknown vault_transition %q", s.VaultTrans))
	}
	if _, ok := tween.ParseEase(s.VaultEaseName()); !ok {
		errs = append(errs, invalid("unknown vault_ease %q", s.VaultEase))
	}
	if s.Health <= 0 {
		errs = append(errs, invalid("health must be positive"))
	}
	errs = append(errs, s.Collider.validate())
	errs = append(errs, validateHurtboxes(s.Hurtboxes))
	return errors.Join(errs...)
}

type NPCSpec struct {
	Name               string        `yaml:"name"`
	ChaseSpeed         float64       `yaml:"chase_speed"`
	TurnSpeed          float64       `yaml:"turn_speed"`
	VisionRange        float64       `yaml:"vision_range"`
	VisionAngle        float64       `yaml:"vision_angle"`
	EyeHeight          float64       `yaml:"eye_height"`
	SightTargetHeight  float64       `yaml:"sight_target_height"`
	StopDistance       float64       `yaml:"stop_distance"`
	SearchLookDuration float64       `yaml:"search_look_duration"`
	SweepRate          float64       `yaml:"sweep_rate"`
	SweepDegrees       float64       `yaml:"sweep_degrees"`
	SweepScript        string        `yaml:"sweep_script"`
	Collider           ColliderSpec  `yaml:"collider"`
	Health             int           `yaml:"health"`
	Hurtboxes          []HurtboxSpec `yaml:"hurtboxes"`
	Nav                NavSpec       `yaml:"nav"`
}

type NavSpec struct {
	CellSize              float64 `yaml:"cell_size"`
	PathDesiredDistance   float64 `yaml:"path_desired_distance"`
	TargetDesiredDistance float64 `yaml:"target_desired_distance"`
	MaxNodes              int     `yaml:"max_nodes"`
}

func LoadNPCSpec() (*NPCSpec, error) {
	return loadValidated[NPCSpec]("npc.yaml")
}

func (s *NPCSpec) Validate() error {
	var errs []error
	if s.ChaseSpeed <= 0 {
		errs = append(errs, invalid("chase_speed must be positive"))
	}
	if s.TurnSpeed <= 0 {
		errs = append(errs, invalid("turn_speed must be positive"))
	}
	if s.VisionRange <= 0 {
		errs = append(errs, invalid("vision_range must be positive"))
	}
	if s.VisionAngle <= 0 || s.VisionAngle > 360 {
		errs = append(errs, invalid("vision_angle must be in (0, 360]"))
	}
	if s.SearchLookDuration < 0 {
		errs = append(errs, invalid("search_look_duration must not be negative"))
	}
	if s.Health <= 0 {
		errs = append(errs, invalid("health must be positive"))
	}
	if s.Nav.CellSize <= 0 {
		errs = append(errs, invalid("nav.cell_size must be positive"))
	}
	if s.SweepScript != "" && !strings.HasSuffix(s.SweepScript, ".tengo") {
		errs = append(errs, invalid("sweep_script %q is not a .tengo file", s.SweepScript))
	}
	errs = append(errs, s.Collider.validate())
	errs = append(errs, validateHurtboxes(s.Hurtboxes))
	return errors.Join(errs...)
}

type DummySpec struct {
	Name      string        `yaml:"name"`
	Health    int           `yaml:"health"`
	Collider  ColliderSpec  `yaml:"collider"`
	Hurtboxes []HurtboxSpec `yaml:"hurtboxes"`
	Armor     []string      `yaml:"armor"`
}

func LoadDummySpec() (*DummySpec, error) {
	return loadValidated[DummySpec]("dummy.yaml")
}

func (s *DummySpec) Validate() error {
	var errs []error
	if s.Health <= 0 {
		errs = append(errs, invalid("health must be positive"))
	}
	errs = append(errs, s.Collider.validate())
	errs = append(errs, validateHurtboxes(s.Hurtboxes))
	return errors.Join(errs...)
}

// ItemsSpec is the item catalogue: weapons and armor by id.
type ItemsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
	Armor   []ArmorSpec  `yaml:"armor"`
}

type WeaponSpec struct {
	ID             string     `yaml:"id"`
	Name           string     `yaml:"name"`
	Description    string     `yaml:"description"`
	Effect         string     `yaml:"effect"`
	Damage         int        `yaml:"damage"`
	DamageType     string     `yaml:"damage_type"`
	AttackDuration float64    `yaml:"attack_duration"`
	Hitbox         HitboxSpec `yaml:"hitbox"`
}

type HitboxSpec struct {
	Offset Vec3Spec `yaml:"offset"`
	Radius float64  `yaml:"radius"`
}

type ArmorSpec struct {
	ID         string           `yaml:"id"`
	Name       string           `yaml:"name"`
	Slot       string           `yaml:"slot"`
	Protection []ProtectionSpec `yaml:"protection"`
}

type ProtectionSpec struct {
	Name   string `yaml:"name"`
	Amount int    `yaml:"amount"`
	Type   string `yaml:"type"`
}

func LoadItemsSpec() (*ItemsSpec, error) {
	return loadValidated[ItemsSpec]("items.yaml")
}

func (s *ItemsSpec) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for _, w := range s.Weapons {
		if w.ID == "" || seen[w.ID] {
			errs = append(errs, invalid("weapon id %q empty or duplicated", w.ID))
		}
		seen[w.ID] = true
		if w.Damage < 0 {
			errs = append(errs, invalid("weapon %s damage must not be negative", w.ID))
		}
		if w.AttackDuration <= 0 {
			errs = append(errs, invalid("weapon %s attack_duration must be positive", w.ID))
		}
		if w.Hitbox.Radius <= 0 {
			errs = append(errs, invalid("weapon %s hitbox radius must be positive", w.ID))
		}
	}
	for _, a := range s.Armor {
		if a.ID == "" || seen[a.ID] {
			errs = append(errs, invalid("armor id %q empty or duplicated", a.ID))
		}
		seen[a.ID] = true
		for _, p := range a.Protection {
			if p.Amount < 0 {
				errs = append(errs, invalid("armor %s protection must not be negative", a.ID))
			}
		}
	}
	return errors.Join(errs...)
}

// Weapon looks up a weapon by id.
func (s *ItemsSpec) Weapon(id string) (WeaponSpec, bool) {
	for _, w := range s.Weapons {
		if w.ID == id {
			return w, true
		}
	}
	return WeaponSpec{}, false
}

// ArmorPiece looks up an armor piece by id.
func (s *ItemsSpec) ArmorPiece(id string) (ArmorSpec, bool) {
	for _, a := range s.Armor {
		if a.ID == id {
			return a, true
		}
	}
	return ArmorSpec{}, false
}

type ArenaSpec struct {
	Name    string      `yaml:"name"`
	TickHz  int         `yaml:"tick_hz"`
	Gravity *Vec3Spec   `yaml:"gravity"`
	Bounds  BoundsSpec  `yaml:"bounds"`
	Boxes   []BoxSpec   `yaml:"boxes"`
	Spawns  []SpawnSpec `yaml:"spawns"`
}

type BoundsSpec struct {
	Min Vec3Spec `yaml:"min"`
	Max Vec3Spec `yaml:"max"`
}

type BoxSpec struct {
	Name  string     `yaml:"name"`
	Min   Vec3Spec   `yaml:"min"`
	Max   Vec3Spec   `yaml:"max"`
	Color *YAMLColor `yaml:"color"`
	// Floor boxes are walked on and are not navigation obstacles.
	Floor bool `yaml:"floor"`
}

type SpawnSpec struct {
	Kind      string         `yaml:"kind"`
	Position  Vec3Spec       `yaml:"position"`
	Yaw       float64        `yaml:"yaw"`
	Overrides map[string]any `yaml:"overrides"`
}

const (
	SpawnDrone = "drone"
	SpawnNPC   = "npc"
	SpawnDummy = "dummy"
)

func LoadArenaSpec(filename string) (*ArenaSpec, error) {
	if filename == "" {
		filename = "arena.yaml"
	}
	return loadValidated[ArenaSpec](filename)
}

func (s *ArenaSpec) Validate() error {
	var errs []error
	if s.TickHz <= 0 {
		errs = append(errs, invalid("tick_hz must be positive"))
	}
	for i := 0; i < 3; i++ {
		if s.Bounds.Min[i] >= s.Bounds.Max[i] {
			errs = append(errs, invalid("bounds min must be below max on every axis"))
			break
		}
	}
	drones := 0
	for _, sp := range s.Spawns {
		switch sp.Kind {
		case SpawnDrone:
			drones++
		case SpawnNPC, SpawnDummy:
		default:
			errs = append(errs, invalid("unknown spawn kind %q", sp.Kind))
		}
	}
	if drones != 1 {
		errs = append(errs, invalid("arena needs exactly one drone spawn, got %d", drones))
	}
	return errors.Join(errs...)
}

type ColliderSpec struct {
	Radius  float64 `yaml:"radius"`
	Height  float64 `yaml:"height"`
	OffsetY float64 `yaml:"offset_y"`
}

func (c ColliderSpec) validate() error {
	if c.Radius <= 0 || c.Height <= 0 {
		return invalid("collider radius and height must be positive")
	}
	if c.Height < 2*c.Radius {
		return invalid("collider height %.2f shorter than its caps", c.Height)
	}
	return nil
}

type HurtboxSpec struct {
	Name        string   `yaml:"name"`
	Multiplier  float64  `yaml:"multiplier"`
	Offset      Vec3Spec `yaml:"offset"`
	Radius      float64  `yaml:"radius"`
	HalfExtents Vec3Spec `yaml:"half_extents"`
}

func validateHurtboxes(boxes []HurtboxSpec) error {
	var errs []error
	for _, h := range boxes {
		if h.Multiplier < 0 {
			errs = append(errs, invalid("hurtbox %s multiplier must not be negative", h.Name))
		}
		if h.Radius <= 0 && (h.HalfExtents[0] <= 0 || h.HalfExtents[1] <= 0 || h.HalfExtents[2] <= 0) {
			errs = append(errs, invalid("hurtbox %s needs a radius or half_extents", h.Name))
		}
	}
	return errors.Join(errs...)
}

// Vec3Spec decodes from either [x, y, z] or {x:, y:, z:}.
type Vec3Spec mgl64.Vec3

func (v Vec3Spec) Vec3() mgl64.Vec3 { return mgl64.Vec3(v) }

func (v *Vec3Spec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xs []float64
		if err := value.Decode(&xs); err != nil {
			return err
		}
		if len(xs) != 3 {
			return fmt.Errorf("vector needs 3 components, got %d", len(xs))
		}
		*v = Vec3Spec{xs[0], xs[1], xs[2]}
		return nil
	case yaml.MappingNode:
		var m struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		*v = Vec3Spec{m.X, m.Y, m.Z}
		return nil
	}
	return fmt.Errorf("vector must be a sequence or mapping")
}

func (v Vec3Spec) MarshalYAML() (any, error) {
	return []float64{v[0], v[1], v[2]}, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
