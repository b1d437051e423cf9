// Package roster loads the combatants of a battle from YAML.
package roster

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/bossbattle/internal/game/entity"
)

//go:embed default.yaml
var defaultRoster []byte

// BossDef describes the boss.
type BossDef struct {
	Name   string `yaml:"name"`
	Health int    `yaml:"health"`
	Damage int    `yaml:"damage"`
}

// HeroDef describes one hero. HealPoints applies to Heal heroes only.
type HeroDef struct {
	Name       string `yaml:"name"`
	Health     int    `yaml:"health"`
	Damage     int    `yaml:"damage"`
	Ability    string `yaml:"ability"`
	HealPoints int    `yaml:"heal_points"`
}

// Definition is a complete battle roster.
type Definition struct {
	Boss   *BossDef  `yaml:"boss"`
	Heroes []HeroDef `yaml:"heroes"`
}

// Validate checks every roster invariant.
//
// Postcondition: Returns nil if the roster is valid, or one error listing all violations.
func (d *Definition) Validate() error {
	var errs []string

	if d.Boss == nil {
		errs = append(errs, "boss must be defined")
	} else {
		if d.Boss.Name == "" {
			errs = append(errs, "boss.name must not be empty")
		}
		if d.Boss.Health < 0 {
			errs = append(errs, fmt.Sprintf("boss.health must be >= 0, got %d", d.Boss.Health))
		}
	}

	if len(d.Heroes) == 0 {
		errs = append(errs, "at least one hero must be defined")
	}
	seen := make(map[string]bool, len(d.Heroes))
	for i, h := range d.Heroes {
		where := fmt.Sprintf("heroes[%d]", i)
		if h.Name == "" {
			errs = append(errs, where+".name must not be empty")
		} else {
			where = fmt.Sprintf("hero %q", h.Name)
			if seen[h.Name] {
				errs = append(errs, where+" is defined more than once")
			}
			seen[h.Name] = true
		}
		if h.Health < 0 {
			errs = append(errs, fmt.Sprintf("%s: health must be >= 0, got %d", where, h.Health))
		}
		tag, err := entity.ParseTag(h.Ability)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", where, err))
			continue
		}
		switch {
		case tag == entity.Heal && h.HealPoints <= 0:
			errs = append(errs, fmt.Sprintf("%s: heal_points must be > 0 for Heal, got %d", where, h.HealPoints))
		case tag != entity.Heal && h.HealPoints != 0:
			errs = append(errs, fmt.Sprintf("%s: heal_points only applies to Heal", where))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("roster validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Build constructs the live combatants.
//
// Precondition: d.Validate() returned nil.
func (d *Definition) Build() (*entity.Boss, []*entity.Hero) {
	boss := entity.NewBoss(d.Boss.Name, d.Boss.Health, d.Boss.Damage)
	heroes := make([]*entity.Hero, 0, len(d.Heroes))
	for _, h := range d.Heroes {
		var opts []entity.HeroOption
		if h.HealPoints > 0 {
			opts = append(opts, entity.WithHealPoints(h.HealPoints))
		}
		heroes = append(heroes, entity.NewHero(h.Name, h.Health, h.Damage, entity.Tag(h.Ability), opts...))
	}
	return boss, heroes
}

// LoadFromBytes parses and validates a roster document.
func LoadFromBytes(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing roster YAML: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads and validates the roster file at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %q: %w", path, err)
	}
	def, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return def, nil
}

// Default returns the built-in roster.
func Default() *Definition {
	def, err := LoadFromBytes(defaultRoster)
	if err != nil {
		panic("roster: embedded default roster is invalid: " + err.Error())
	}
	return def
}

// LoadOrDefault loads path, or the built-in roster when path is empty.
func LoadOrDefault(path string) (*Definition, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
