// Package rules loads the ruleset data that sheet values are derived from.
package rules

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
)

//go:embed default.yaml
var defaultRuleset []byte

// Ruleset is the rule data for one game line
type Ruleset struct {
	Attributes    []string                     `yaml:"attributes"`
	SaveBase      int                          `yaml:"save_base"`
	Saves         map[string][]string          `yaml:"saves"`
	MaxLevel      int                          `yaml:"max_level"`
	ModifierBands []ModifierBand               `yaml:"modifier_bands"`
	ItemTypeNames map[godbound.ItemType]string `yaml:"item_type_names"`
}

// ModifierBand maps an inclusive score range to an attribute modifier
type ModifierBand struct {
	Min      int `yaml:"min"`
	Max      int `yaml:"max"`
	Modifier int `yaml:"modifier"`
}

// Default returns the embedded Godbound core ruleset
func Default() *Ruleset {
	rs, err := Load(bytes.NewReader(defaultRuleset))
	if err != nil {
		panic(fmt.Sprintf("rules: embedded ruleset is invalid: %v", err))
	}
	return rs
}

// LoadFile reads a ruleset from a YAML file. An empty path yields Default.
func LoadFile(path string) (*Ruleset, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path) // #nosec G304 -- operator-supplied config path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open ruleset %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Load decodes and validates a ruleset
func Load(r io.Reader) (*Ruleset, error) {
	var rs Ruleset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rs); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode ruleset")
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Validate checks the ruleset is internally consistent
func (r *Ruleset) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(r.Attributes) == 0 {
		vb.RequiredField("attributes")
	}
	if len(r.Saves) == 0 {
		vb.RequiredField("saves")
	}
	for save, attrs := range r.Saves {
		if len(attrs) == 0 {
			vb.Fieldf("saves."+save, "must list at least one attribute")
		}
		for _, attr := range attrs {
			if !r.HasAttribute(attr) {
				vb.Fieldf("saves."+save, "references unknown attribute %q", attr)
			}
		}
	}
	if r.MaxLevel <= 0 {
		vb.Field("max_level", "must be positive")
	}
	if len(r.ModifierBands) == 0 {
		vb.RequiredField("modifier_bands")
	}
	for i, band := range r.ModifierBands {
		if band.Min > band.Max {
			vb.Fieldf(fmt.Sprintf("modifier_bands[%d]", i), "min %d exceeds max %d", band.Min, band.Max)
		}
	}

	return vb.Build()
}

// HasAttribute reports whether the ruleset defines the named attribute
func (r *Ruleset) HasAttribute(name string) bool {
	return slices.Contains(r.Attributes, name)
}

// Modifier returns the attribute modifier for a score. Scores outside every
// band clamp to the nearest band.
func (r *Ruleset) Modifier(score int) int {
	lowest, highest := r.ModifierBands[0], r.ModifierBands[0]
	for _, band := range r.ModifierBands {
		if score >= band.Min && score <= band.Max {
			return band.Modifier
		}
		if band.Min < lowest.Min {
			lowest = band
		}
		if band.Max > highest.Max {
			highest = band
		}
	}
	if score < lowest.Min {
		return lowest.Modifier
	}
	return highest.Modifier
}

// ComputeSaves derives save targets from attribute scores and level. A save
// whose attributes are all missing from the sheet is left out.
func (r *Ruleset) ComputeSaves(attrs map[string]godbound.Attribute, level int) map[string]godbound.Save {
	saves := make(map[string]godbound.Save, len(r.Saves))
	for name, sources := range r.Saves {
		best, found := 0, false
		for _, source := range sources {
			attr, ok := attrs[source]
			if !ok {
				continue
			}
			mod := r.Modifier(attr.Score)
			if !found || mod > best {
				best, found = mod, true
			}
		}
		if !found {
			continue
		}
		saves[name] = godbound.Save{Target: r.SaveBase - level - best}
	}
	return saves
}

// DefaultItemName returns the placeholder name for a freshly added item
func (r *Ruleset) DefaultItemName(t godbound.ItemType) (string, bool) {
	name, ok := r.ItemTypeNames[t]
	return name, ok
}

// ScoreBounds returns the lowest and highest scores the modifier bands cover
func (r *Ruleset) ScoreBounds() (lowest, highest int) {
	lowest, highest = r.ModifierBands[0].Min, r.ModifierBands[0].Max
	for _, band := range r.ModifierBands[1:] {
		lowest = min(lowest, band.Min)
		highest = max(highest, band.Max)
	}
	return lowest, highest
}
