package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSchema is the YAML shape of an external catalog file. Alternate
// programs (shortened pilots, team-specific ramps) are loaded from YAML
// instead of editing the built-in data.
type fileSchema struct {
	MaxDay         int                   `yaml:"max_day"`
	Days           map[int]DayInfo       `yaml:"days"`
	Phases         []Phase               `yaml:"phases"`
	Certifications map[int]Certification `yaml:"certifications"`
	Targets        []ActivityTarget      `yaml:"targets"`
	Month2         *genericWindow        `yaml:"month2,omitempty"`
	Month3         *genericWindow        `yaml:"month3,omitempty"`
}

type genericWindow struct {
	StartDay int     `yaml:"start_day"`
	EndDay   int     `yaml:"end_day"`
	Template DayInfo `yaml:"template"`
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a Catalog from raw YAML.
func Parse(data []byte) (*Catalog, error) {
	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog yaml: %w", err)
	}

	c := &Catalog{
		days:           schema.Days,
		phases:         schema.Phases,
		certifications: schema.Certifications,
		targets:        schema.Targets,
		maxDay:         schema.MaxDay,
	}
	if c.days == nil {
		c.days = map[int]DayInfo{}
	}
	if c.certifications == nil {
		c.certifications = map[int]Certification{}
	}
	if w := schema.Month2; w != nil {
		c.month2Start, c.month2End, c.month2 = w.StartDay, w.EndDay, w.Template
	}
	if w := schema.Month3; w != nil {
		c.month3Start, c.month3End, c.month3 = w.StartDay, w.EndDay, w.Template
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
