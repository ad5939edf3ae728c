package project

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/castpress/castpress/app/timeutil"
)

// Load reads and validates a podcast project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(&p)

	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("invalid project %s: %w", path, err)
	}

	return &p, nil
}

// Save writes the project back to path. Derived probe fields are excluded
// from serialization, so a load/save cycle only normalizes formatting.
func (p *Project) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize project: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	return nil
}

func setDefaults(p *Project) {
	if p.Meta.Locale.Spoken == "" {
		p.Meta.Locale.Spoken = "eng"
	}
}

// validate resolves every episode pubdate into an instant and checks the
// feed language code. Required-field enforcement happens later, in the feed
// builder, so that it can name the entity that is incomplete.
func validate(p *Project) error {
	if p.Meta.Locale.RSS != "" {
		if _, err := language.Parse(p.Meta.Locale.RSS); err != nil {
			return fmt.Errorf("unrecognized language code %q: %w", p.Meta.Locale.RSS, err)
		}
	}

	for i := range p.Episodes {
		ep := &p.Episodes[i]
		if ep.PubDate == "" {
			continue
		}
		t, err := timeutil.Parse(ep.PubDate)
		if err != nil {
			return fmt.Errorf("episode %d (%q): %w", i, ep.Title, err)
		}
		ep.PublishedAt = t
	}

	return nil
}
