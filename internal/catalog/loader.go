package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog file and returns an immutable catalog. Both JSON and
// YAML files are accepted (JSON is parsed by the YAML decoder), in either of
// the two field-naming conventions seen in the wild:
//
//   - full names: name, description, diameter_average, diameter_multiplier
//   - short codes: n, desc, d, r
//
// The file may keep entries in a top-level "objects" map with a "_metadata"
// block beside it, or as a flat map where metadata keys are "_"-prefixed.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes catalog bytes into an immutable catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	meta := parseMetadata(doc["_metadata"])

	raw := map[string]any{}
	if objects, ok := doc["objects"].(map[string]any); ok {
		raw = objects
	} else {
		// Flat layout: everything that isn't a metadata key is an entry.
		for k, v := range doc {
			if strings.HasPrefix(k, "_") {
				continue
			}
			raw[k] = v
		}
	}

	entries := make(map[string]*Entry, len(raw))
	for key, v := range raw {
		fields, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a mapping", ErrInvalidEntry, key)
		}
		entry, err := normalizeEntry(key, fields)
		if err != nil {
			return nil, err
		}
		entries[key] = entry
	}

	return New(entries, meta), nil
}

// normalizeEntry maps either field-naming variant onto the single Entry
// model. The rest of the engine never sees source field names.
func normalizeEntry(key string, fields map[string]any) (*Entry, error) {
	entry := &Entry{
		Key:        key,
		Multiplier: 1.0,
	}

	name, ok := stringField(fields, "n", "name")
	if !ok {
		return nil, fmt.Errorf("%w: %q has no name", ErrInvalidEntry, key)
	}
	entry.Name = name
	entry.Description, _ = stringField(fields, "desc", "description")

	diameter, haveDiameter := floatField(fields, "d", "diameter_average")
	entry.Diameter = diameter

	if bounds, ok, err := rangeField(fields, "r", "diameter_range"); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidEntry, key, err)
	} else if ok {
		entry.Range = bounds
	} else if !haveDiameter {
		return nil, fmt.Errorf("%w: %q has neither diameter nor range", ErrInvalidEntry, key)
	}

	if m, ok := floatField(fields, "diameter_multiplier"); ok {
		entry.Multiplier = m
	}

	if tags, ok := fields["tags"].([]any); ok {
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				entry.Tags = append(entry.Tags, s)
			}
		}
	}

	return entry, nil
}

func parseMetadata(v any) Metadata {
	fields, ok := v.(map[string]any)
	if !ok {
		return Metadata{}
	}
	var meta Metadata
	meta.Version, _ = stringField(fields, "version")
	meta.Description, _ = stringField(fields, "description")
	meta.Source, _ = stringField(fields, "source")
	return meta
}

func stringField(fields map[string]any, names ...string) (string, bool) {
	for _, name := range names {
		if s, ok := fields[name].(string); ok {
			return s, true
		}
	}
	return "", false
}

func floatField(fields map[string]any, names ...string) (float64, bool) {
	for _, name := range names {
		if v, ok := fields[name]; ok {
			if f, ok := toFloat(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

func rangeField(fields map[string]any, names ...string) (*[2]float64, bool, error) {
	for _, name := range names {
		v, ok := fields[name]
		if !ok {
			continue
		}
		list, ok := v.([]any)
		if !ok || len(list) != 2 {
			return nil, false, fmt.Errorf("range must be a [min, max] pair")
		}
		min, okMin := toFloat(list[0])
		max, okMax := toFloat(list[1])
		if !okMin || !okMax {
			return nil, false, fmt.Errorf("range bounds must be numeric")
		}
		return &[2]float64{min, max}, true, nil
	}
	return nil, false, nil
}

// toFloat coerces the numeric types the YAML decoder may produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
