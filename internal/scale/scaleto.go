package scale

import "sort"

// ScaledEntry is one catalog object rescaled by a scale factor.
type ScaledEntry struct {
	Key         string
	Name        string
	Description string
	Meters      float64
}

// ScaleTo answers "if target were the size of reference, how big would
// everything else be". Every catalog entry except the target and the excluded
// keys is scaled by reference/target and returned ascending by scaled size.
func (e *Engine) ScaleTo(targetKey, referenceKey string, exclude []string) ([]ScaledEntry, error) {
	target, err := e.Diameter(targetKey)
	if err != nil {
		return nil, err
	}
	reference, err := e.Diameter(referenceKey)
	if err != nil {
		return nil, err
	}
	if target == 0 {
		return nil, ErrZeroDiameter
	}
	factor := reference / target

	excluded := make(map[string]bool, len(exclude)+1)
	excluded[targetKey] = true
	for _, key := range exclude {
		excluded[key] = true
	}

	var scaled []ScaledEntry
	for _, key := range e.catalog.Keys() {
		if excluded[key] {
			continue
		}
		entry, _ := e.catalog.Get(key)
		scaled = append(scaled, ScaledEntry{
			Key:         key,
			Name:        entry.Name,
			Description: entry.Description,
			Meters:      entry.Size() * factor,
		})
	}

	sort.SliceStable(scaled, func(i, j int) bool {
		return scaled[i].Meters < scaled[j].Meters
	})

	return scaled, nil
}

// ScaleFactor returns reference/target, the factor ScaleTo applies.
func (e *Engine) ScaleFactor(targetKey, referenceKey string) (float64, error) {
	target, err := e.Diameter(targetKey)
	if err != nil {
		return 0, err
	}
	reference, err := e.Diameter(referenceKey)
	if err != nil {
		return 0, err
	}
	if target == 0 {
		return 0, ErrZeroDiameter
	}
	return reference / target, nil
}
