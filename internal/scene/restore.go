package scene

import "github.com/MKhiriev/scene-keeper/models"

// BasicRestorer is the default [Restorer]. It drops elements without an id,
// keeps only the first occurrence of a duplicated id, and raises versions
// below 1 to 1.
type BasicRestorer struct{}

// Restore implements [Restorer].
func (BasicRestorer) Restore(elements models.Elements) models.Elements {
	restored := make(models.Elements, 0, len(elements))
	seen := make(map[string]struct{}, len(elements))

	for _, el := range elements {
		if el.ID == "" {
			continue
		}
		if _, dup := seen[el.ID]; dup {
			continue
		}
		seen[el.ID] = struct{}{}

		if el.Version < 1 {
			el.Version = 1
		}
		restored = append(restored, el)
	}

	return restored
}
