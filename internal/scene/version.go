package scene

import "github.com/MKhiriev/scene-keeper/models"

// VersionSum is the default [Versioner]: the sum of all element versions,
// tombstones included.
//
// Two different scenes may share a sum. That only risks one skipped save on
// the connection that produced the collision, never a lost write, because a
// save always re-reads the stored envelope inside its transaction.
type VersionSum struct{}

// Version implements [Versioner].
func (VersionSum) Version(elements models.Elements) int64 {
	var v int64
	for _, el := range elements {
		v += el.Version
	}
	return v
}
