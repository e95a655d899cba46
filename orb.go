package ogr

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
)

// Orb returns the geometry as a paulmach/orb value, converted through its
// WKB representation. The result is an independent pure-Go copy with no tie
// to the engine handle.
func (g *Geometry) Orb() (orb.Geometry, error) {
	data, err := g.WKB()
	if err != nil {
		return nil, err
	}
	return wkb.Unmarshal(data)
}

// NewGeometryFromOrb creates an engine geometry from a paulmach/orb value.
// The returned geometry is owned by the caller.
func NewGeometryFromOrb(g orb.Geometry, sr *SpatialRef) (*Geometry, error) {
	data, err := wkb.Marshal(g)
	if err != nil {
		return nil, err
	}
	return NewGeometryFromWKB(data, sr)
}
