package ogr

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestGeometryWKT(t *testing.T) {
	_, err := NewGeometryFromWKT("babsaba", nil)
	assert.Error(t, err)

	g, err := NewGeometryFromWKT("POINT (30 10)", nil)
	assert.NoError(t, err)
	defer g.Close()

	wkt, err := g.WKT()
	assert.NoError(t, err)
	assert.Equal(t, "POINT (30 10)", wkt)
	assert.Equal(t, GTPoint, g.Type())
	assert.False(t, g.Empty())
}

func TestGeometryWKB(t *testing.T) {
	g, err := NewGeometryFromWKT("POINT (30 10)", nil)
	assert.NoError(t, err)
	defer g.Close()

	wkb, err := g.WKB()
	assert.NoError(t, err)
	assert.NotEmpty(t, wkb)

	_, err = NewGeometryFromWKB(nil, nil)
	assert.Error(t, err)
	_, err = NewGeometryFromWKB(wkb[0:5], nil)
	assert.Error(t, err)

	g2, err := NewGeometryFromWKB(wkb, nil)
	assert.NoError(t, err)
	defer g2.Close()
	assert.True(t, g.Equals(g2))
}

func TestGeometryEnvelope(t *testing.T) {
	g, err := NewGeometryFromWKT("POLYGON ((0 0,2 0,2 3,0 3,0 0))", nil)
	assert.NoError(t, err)
	defer g.Close()
	assert.Equal(t, Envelope{MinX: 0, MinY: 0, MaxX: 2, MaxY: 3}, g.Envelope())
}

func TestGeometryClosedHandle(t *testing.T) {
	g, err := NewGeometryFromWKT("POINT (1 2)", nil)
	assert.NoError(t, err)
	g.Close()
	assert.NotPanics(t, g.Close, "second close must not panic")
	_, err = g.WKT()
	assert.Error(t, err)
	_, err = g.WKB()
	assert.Error(t, err)
	assert.False(t, g.Equals(g))
}

func TestGeometryOrb(t *testing.T) {
	g, err := NewGeometryFromWKT("POINT (30 10)", nil)
	assert.NoError(t, err)
	defer g.Close()

	og, err := g.Orb()
	assert.NoError(t, err)
	assert.Equal(t, orb.Point{30, 10}, og)

	g2, err := NewGeometryFromOrb(orb.Point{30, 10}, nil)
	assert.NoError(t, err)
	defer g2.Close()
	assert.True(t, g.Equals(g2))
}

func TestSpatialRefEPSG(t *testing.T) {
	sr, err := NewSpatialRefFromEPSG(4326)
	assert.NoError(t, err)
	defer sr.Close()
	assert.Equal(t, "4326", sr.AuthorityCode())
	assert.True(t, sr.IsSame(sr))

	wkt, err := sr.WKT()
	assert.NoError(t, err)
	assert.NotEmpty(t, wkt)

	_, err = NewSpatialRefFromEPSG(-1)
	assert.Error(t, err)

	other, err := NewSpatialRefFromEPSG(3857)
	assert.NoError(t, err)
	assert.False(t, sr.IsSame(other))
	other.Close()
	assert.NotPanics(t, other.Close, "second close must not panic")
}
