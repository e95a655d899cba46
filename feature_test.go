package ogr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureFields(t *testing.T) {
	ds, err := CreateVector(Memory, "")
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()
	layer, err := ds.CreateLayer("attrs", nil, GTPoint)
	assert.NoError(t, err)
	err = layer.CreateDefnFields([]FieldSpec{
		{Name: "intCol", Type: FTInt},
		{Name: "int64Col", Type: FTInt64},
		{Name: "realCol", Type: FTReal},
		{Name: "strCol", Type: FTString},
		{Name: "binCol", Type: FTBinary},
	})
	assert.NoError(t, err)

	f, err := NewFeature(layer.Defn())
	assert.NoError(t, err)
	defer f.Close()

	assert.NoError(t, f.SetField("intCol", 3))
	assert.NoError(t, f.SetField("int64Col", int64(1<<40)))
	assert.NoError(t, f.SetField("realCol", 1.5))
	assert.NoError(t, f.SetField("strCol", "hello"))
	assert.NoError(t, f.SetField("binCol", []byte{1, 2, 3}))
	assert.ErrorIs(t, f.SetField("missing", 1), ErrInvalidFieldName)
	assert.ErrorIs(t, f.SetField("strCol", struct{}{}), ErrInvalidFieldValue)

	g, err := NewGeometryFromWKT("POINT (1 2)", nil)
	assert.NoError(t, err)
	assert.NoError(t, f.SetGeometry(g))
	assert.NotPanics(t, g.Close, "transferred geometry must be inert")
	assert.NoError(t, f.Create(layer))

	it := layer.Features()
	got := it.Next()
	if !assert.NotNil(t, got) {
		return
	}
	defer got.Close()
	fields := got.Fields()
	assert.Len(t, fields, 5)
	assert.Equal(t, 3, fields.GetByName("intCol").Value())
	assert.Equal(t, int64(1<<40), fields.GetByName("int64Col").Value())
	assert.Equal(t, 1.5, fields.GetByName("realCol").Value())
	assert.Equal(t, "hello", fields.GetByName("strCol").Value())
	assert.Equal(t, []byte{1, 2, 3}, fields.GetByName("binCol").Value())
	assert.True(t, fields.GetByName("strCol").IsSet())
	assert.Nil(t, fields.GetByName("missing"))
}

func TestFeatureFID(t *testing.T) {
	ds, layer := pointLayer(t)
	defer ds.Close()
	f := layer.Feature(1)
	if !assert.NotNil(t, f) {
		return
	}
	defer f.Close()
	assert.EqualValues(t, 1, f.FID())
	f.SetFID(7)
	assert.EqualValues(t, 7, f.FID())
}

func TestFeatureGeometryBorrowed(t *testing.T) {
	ds, layer := pointLayer(t)
	defer ds.Close()
	f := layer.Feature(0)
	if !assert.NotNil(t, f) {
		return
	}
	g := f.Geometry()
	wkt, err := g.WKT()
	assert.NoError(t, err)
	assert.Equal(t, "POINT (1 1)", wkt)
	// borrowed: closing the wrapper must not free the feature's geometry
	g.Close()
	g2 := f.Geometry()
	wkt2, err := g2.WKT()
	assert.NoError(t, err)
	assert.Equal(t, wkt, wkt2)
	f.Close()
	assert.NotPanics(t, f.Close, "second close must not panic")
}
