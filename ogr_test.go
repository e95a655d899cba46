package ogr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenErrors(t *testing.T) {
	_, err := Open("testdata/does_not_exist.geojson")
	var npErr *NullPointerError
	assert.ErrorAs(t, err, &npErr)

	_, err = Open("bad\x00name")
	var strErr *InvalidStringError
	assert.ErrorAs(t, err, &strErr)
}

func TestOpenGeoJSON(t *testing.T) {
	ds, err := Open("testdata/test.geojson")
	assert.NoError(t, err)
	defer ds.Close()

	assert.Equal(t, 1, ds.LayerCount())
	layer := ds.Layer(0)
	if !assert.NotNil(t, layer) {
		return
	}
	assert.Equal(t, "test", layer.Name())

	assert.Nil(t, ds.Layer(5))
	assert.Nil(t, ds.LayerByName("nope"))
	assert.NotNil(t, ds.LayerByName("test"))

	var names []string
	it := layer.Features()
	for {
		f := it.Next()
		if f == nil {
			break
		}
		names = append(names, f.Fields().GetByName("foo").Value().(string))
		f.Close()
	}
	assert.Equal(t, []string{"bar", "baz"}, names)

	env, err := layer.Extent()
	assert.NoError(t, err)
	assert.Equal(t, Envelope{MinX: 100, MinY: 0, MaxX: 101, MaxY: 1}, env)
}

func TestCreateVectorErrors(t *testing.T) {
	_, err := CreateVector(DriverName("no such driver"), "")
	var npErr *NullPointerError
	assert.ErrorAs(t, err, &npErr)
}

func TestCreateLayerOnClosedDataset(t *testing.T) {
	ds, err := CreateVector(Memory, "")
	assert.NoError(t, err)
	assert.NoError(t, ds.Close())
	_, err = ds.CreateLayer("l", nil, GTPoint)
	assert.ErrorIs(t, err, ErrDatasetClosed)
	assert.Equal(t, 0, ds.LayerCount())
	assert.Empty(t, ds.Layers())
	assert.Nil(t, ds.LayerByName("l"))
}
