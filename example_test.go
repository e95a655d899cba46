package ogr_test

import (
	"fmt"

	"github.com/vektorgeo/ogr"
)

// Example_layerTutorial walks the typical layer life cycle: create a
// datasource, define a schema, write features, then filter and read them
// back through the cursor iterator.
func Example_layerTutorial() {
	ds, err := ogr.CreateVector(ogr.Memory, "")
	if err != nil {
		panic(err)
	}
	defer ds.Close()

	name, err := ogr.NewFieldDefn("name", ogr.FTString)
	if err != nil {
		panic(err)
	}
	defer name.Close()
	layer, err := ds.CreateLayer("cities", nil, ogr.GTPoint, name)
	if err != nil {
		panic(err)
	}

	for _, city := range []struct {
		wkt  string
		name string
	}{
		{"POINT (2.35 48.85)", "paris"},
		{"POINT (13.40 52.52)", "berlin"},
	} {
		geom, err := ogr.NewGeometryFromWKT(city.wkt, nil)
		if err != nil {
			panic(err)
		}
		// geometry ownership moves into the layer here
		if err := layer.CreateFeatureFields(geom, []string{"name"}, []any{city.name}); err != nil {
			panic(err)
		}
	}

	fmt.Println("features:", layer.FeatureCount())

	if err := layer.SetAttributeFilter("name = 'berlin'"); err != nil {
		panic(err)
	}
	it := layer.Features()
	for {
		feat := it.Next()
		if feat == nil {
			break
		}
		wkt, _ := feat.Geometry().WKT()
		fmt.Printf("%s %s\n", feat.Fields().GetByName("name").Value(), wkt)
		feat.Close()
	}

	// Output:
	// features: 2
	// berlin POINT (13.4 52.52)
}
