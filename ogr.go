// Package ogr is a Go binding to the vector (OGR) half of the GDAL library.
//
// The package wraps the raw C handle-and-cursor API behind Go types with
// explicit lifetimes: every wrapper that owns engine memory has a Close
// method that must be called exactly once, and the documented ownership
// transfer points (attaching a geometry to a feature, attaching a field
// definition to a layer) relinquish the source handle so it cannot be freed
// twice.
package ogr

/*
#include "gdal.h"
#include "ogr_api.h"
#include "ogr_srs_api.h"
#include "cpl_conv.h"
#include <stdlib.h>

#cgo pkg-config: gdal
*/
import "C"
import (
	"sync"
	"unsafe"
)

var registerOnce sync.Once

// RegisterAll registers all known GDAL drivers. It is called implicitly by
// Open and CreateVector and is safe to call multiple times.
func RegisterAll() {
	registerOnce.Do(func() {
		C.GDALAllRegister()
	})
}

// DriverName is a GDAL driver short name.
type DriverName string

const (
	// Memory is the in-memory vector driver
	Memory DriverName = "Memory"
	// GeoJSON is the GeoJSON driver
	GeoJSON DriverName = "GeoJSON"
	// Shapefile is the ESRI Shapefile driver
	Shapefile DriverName = "ESRI Shapefile"
	// GPKG is the GeoPackage driver
	GPKG DriverName = "GPKG"
)

type openOptions struct {
	flags C.uint
}

// OpenOption is an option passed to Open
type OpenOption interface {
	setOpenOption(oo *openOptions)
}

type updateOpt struct{}

func (updateOpt) setOpenOption(oo *openOptions) {
	oo.flags &^= C.GDAL_OF_READONLY
	oo.flags |= C.GDAL_OF_UPDATE
}

// Update opens the dataset for writing
func Update() OpenOption { return updateOpt{} }

// Dataset wraps a GDALDatasetH holding one or more vector layers.
//
// A Dataset owns the lifetime of every Layer it hands out: once Close has
// been called, all of its layers refuse further operations with
// ErrDatasetClosed.
type Dataset struct {
	handle C.GDALDatasetH
}

// Open opens a vector datasource. name may be a filename or any connection
// string GDAL understands (/vsixxx paths, raw GeoJSON, etc.). The dataset is
// opened read-only unless the Update option is given.
func Open(name string, opts ...OpenOption) (*Dataset, error) {
	RegisterAll()
	if err := checkNoNul("Open", name); err != nil {
		return nil, err
	}
	oo := openOptions{flags: C.GDAL_OF_VECTOR | C.GDAL_OF_READONLY | C.GDAL_OF_VERBOSE_ERROR}
	for _, o := range opts {
		o.setOpenOption(&oo)
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	hndl := C.GDALOpenEx(cname, oo.flags, nil, nil, nil)
	if hndl == nil {
		return nil, lastNullPointerErr("GDALOpenEx")
	}
	return &Dataset{handle: hndl}, nil
}

// CreateVector creates a new vector dataset with the given driver. For the
// Memory driver name may be empty.
func CreateVector(driver DriverName, name string) (*Dataset, error) {
	RegisterAll()
	if err := checkNoNul("CreateVector", name); err != nil {
		return nil, err
	}
	cdrv := C.CString(string(driver))
	defer C.free(unsafe.Pointer(cdrv))
	drv := C.GDALGetDriverByName(cdrv)
	if drv == nil {
		return nil, lastNullPointerErr("GDALGetDriverByName")
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	hndl := C.GDALCreate(drv, cname, 0, 0, 0, C.GDT_Unknown, nil)
	if hndl == nil {
		return nil, lastNullPointerErr("GDALCreate")
	}
	return &Dataset{handle: hndl}, nil
}

// Close releases the dataset and invalidates every Layer obtained from it.
// Must be called exactly once; a second call is a no-op returning
// ErrDatasetClosed.
func (ds *Dataset) Close() error {
	if ds.handle == nil {
		return ErrDatasetClosed
	}
	C.GDALClose(ds.handle)
	ds.handle = nil
	return nil
}

func (ds *Dataset) alive() bool {
	return ds != nil && ds.handle != nil
}

// LayerCount returns the number of layers in the dataset, or 0 if the
// dataset is closed.
func (ds *Dataset) LayerCount() int {
	if !ds.alive() {
		return 0
	}
	return int(C.GDALDatasetGetLayerCount(ds.handle))
}

// Layer returns the idx'th layer, or nil if out of range.
func (ds *Dataset) Layer(idx int) *Layer {
	if !ds.alive() {
		return nil
	}
	hndl := C.GDALDatasetGetLayer(ds.handle, C.int(idx))
	if hndl == nil {
		return nil
	}
	return newLayer(ds, hndl)
}

// Layers returns all layers of the dataset.
func (ds *Dataset) Layers() []*Layer {
	n := ds.LayerCount()
	layers := make([]*Layer, 0, n)
	for i := 0; i < n; i++ {
		if l := ds.Layer(i); l != nil {
			layers = append(layers, l)
		}
	}
	return layers
}

// LayerByName fetches a layer by name. Returns nil if not found.
func (ds *Dataset) LayerByName(name string) *Layer {
	if !ds.alive() {
		return nil
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	hndl := C.GDALDatasetGetLayerByName(ds.handle, cname)
	if hndl == nil {
		return nil
	}
	return newLayer(ds, hndl)
}

// CreateLayer creates a new vector layer in the dataset. fields, if given,
// are attached to the new layer's schema; the engine copies each definition
// so the caller keeps ownership of the FieldDefn values.
func (ds *Dataset) CreateLayer(name string, sr *SpatialRef, gtype GeometryType, fields ...*FieldDefn) (*Layer, error) {
	if !ds.alive() {
		return nil, ErrDatasetClosed
	}
	if err := checkNoNul("CreateLayer", name); err != nil {
		return nil, err
	}
	srHandle := C.OGRSpatialReferenceH(nil)
	if sr != nil {
		srHandle = sr.handle
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	hndl := C.GDALDatasetCreateLayer(ds.handle, cname, srHandle, C.OGRwkbGeometryType(gtype), nil)
	if hndl == nil {
		return nil, lastNullPointerErr("GDALDatasetCreateLayer")
	}
	layer := newLayer(ds, hndl)
	for _, fld := range fields {
		if err := fld.AddToLayer(layer); err != nil {
			return nil, err
		}
	}
	return layer, nil
}
