package ogr

/*
#include "gdal.h"
#include "ogr_api.h"
#include <stdlib.h>

#cgo pkg-config: gdal
*/
import "C"
import (
	"unsafe"
)

// LayerCap is a named boolean capability a layer's driver may support.
type LayerCap int

const (
	// CapRandomRead is set if Feature(fid) is implemented efficiently
	CapRandomRead LayerCap = iota
	// CapSequentialWrite is set if new features can be created
	CapSequentialWrite
	// CapRandomWrite is set if existing features can be rewritten
	CapRandomWrite
	// CapFastSpatialFilter is set if spatial filtering is accelerated
	CapFastSpatialFilter
	// CapFastFeatureCount is set if FeatureCount avoids a full scan
	CapFastFeatureCount
	// CapFastGetExtent is set if Extent avoids a full scan
	CapFastGetExtent
	// CapCreateField is set if fields can be added to the schema
	CapCreateField
	// CapDeleteField is set if fields can be removed from the schema
	CapDeleteField
	// CapReorderFields is set if schema fields can be reordered
	CapReorderFields
	// CapAlterFieldDefn is set if field definitions can be modified
	CapAlterFieldDefn
	// CapTransactions is set if the layer supports transactions
	CapTransactions
	// CapDeleteFeature is set if features can be deleted
	CapDeleteFeature
	// CapFastSetNextByIndex is set if the cursor can seek efficiently
	CapFastSetNextByIndex
	// CapStringsAsUTF8 is set if string values are returned as UTF-8
	CapStringsAsUTF8
	// CapIgnoreFields is set if fields can be excluded from retrieval
	CapIgnoreFields
	// CapCreateGeomField is set if geometry fields can be added
	CapCreateGeomField
	// CapCurveGeometries is set if curve geometries are supported
	CapCurveGeometries
	// CapMeasuredGeometries is set if measured (M) geometries are supported
	CapMeasuredGeometries
)

// token returns the engine's constant string for the capability. The table
// is closed and must match OGR's OLC* defines byte for byte.
func (lc LayerCap) token() string {
	switch lc {
	case CapRandomRead:
		return "RandomRead"
	case CapSequentialWrite:
		return "SequentialWrite"
	case CapRandomWrite:
		return "RandomWrite"
	case CapFastSpatialFilter:
		return "FastSpatialFilter"
	case CapFastFeatureCount:
		return "FastFeatureCount"
	case CapFastGetExtent:
		return "FastGetExtent"
	case CapCreateField:
		return "CreateField"
	case CapDeleteField:
		return "DeleteField"
	case CapReorderFields:
		return "ReorderFields"
	case CapAlterFieldDefn:
		return "AlterFieldDefn"
	case CapTransactions:
		return "Transactions"
	case CapDeleteFeature:
		return "DeleteFeature"
	case CapFastSetNextByIndex:
		return "FastSetNextByIndex"
	case CapStringsAsUTF8:
		return "StringsAsUTF8"
	case CapIgnoreFields:
		return "IgnoreFields"
	case CapCreateGeomField:
		return "CreateGeomField"
	case CapCurveGeometries:
		return "CurveGeometries"
	case CapMeasuredGeometries:
		return "MeasuredGeometries"
	}
	panic("unknown layer capability")
}

// Envelope is an axis-aligned bounding box.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

func envelopeFromC(env *C.OGREnvelope) Envelope {
	return Envelope{
		MinX: float64(env.MinX),
		MinY: float64(env.MinY),
		MaxX: float64(env.MaxX),
		MaxY: float64(env.MaxY),
	}
}

// Layer wraps an OGRLayerH within its owning dataset.
//
// The layer handle carries a single implicit read cursor shared by all
// sequential reads. Features resets it and starts a new sequence; changing a
// filter also resets it and terminates any live sequence. Feature(fid) is
// cursor-independent and may be interleaved freely.
//
// A Layer is only valid while its owning Dataset is open; after
// Dataset.Close every fallible operation returns ErrDatasetClosed and
// non-fallible accessors return zero values.
type Layer struct {
	ds     *Dataset
	handle C.OGRLayerH
	defn   *Defn
	// epoch identifies the current cursor sequence. Bumped by Features and
	// by every filter change, ending any older FeatureIterator.
	epoch uint64
	// last successfully installed attribute filter, reinstalled if a later
	// install fails to parse (the engine drops the old query on failure)
	attrFilter    string
	hasAttrFilter bool
}

func newLayer(ds *Dataset, hndl C.OGRLayerH) *Layer {
	// the schema descriptor is fetched exactly once; later out-of-band
	// schema changes are not re-synced
	cdefn := C.OGR_L_GetLayerDefn(hndl)
	return &Layer{
		ds:     ds,
		handle: hndl,
		defn:   &Defn{handle: cdefn},
	}
}

// Name returns the layer name, or "" if the owning dataset is closed.
func (layer *Layer) Name() string {
	if !layer.ds.alive() {
		return ""
	}
	return C.GoString(C.OGR_L_GetName(layer.handle))
}

// GeomType returns the layer geometry type.
func (layer *Layer) GeomType() GeometryType {
	if !layer.ds.alive() {
		return GTUnknown
	}
	return GeometryType(C.OGR_L_GetGeomType(layer.handle))
}

// Defn returns the layer's schema descriptor. The descriptor is built once
// when the Layer wrapper is constructed and shared by every Feature read
// from the layer.
func (layer *Layer) Defn() *Defn {
	return layer.defn
}

// HasCapability asks the driver whether it supports cap. The engine is
// queried on every call; capabilities are not cached since driver behavior
// can change, e.g. when a datasource is reopened in update mode. Unsupported
// or unknown capabilities report false, never an error.
func (layer *Layer) HasCapability(cap LayerCap) bool {
	if !layer.ds.alive() {
		return false
	}
	ctoken := C.CString(cap.token())
	defer C.free(unsafe.Pointer(ctoken))
	return C.OGR_L_TestCapability(layer.handle, ctoken) == 1
}

// Feature returns the feature with the given feature id, or nil if no such
// feature exists. The lookup is unaffected by active spatial or attribute
// filters and does not disturb the read cursor.
//
// Not all drivers implement this efficiently; the fallback is a full scan,
// so the call always works if the feature exists.
func (layer *Layer) Feature(fid int64) *Feature {
	if !layer.ds.alive() {
		return nil
	}
	hndl := C.OGR_L_GetFeature(layer.handle, C.GIntBig(fid))
	if hndl == nil {
		return nil
	}
	return &Feature{handle: hndl, defn: layer.defn}
}

// DeleteFeature deletes the feature with the given id from the layer.
func (layer *Layer) DeleteFeature(fid int64) error {
	if !layer.ds.alive() {
		return ErrDatasetClosed
	}
	return ogrError(C.OGR_L_DeleteFeature(layer.handle, C.GIntBig(fid)), "OGR_L_DeleteFeature")
}

// ResetReading rewinds the layer's read cursor to the first feature under
// the currently active filters.
func (layer *Layer) ResetReading() {
	if !layer.ds.alive() {
		return
	}
	C.OGR_L_ResetReading(layer.handle)
}

// Features resets the read cursor and returns a single-pass iterator over
// the layer's features under the filters active at this moment.
//
// Only one sequence can be live at a time: starting a new one, or changing
// any filter, terminates the previous iterator. The sequence is not
// restartable; call Features again to iterate from the start.
func (layer *Layer) Features() *FeatureIterator {
	layer.epoch++
	layer.ResetReading()
	it := &FeatureIterator{
		layer: layer,
		epoch: layer.epoch,
	}
	if n, ok := layer.TryFeatureCount(); ok {
		it.sizeHint = int(n)
		it.hasHint = true
	}
	return it
}

// SetSpatialFilter restricts subsequent iteration (and, driver permitting,
// count and extent queries) to features intersecting geom. The read cursor
// is reset. A nil geometry clears the filter, like ClearSpatialFilter.
func (layer *Layer) SetSpatialFilter(geom *Geometry) {
	if !layer.ds.alive() {
		return
	}
	layer.epoch++
	var hndl C.OGRGeometryH
	if geom != nil {
		hndl = geom.handle
	}
	C.OGR_L_SetSpatialFilter(layer.handle, hndl)
}

// SetSpatialFilterRect is SetSpatialFilter with a rectangle, avoiding the
// need to build a geometry.
func (layer *Layer) SetSpatialFilterRect(minX, minY, maxX, maxY float64) {
	if !layer.ds.alive() {
		return
	}
	layer.epoch++
	C.OGR_L_SetSpatialFilterRect(layer.handle,
		C.double(minX), C.double(minY), C.double(maxX), C.double(maxY))
}

// ClearSpatialFilter removes any active spatial filter.
func (layer *Layer) ClearSpatialFilter() {
	if !layer.ds.alive() {
		return
	}
	layer.epoch++
	C.OGR_L_SetSpatialFilter(layer.handle, nil)
}

// SetAttributeFilter restricts iteration to features matching query, a
// boolean predicate in restricted SQL WHERE format. The string is passed to
// the engine verbatim; a predicate the driver cannot parse fails with an
// engine error and leaves the previously active filter in place.
//
// Installing a filter generally resets the read cursor; callers must not
// assume iteration position survives a filter change.
func (layer *Layer) SetAttributeFilter(query string) error {
	if !layer.ds.alive() {
		return ErrDatasetClosed
	}
	if err := checkNoNul("OGR_L_SetAttributeFilter", query); err != nil {
		return err
	}
	cquery := C.CString(query)
	defer C.free(unsafe.Pointer(cquery))
	rv := C.OGR_L_SetAttributeFilter(layer.handle, cquery)
	if rv != C.OGRERR_NONE {
		// the engine resets the cursor and drops the previous query even
		// when the new one fails to compile; put the query back, and end any
		// live sequence since the read position is gone either way
		if layer.hasAttrFilter {
			cprev := C.CString(layer.attrFilter)
			C.OGR_L_SetAttributeFilter(layer.handle, cprev)
			C.free(unsafe.Pointer(cprev))
		}
		layer.epoch++
		return ogrError(rv, "OGR_L_SetAttributeFilter")
	}
	layer.attrFilter = query
	layer.hasAttrFilter = true
	layer.epoch++
	return nil
}

// ClearAttributeFilter removes any active attribute filter.
func (layer *Layer) ClearAttributeFilter() {
	if !layer.ds.alive() {
		return
	}
	layer.epoch++
	layer.attrFilter = ""
	layer.hasAttrFilter = false
	C.OGR_L_SetAttributeFilter(layer.handle, nil)
}

// FeatureCount returns the number of features in the layer, even if that
// requires scanning the whole layer. The count honors the active spatial
// filter; for dynamic stores it may not be exact.
func (layer *Layer) FeatureCount() int64 {
	if !layer.ds.alive() {
		return 0
	}
	return int64(C.OGR_L_GetFeatureCount(layer.handle, 1))
}

// TryFeatureCount is FeatureCount without forcing expensive computation.
// ok is false when the driver signals (with a negative count) that it cannot
// determine the number cheaply.
func (layer *Layer) TryFeatureCount() (count int64, ok bool) {
	if !layer.ds.alive() {
		return 0, false
	}
	rv := int64(C.OGR_L_GetFeatureCount(layer.handle, 0))
	if rv < 0 {
		return 0, false
	}
	return rv, true
}

// Extent returns the layer's bounding box, even if that requires scanning
// the whole layer. A layer with no geometry to bound fails with an engine
// error (OGRERR_FAILURE from OGR_L_GetExtent).
//
// Whether the extent honors the active spatial filter is driver-defined, so
// it is safer to query it with no filter installed.
func (layer *Layer) Extent() (Envelope, error) {
	if !layer.ds.alive() {
		return Envelope{}, ErrDatasetClosed
	}
	var env C.OGREnvelope
	rv := C.OGR_L_GetExtent(layer.handle, &env, 1)
	if rv != C.OGRERR_NONE {
		return Envelope{}, ogrError(rv, "OGR_L_GetExtent")
	}
	return envelopeFromC(&env), nil
}

// TryExtent is Extent without forcing expensive computation. ok is false
// when the driver reports it cannot determine the extent cheaply
// (OGRERR_FAILURE); any other engine error is returned as such, never
// conflated with absence.
func (layer *Layer) TryExtent() (env Envelope, ok bool, err error) {
	if !layer.ds.alive() {
		return Envelope{}, false, ErrDatasetClosed
	}
	var cenv C.OGREnvelope
	rv := C.OGR_L_GetExtent(layer.handle, &cenv, 0)
	if rv == C.OGRERR_FAILURE {
		return Envelope{}, false, nil
	}
	if rv != C.OGRERR_NONE {
		return Envelope{}, false, ogrError(rv, "OGR_L_GetExtent")
	}
	return envelopeFromC(&cenv), true, nil
}

// SpatialRef returns the layer's spatial reference system. The returned
// wrapper borrows engine memory and needs no Close. Fails with a
// null-result error when the layer has no SRS configured.
func (layer *Layer) SpatialRef() (*SpatialRef, error) {
	if !layer.ds.alive() {
		return nil, ErrDatasetClosed
	}
	hndl := C.OGR_L_GetSpatialRef(layer.handle)
	if hndl == nil {
		return nil, lastNullPointerErr("OGR_L_GetSpatialRef")
	}
	return &SpatialRef{handle: hndl, isOwned: false}, nil
}

// CreateDefnFields builds and attaches one field per (name, type) tuple.
// It stops at the first failure; fields attached before the failing one
// remain attached.
func (layer *Layer) CreateDefnFields(fields []FieldSpec) error {
	for _, fs := range fields {
		fld, err := NewFieldDefn(fs.Name, fs.Type)
		if err != nil {
			return err
		}
		err = fld.AddToLayer(layer)
		fld.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateFeature builds an empty feature against the layer's schema, attaches
// geom to it and pushes it into the layer.
//
// Ownership of geom always leaves the caller: on success it transfers into
// the created feature, and on any failure the geometry is released. Either
// way geom must not be used afterwards (a further Close is a safe no-op).
func (layer *Layer) CreateFeature(geom *Geometry) error {
	if !layer.ds.alive() {
		geom.Close()
		return ErrDatasetClosed
	}
	feat, err := NewFeature(layer.defn)
	if err != nil {
		geom.Close()
		return err
	}
	defer feat.Close()
	if err := feat.SetGeometry(geom); err != nil {
		return err
	}
	return ogrError(C.OGR_L_CreateFeature(layer.handle, feat.handle), "OGR_L_CreateFeature")
}

// CreateFeatureFields builds a feature with geom, assigns each named field
// its paired value, and creates it in the layer.
//
// Names and values are zipped by position: pairing stops at the shorter of
// the two slices and the excess entries are silently ignored. Field values
// may be int, int64, float64, string or []byte.
//
// On a field-set or creation failure the feature is not created, but fields
// assigned before the failing one are not rolled back within the (discarded)
// feature. Geometry ownership leaves the caller as in CreateFeature.
func (layer *Layer) CreateFeatureFields(geom *Geometry, fieldNames []string, values []any) error {
	if !layer.ds.alive() {
		geom.Close()
		return ErrDatasetClosed
	}
	feat, err := NewFeature(layer.defn)
	if err != nil {
		geom.Close()
		return err
	}
	defer feat.Close()
	if err := feat.SetGeometry(geom); err != nil {
		return err
	}
	n := len(fieldNames)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		if err := feat.SetField(fieldNames[i], values[i]); err != nil {
			return err
		}
	}
	return feat.Create(layer)
}

// FeatureIterator is a single-pass, forward-only sequence over a layer's
// features, produced by Layer.Features.
type FeatureIterator struct {
	layer    *Layer
	epoch    uint64
	sizeHint int
	hasHint  bool
	done     bool
}

// Next returns the next feature in the sequence, or nil when the sequence is
// exhausted or has been superseded by a newer Features call or a filter
// change. The caller owns each returned feature and must Close it.
func (it *FeatureIterator) Next() *Feature {
	if it.done || it.epoch != it.layer.epoch || !it.layer.ds.alive() {
		it.done = true
		return nil
	}
	hndl := C.OGR_L_GetNextFeature(it.layer.handle)
	if hndl == nil {
		it.done = true
		return nil
	}
	return &Feature{handle: hndl, defn: it.layer.defn}
}

// SizeHint returns the cheap feature count taken when the iterator was
// created. It is a hint for allocation sizing only: filter and cursor state
// may invalidate it, so it must not be relied on for correctness. ok is
// false when the driver could not count cheaply.
func (it *FeatureIterator) SizeHint() (n int, ok bool) {
	return it.sizeHint, it.hasHint
}
