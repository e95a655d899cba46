package ogr

/*
#include "ogr_api.h"
#include <stdlib.h>

#cgo pkg-config: gdal
*/
import "C"
import "unsafe"

// FieldType is a vector field (attribute/column) type
type FieldType C.OGRFieldType

const (
	// FTInt is a simple 32bit integer
	FTInt = FieldType(C.OFTInteger)
	// FTReal is a double precision floating point
	FTReal = FieldType(C.OFTReal)
	// FTString is a string of ASCII chars
	FTString = FieldType(C.OFTString)
	// FTInt64 is a single 64bit integer
	FTInt64 = FieldType(C.OFTInteger64)
	// FTBinary is raw binary data
	FTBinary = FieldType(C.OFTBinary)
	// FTDate is a date
	FTDate = FieldType(C.OFTDate)
	// FTTime is a time
	FTTime = FieldType(C.OFTTime)
	// FTDateTime is a date and time
	FTDateTime = FieldType(C.OFTDateTime)
)

// FieldSpec is a (name, type) tuple for bulk field creation.
type FieldSpec struct {
	Name string
	Type FieldType
}

// FieldInfo describes one attribute field of a layer schema.
type FieldInfo struct {
	Name      string
	Type      FieldType
	Width     int
	Precision int
}

// GeomFieldInfo describes one geometry field of a layer schema.
type GeomFieldInfo struct {
	Name string
	Type GeometryType
}

// Defn is a layer's schema descriptor: its ordered attribute fields and
// geometry fields.
//
// The underlying handle is fetched exactly once, when the Layer wrapper is
// constructed, and is shared by reference with every Feature read from the
// layer. Field queries go through that live handle, so fields added through
// the wrapper itself are visible, but a schema replaced out-of-band by the
// engine is not re-synced.
type Defn struct {
	handle C.OGRFeatureDefnH
}

// FieldCount returns the number of attribute fields.
func (d *Defn) FieldCount() int {
	return int(C.OGR_FD_GetFieldCount(d.handle))
}

// Fields returns the ordered attribute field descriptors.
func (d *Defn) Fields() []FieldInfo {
	n := d.FieldCount()
	fields := make([]FieldInfo, n)
	for i := 0; i < n; i++ {
		fdefn := C.OGR_FD_GetFieldDefn(d.handle, C.int(i))
		fields[i] = FieldInfo{
			Name:      C.GoString(C.OGR_Fld_GetNameRef(fdefn)),
			Type:      FieldType(C.OGR_Fld_GetType(fdefn)),
			Width:     int(C.OGR_Fld_GetWidth(fdefn)),
			Precision: int(C.OGR_Fld_GetPrecision(fdefn)),
		}
	}
	return fields
}

// GeomFields returns the ordered geometry field descriptors.
func (d *Defn) GeomFields() []GeomFieldInfo {
	n := int(C.OGR_FD_GetGeomFieldCount(d.handle))
	fields := make([]GeomFieldInfo, n)
	for i := 0; i < n; i++ {
		gdefn := C.OGR_FD_GetGeomFieldDefn(d.handle, C.int(i))
		fields[i] = GeomFieldInfo{
			Name: C.GoString(C.OGR_GFld_GetNameRef(gdefn)),
			Type: GeometryType(C.OGR_GFld_GetType(gdefn)),
		}
	}
	return fields
}

// FieldDefn is a detached, owned field descriptor. It exists independently
// of any layer until attached with AddToLayer, and must be released with
// Close exactly once regardless of attachment: the engine copies the
// definition on attach, it never takes ownership of this handle.
type FieldDefn struct {
	handle C.OGRFieldDefnH
}

// NewFieldDefn creates a detached field descriptor.
func NewFieldDefn(name string, ftype FieldType) (*FieldDefn, error) {
	if err := checkNoNul("OGR_Fld_Create", name); err != nil {
		return nil, err
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	hndl := C.OGR_Fld_Create(cname, C.OGRFieldType(ftype))
	if hndl == nil {
		return nil, lastNullPointerErr("OGR_Fld_Create")
	}
	return &FieldDefn{handle: hndl}, nil
}

// SetWidth sets the formatting width. No validation beyond the engine's.
func (fld *FieldDefn) SetWidth(width int) {
	C.OGR_Fld_SetWidth(fld.handle, C.int(width))
}

// SetPrecision sets the formatting precision. No validation beyond the
// engine's.
func (fld *FieldDefn) SetPrecision(precision int) {
	C.OGR_Fld_SetPrecision(fld.handle, C.int(precision))
}

// AddToLayer copies the field definition into the layer's schema. Fails
// with an engine error if the layer rejects the field (CreateField
// capability missing, duplicate name, read-only driver). The descriptor
// keeps its own lifetime and must still be closed by its owner.
func (fld *FieldDefn) AddToLayer(layer *Layer) error {
	if !layer.ds.alive() {
		return ErrDatasetClosed
	}
	return ogrError(C.OGR_L_CreateField(layer.handle, fld.handle, 1), "OGR_L_CreateField")
}

// Close releases the descriptor. Safe to call more than once.
func (fld *FieldDefn) Close() {
	if fld.handle == nil {
		return
	}
	C.OGR_Fld_Destroy(fld.handle)
	fld.handle = nil
}
