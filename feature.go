package ogr

/*
#include "ogr_api.h"
#include <stdlib.h>

#cgo pkg-config: gdal
*/
import "C"
import "unsafe"

// Feature is one layer record: a geometry plus named attribute values,
// conforming to the layer's schema. A Feature owns its engine handle and
// must be released with Close exactly once.
type Feature struct {
	handle C.OGRFeatureH
	defn   *Defn
}

// NewFeature builds an empty feature against a layer's schema descriptor.
// The feature exists detached from any layer until passed to Create.
func NewFeature(defn *Defn) (*Feature, error) {
	hndl := C.OGR_F_Create(defn.handle)
	if hndl == nil {
		return nil, lastNullPointerErr("OGR_F_Create")
	}
	return &Feature{handle: hndl, defn: defn}, nil
}

// FID returns the feature identifier.
func (f *Feature) FID() int64 {
	return int64(C.OGR_F_GetFID(f.handle))
}

// SetFID sets the feature identifier.
func (f *Feature) SetFID(fid int64) {
	// the OGR error returned here is always none
	C.OGR_F_SetFID(f.handle, C.GIntBig(fid))
}

// Geometry returns a borrowed reference to the feature's geometry. The
// returned Geometry is owned by the feature; closing it is a no-op.
func (f *Feature) Geometry() *Geometry {
	hndl := C.OGR_F_GetGeometryRef(f.handle)
	return &Geometry{isOwned: false, handle: hndl}
}

// SetGeometry attaches geom to the feature, transferring ownership.
//
// The transfer happens before the engine reports success or failure: in
// both cases geom's handle is relinquished, so it is never leaked nor freed
// twice, and must not be used afterwards.
func (f *Feature) SetGeometry(geom *Geometry) error {
	hndl := geom.relinquish()
	return ogrError(C.OGR_F_SetGeometryDirectly(f.handle, hndl), "OGR_F_SetGeometryDirectly")
}

// SetField assigns the named field. value may be an int, int64, float64,
// string or []byte; anything else, or a name absent from the schema, is an
// error.
func (f *Feature) SetField(name string, value any) error {
	if err := checkNoNul("OGR_F_GetFieldIndex", name); err != nil {
		return err
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	idx := C.OGR_F_GetFieldIndex(f.handle, cname)
	if idx < 0 {
		return ErrInvalidFieldName
	}
	switch v := value.(type) {
	case int:
		C.OGR_F_SetFieldInteger64(f.handle, idx, C.GIntBig(v))
	case int64:
		C.OGR_F_SetFieldInteger64(f.handle, idx, C.GIntBig(v))
	case float64:
		C.OGR_F_SetFieldDouble(f.handle, idx, C.double(v))
	case string:
		if err := checkNoNul("OGR_F_SetFieldString", v); err != nil {
			return err
		}
		cval := C.CString(v)
		defer C.free(unsafe.Pointer(cval))
		C.OGR_F_SetFieldString(f.handle, idx, cval)
	case []byte:
		if len(v) == 0 {
			return nil
		}
		C.OGR_F_SetFieldBinary(f.handle, idx, C.int(len(v)), unsafe.Pointer(&v[0]))
	default:
		return ErrInvalidFieldValue
	}
	return nil
}

// Create pushes the feature into layer. The feature itself remains owned by
// the caller (the engine copies it) and must still be closed.
func (f *Feature) Create(layer *Layer) error {
	if !layer.ds.alive() {
		return ErrDatasetClosed
	}
	return ogrError(C.OGR_L_CreateFeature(layer.handle, f.handle), "OGR_L_CreateFeature")
}

// Close releases the feature. Safe to call more than once.
func (f *Feature) Close() {
	if f.handle == nil {
		return
	}
	C.OGR_F_Destroy(f.handle)
	f.handle = nil
}

// Field is one attribute value read from a feature.
type Field struct {
	Index int
	Name  string
	Type  FieldType
	isSet bool
	val   any
}

// IsSet reports whether the field has ever been assigned a value.
func (fld *Field) IsSet() bool { return fld.isSet }

// Value returns the field value as read from the feature: int for 32bit
// integers, int64, float64, string or []byte depending on the field type.
// Date and time fields are returned in the engine's string form.
func (fld *Field) Value() any { return fld.val }

// Fields represent all of a feature's attributes
type Fields []Field

// Fields reads all attribute values of the feature.
func (f *Feature) Fields() Fields {
	fcount := C.OGR_F_GetFieldCount(f.handle)
	if fcount == 0 {
		return nil
	}
	fields := make(Fields, int(fcount))
	for fid := C.int(0); fid < fcount; fid++ {
		fdefn := C.OGR_F_GetFieldDefnRef(f.handle, fid)
		fld := Field{
			Index: int(fid),
			Name:  C.GoString(C.OGR_Fld_GetNameRef(fdefn)),
			Type:  FieldType(C.OGR_Fld_GetType(fdefn)),
			isSet: C.OGR_F_IsFieldSet(f.handle, fid) != 0,
		}
		switch fld.Type {
		case FTInt:
			fld.val = int(C.OGR_F_GetFieldAsInteger(f.handle, fid))
		case FTInt64:
			fld.val = int64(C.OGR_F_GetFieldAsInteger64(f.handle, fid))
		case FTReal:
			fld.val = float64(C.OGR_F_GetFieldAsDouble(f.handle, fid))
		case FTBinary:
			var length C.int
			cbytes := C.OGR_F_GetFieldAsBinary(f.handle, fid, &length)
			if cbytes != nil {
				fld.val = C.GoBytes(unsafe.Pointer(cbytes), length)
			}
		default:
			fld.val = C.GoString(C.OGR_F_GetFieldAsString(f.handle, fid))
		}
		fields[int(fid)] = fld
	}
	return fields
}

// GetByName returns the field with the given name, or nil if absent.
func (flds Fields) GetByName(name string) *Field {
	for i := range flds {
		if flds[i].Name == name {
			return &flds[i]
		}
	}
	return nil
}
