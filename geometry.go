package ogr

/*
#include "ogr_api.h"
#include "cpl_conv.h"
#include <stdlib.h>

#cgo pkg-config: gdal
*/
import "C"
import "unsafe"

// GeometryType is a geometry type
type GeometryType uint32

const (
	// GTUnknown is a GeometryType
	GTUnknown = GeometryType(C.wkbUnknown)
	// GTPoint is a GeometryType
	GTPoint = GeometryType(C.wkbPoint)
	// GTLineString is a GeometryType
	GTLineString = GeometryType(C.wkbLineString)
	// GTPolygon is a GeometryType
	GTPolygon = GeometryType(C.wkbPolygon)
	// GTMultiPoint is a GeometryType
	GTMultiPoint = GeometryType(C.wkbMultiPoint)
	// GTMultiLineString is a GeometryType
	GTMultiLineString = GeometryType(C.wkbMultiLineString)
	// GTMultiPolygon is a GeometryType
	GTMultiPolygon = GeometryType(C.wkbMultiPolygon)
	// GTGeometryCollection is a GeometryType
	GTGeometryCollection = GeometryType(C.wkbGeometryCollection)
	// GTNone is a GeometryType
	GTNone = GeometryType(C.wkbNone)
)

// Geometry wraps an OGRGeometryH.
//
// A Geometry constructed by this package owns its handle and must be closed
// exactly once, unless ownership is transferred to a feature at one of the
// documented transfer points, after which the wrapper is inert. Geometries
// borrowed from a feature do not own their handle and Close is a no-op.
type Geometry struct {
	isOwned bool
	handle  C.OGRGeometryH
}

// NewGeometryFromWKT creates a geometry from its WKT representation.
func NewGeometryFromWKT(wkt string, sr *SpatialRef) (*Geometry, error) {
	if err := checkNoNul("OGR_G_CreateFromWkt", wkt); err != nil {
		return nil, err
	}
	srHandle := C.OGRSpatialReferenceH(nil)
	if sr != nil {
		srHandle = sr.handle
	}
	cwkt := C.CString(wkt)
	defer C.free(unsafe.Pointer(cwkt))
	// OGR_G_CreateFromWkt advances the input pointer, so give it a copy
	input := cwkt
	var hndl C.OGRGeometryH
	rv := C.OGR_G_CreateFromWkt(&input, srHandle, &hndl)
	if rv != C.OGRERR_NONE {
		return nil, ogrError(rv, "OGR_G_CreateFromWkt")
	}
	return &Geometry{isOwned: true, handle: hndl}, nil
}

// NewGeometryFromWKB creates a geometry from its WKB representation.
func NewGeometryFromWKB(wkb []byte, sr *SpatialRef) (*Geometry, error) {
	if len(wkb) == 0 {
		return nil, &OGRError{Code: int(C.OGRERR_NOT_ENOUGH_DATA), Method: "OGR_G_CreateFromWkb"}
	}
	srHandle := C.OGRSpatialReferenceH(nil)
	if sr != nil {
		srHandle = sr.handle
	}
	var hndl C.OGRGeometryH
	rv := C.OGR_G_CreateFromWkb(unsafe.Pointer(&wkb[0]), srHandle, &hndl, C.int(len(wkb)))
	if rv != C.OGRERR_NONE {
		return nil, ogrError(rv, "OGR_G_CreateFromWkb")
	}
	return &Geometry{isOwned: true, handle: hndl}, nil
}

// WKT returns the geometry's WKT representation.
func (g *Geometry) WKT() (string, error) {
	if g.handle == nil {
		return "", lastNullPointerErr("OGR_G_ExportToWkt")
	}
	var cwkt *C.char
	rv := C.OGR_G_ExportToWkt(g.handle, &cwkt)
	if rv != C.OGRERR_NONE {
		return "", ogrError(rv, "OGR_G_ExportToWkt")
	}
	wkt := C.GoString(cwkt)
	C.CPLFree(unsafe.Pointer(cwkt))
	return wkt, nil
}

// WKB returns the geometry's WKB representation in little-endian byte order.
func (g *Geometry) WKB() ([]byte, error) {
	if g.handle == nil {
		return nil, lastNullPointerErr("OGR_G_ExportToWkb")
	}
	size := int(C.OGR_G_WkbSize(g.handle))
	buf := make([]byte, size)
	rv := C.OGR_G_ExportToWkb(g.handle, C.wkbNDR, (*C.uchar)(unsafe.Pointer(&buf[0])))
	if rv != C.OGRERR_NONE {
		return nil, ogrError(rv, "OGR_G_ExportToWkb")
	}
	return buf, nil
}

// Type returns the geometry type.
func (g *Geometry) Type() GeometryType {
	if g.handle == nil {
		return GTUnknown
	}
	return GeometryType(C.OGR_G_GetGeometryType(g.handle))
}

// Empty returns true if the geometry is empty
func (g *Geometry) Empty() bool {
	return C.OGR_G_IsEmpty(g.handle) != 0
}

// Equals tests the two geometries for equality under the engine's own
// equality semantics.
func (g *Geometry) Equals(other *Geometry) bool {
	if g.handle == nil || other == nil || other.handle == nil {
		return false
	}
	return C.OGR_G_Equals(g.handle, other.handle) != 0
}

// Envelope returns the geometry's bounding box.
func (g *Geometry) Envelope() Envelope {
	var env C.OGREnvelope
	C.OGR_G_GetEnvelope(g.handle, &env)
	return envelopeFromC(&env)
}

// relinquish hands the raw handle to a callee that takes ownership. The
// wrapper is inert afterwards: Close becomes a no-op.
func (g *Geometry) relinquish() C.OGRGeometryH {
	hndl := g.handle
	g.handle = nil
	g.isOwned = false
	return hndl
}

// Close may reclaim memory from the geometry. Safe to call more than once,
// and a no-op for borrowed or transferred geometries.
func (g *Geometry) Close() {
	if g.handle == nil {
		return
	}
	if g.isOwned {
		C.OGR_G_DestroyGeometry(g.handle)
	}
	g.handle = nil
}
