package ogr

/*
#include "ogr_srs_api.h"
#include "cpl_conv.h"
#include <stdlib.h>

#cgo pkg-config: gdal
*/
import "C"
import "unsafe"

// SpatialRef wraps an OGRSpatialReferenceH. References returned by layers
// are borrowed from the engine and need no Close; references created through
// the package constructors are owned and must be closed exactly once.
type SpatialRef struct {
	handle  C.OGRSpatialReferenceH
	isOwned bool
}

// NewSpatialRefFromEPSG creates a SpatialRef from an EPSG code.
func NewSpatialRefFromEPSG(code int) (*SpatialRef, error) {
	hndl := C.OSRNewSpatialReference(nil)
	if hndl == nil {
		return nil, lastNullPointerErr("OSRNewSpatialReference")
	}
	rv := C.OSRImportFromEPSG(hndl, C.int(code))
	if rv != C.OGRERR_NONE {
		C.OSRRelease(hndl)
		return nil, ogrError(rv, "OSRImportFromEPSG")
	}
	return &SpatialRef{handle: hndl, isOwned: true}, nil
}

// WKT returns the spatial reference in WKT form.
func (sr *SpatialRef) WKT() (string, error) {
	if sr.handle == nil {
		return "", lastNullPointerErr("OSRExportToWkt")
	}
	var cwkt *C.char
	rv := C.OSRExportToWkt(sr.handle, &cwkt)
	if rv != C.OGRERR_NONE {
		return "", ogrError(rv, "OSRExportToWkt")
	}
	wkt := C.GoString(cwkt)
	C.CPLFree(unsafe.Pointer(cwkt))
	return wkt, nil
}

// AuthorityCode returns the authority code of the root node (e.g. "4326"),
// or "" if not set.
func (sr *SpatialRef) AuthorityCode() string {
	if sr.handle == nil {
		return ""
	}
	ccode := C.OSRGetAuthorityCode(sr.handle, nil)
	if ccode == nil {
		return ""
	}
	return C.GoString(ccode)
}

// IsSame reports whether the two references describe the same system.
func (sr *SpatialRef) IsSame(other *SpatialRef) bool {
	if sr.handle == nil || other == nil || other.handle == nil {
		return false
	}
	return C.OSRIsSame(sr.handle, other.handle) != 0
}

// Close releases owned memory. Safe to call more than once, and a no-op for
// borrowed references.
func (sr *SpatialRef) Close() {
	if sr.handle == nil {
		return
	}
	if sr.isOwned {
		C.OSRRelease(sr.handle)
	}
	sr.handle = nil
}
