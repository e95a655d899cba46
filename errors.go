package ogr

/*
#include "cpl_error.h"
#include "ogr_core.h"

#cgo pkg-config: gdal
*/
import "C"
import (
	"errors"
	"fmt"
	"strings"
)

// ErrDatasetClosed is returned by any layer operation attempted after the
// owning dataset has been closed. The underlying OGRLayerH is invalidated by
// GDALClose, so the wrapper refuses to touch it.
var ErrDatasetClosed = errors.New("ogr: owning dataset is closed")

// ErrInvalidFieldName is returned when setting a field that does not exist
// in the feature's schema.
var ErrInvalidFieldName = errors.New("ogr: no such field")

// ErrInvalidFieldValue is returned when a field value has a Go type the
// binding cannot map onto an OGR field type.
var ErrInvalidFieldValue = errors.New("ogr: unsupported field value type")

// OGRError is a non-success status code reported by the engine, tagged with
// the C entry point that produced it.
type OGRError struct {
	Code   int
	Method string
}

func (e *OGRError) Error() string {
	return fmt.Sprintf("ogr: %s returned error %d", e.Method, e.Code)
}

func ogrError(code C.OGRErr, method string) error {
	if code == C.OGRERR_NONE {
		return nil
	}
	return &OGRError{Code: int(code), Method: method}
}

// NullPointerError is returned when the engine hands back a null handle from
// a call that has no separate error channel. Msg carries whatever the engine
// left in its error buffer, which may be empty.
type NullPointerError struct {
	Method string
	Msg    string
}

func (e *NullPointerError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("ogr: %s returned a null pointer", e.Method)
	}
	return fmt.Sprintf("ogr: %s returned a null pointer: %s", e.Method, e.Msg)
}

// lastNullPointerErr drains CPLGetLastErrorMsg so a stale message cannot be
// attributed to a later call.
func lastNullPointerErr(method string) error {
	msg := C.GoString(C.CPLGetLastErrorMsg())
	C.CPLErrorReset()
	return &NullPointerError{Method: method, Msg: strings.TrimSpace(msg)}
}

// InvalidStringError is returned when a caller-supplied string contains an
// embedded NUL byte and therefore cannot cross the C boundary intact. It is
// raised before the engine is called.
type InvalidStringError struct {
	Method string
	Value  string
}

func (e *InvalidStringError) Error() string {
	return fmt.Sprintf("ogr: %s: string contains an embedded NUL byte", e.Method)
}

func checkNoNul(method, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return &InvalidStringError{Method: method, Value: s}
	}
	return nil
}
