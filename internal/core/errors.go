package core

import "errors"

// ErrParse marks malformed grid or rule text. Construction fails as a whole;
// no partial value is produced.
var ErrParse = errors.New("parse error")

// ErrShape marks structurally invalid grid arithmetic: a pixel count that is
// not a perfect square, mismatched sub-grid sizes, or out-of-bounds
// coordinates. It indicates a programming or configuration defect, not a
// transient condition.
var ErrShape = errors.New("shape error")
