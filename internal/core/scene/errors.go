package scene

import "errors"

var ErrUnknownGeometryType = errors.New("unknown geometry type")
