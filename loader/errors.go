package loader

import "errors"

// ErrLoad is wrapped with %w by every parsing failure in this package,
// whether the input is a plain hex dump or an iNES/NES2.0 image.
var ErrLoad = errors.New("loader: malformed input")
