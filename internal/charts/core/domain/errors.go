package domain

import "errors"

// ErrNothingToRender means the current filter left no aggregate points, so
// there is no chart image to produce.
var ErrNothingToRender = errors.New("no data points to render")
