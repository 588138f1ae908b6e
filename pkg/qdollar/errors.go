package qdollar

import "errors"

var ErrNoRegisteredGestures = errors.New("no gestures registered for recognition")
