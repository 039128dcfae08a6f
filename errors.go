package pvec

import (
	"fmt"
)

var (
	ErrBigValue        = addPrefix("value is too large")
	ErrIndexOutOfRange = addPrefix("index out of range")
	ErrClosed          = addPrefix("vector is closed")

	ErrDirIsUsing   = addPrefix("direction is using")
	ErrNoIOManager  = addPrefix("no io manager")
	ErrLogCorrupted = addPrefix("log file may be corrupted")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("pvec err: %s", errStr)
}
