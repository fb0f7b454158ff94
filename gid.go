package probez

import (
	"bytes"
	"runtime"
	"strconv"
)

// GID identifies the goroutine a measurement was taken on. It is opaque to
// the pipeline; visitors render it with String.
type GID uint64

// String returns the decimal form used by the YAML visitor.
func (g GID) String() string {
	return strconv.FormatUint(uint64(g), 10)
}

// CurrentGID returns the id of the calling goroutine, parsed from the
// runtime stack header ("goroutine N [running]:"). Probes call this at
// measurement time; it is exported so events built by hand can carry the
// recording goroutine before RecordEvent.
func CurrentGID() GID {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return GID(id)
}
