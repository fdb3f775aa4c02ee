//go:build !unix

package history

import "os"

// Flock is unavailable here; appends stay line-atomic in practice and
// that is the best this platform offers without a lock service.
func lockFile(_ *os.File, _ bool) error { return nil }

func unlockFile(_ *os.File) error { return nil }
