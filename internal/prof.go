// Package internal holds helpers shared by igvsession commands.
package internal

import (
	"os"
	"runtime/pprof"

	"go.uber.org/zap"
)

// StartCPUProf starts a CPU profile written to path.
//
// The returned function stops profiling and closes the profile.
func StartCPUProf(path string, l *zap.Logger) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err = pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			l.Warn("closing cpu profile", zap.String("path", path), zap.Error(err))
		}
	}, nil
}
