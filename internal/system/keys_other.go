//go:build !linux

package system

import "context"

func WatchKeys(ctx context.Context, logger Logger, codes []uint16, onKey func(code uint16)) {
	if logger != nil {
		logger.Infof("input", "evdev input unsupported on this platform, buttons disabled")
	}
}
