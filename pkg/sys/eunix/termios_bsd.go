//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package eunix

import "golang.org/x/sys/unix"

const (
	getAttrIOCTL      = unix.TIOCGETA
	setAttrDrainIOCTL = unix.TIOCSETAW
)
