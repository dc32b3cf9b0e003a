package lxd

import "errors"

var (
	ErrCommand   = errors.New("lxc command failed")
	ErrParse     = errors.New("unexpected lxc output")
	ErrDestroyed = errors.New("handle is destroyed")
)
