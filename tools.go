//go:build tools

// Code generators invoked through go generate, pinned in go.mod. This file is
// excluded from normal builds by the tools tag.

package main

import (
	_ "go.uber.org/mock/mockgen"
)
