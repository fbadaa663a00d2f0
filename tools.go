//go:build tools

package lz4f

import (
	_ "github.com/dmarkham/enumer"
)
