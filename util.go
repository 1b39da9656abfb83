package tezosforge

import (
	"fmt"
	"strings"
)

func serializeBoolean(b bool) byte {
	if b {
		return byte(255)
	}
	return byte(0)
}

func deserializeBoolean(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 255:
		return true, nil
	default:
		return false, newForgeErrorStr(ErrInvalidArgument, "bool", fmt.Sprintf("%d", b), fmt.Errorf("not a valid boolean encoding"))
	}
}

// catchOutOfRangeExceptions turns a slice-bounds panic raised while parsing
// attacker-controlled wire bytes into an ordinary error. Any other panic
// value is re-raised: it indicates a bug, not malformed input.
func catchOutOfRangeExceptions(r interface{}) error {
	if strings.Contains(fmt.Sprintf("%s", r), "out of range") {
		return newForgeErrorStr(ErrInvalidArgument, "", "", fmt.Errorf("out of bounds exception while parsing operation"))
	}
	panic(r)
}
