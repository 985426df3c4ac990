package cli

import (
	"fmt"
	"strconv"
	"strings"
)

type badPositionError struct {
	arg string
}

func (e badPositionError) Error() string {
	return fmt.Sprintf("invalid position: %q (expected a 1-based task number, see `todo list`)", e.arg)
}

// parsePosition turns a positional argument into a 1-based task number.
func parsePosition(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, badPositionError{arg: arg}
	}
	return n, nil
}
