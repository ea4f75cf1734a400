package serrors

import "fmt"

func format(msgFmt string, args []any) string {
	if len(args) == 0 {
		return msgFmt
	}

	return fmt.Sprintf(msgFmt, args...)
}
