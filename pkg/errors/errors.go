package errorutils

import "errors"

func Try(err error) {
	if err != nil {
		panic(err)
	}
}

// ExitCode returns the code of the first target err matches, 0 for a nil err
// and 1 otherwise.
func ExitCode(err error, codes map[error]int) int {
	if err == nil {
		return 0
	}
	for target, code := range codes {
		if errors.Is(err, target) {
			return code
		}
	}
	return 1
}
