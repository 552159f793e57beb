//go:build !unix

package launcher

import (
	"errors"
	"runtime"
)

func systemExec(string, []string, []string) error {
	return errors.New("replacing the process image is not supported on " + runtime.GOOS)
}
