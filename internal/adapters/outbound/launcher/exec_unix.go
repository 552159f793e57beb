//go:build unix

package launcher

import "syscall"

func systemExec(argv0 string, argv []string, envv []string) error {
	return syscall.Exec(argv0, argv, envv)
}
