package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/schedtools/st/internal/runner"
)

// schedulerAdapter shells out to the scheduler binary:
// prog <input-file> <quantum> [extra...] [pass-through...].
func schedulerAdapter(prog string, passThrough []string) runner.Adapter {
	return func(path, quantum string, extra ...string) (string, error) {
		argv := append([]string{path, quantum}, extra...)
		argv = append(argv, passThrough...)
		out, err := exec.Command(prog, argv...).Output()
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
				return "", fmt.Errorf("%w: %s", err, bytes.TrimSpace(exitErr.Stderr))
			}
			return "", err
		}
		return string(out), nil
	}
}
