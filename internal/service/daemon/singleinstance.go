package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning indicates another daemon process owns the session.
var ErrAlreadyRunning = errors.New("another daemon instance is already running")

// ensureSingleInstance scans the process table for another process with the
// same executable name. Two daemons would fight over the snapshot file and
// the listen port, so the younger one refuses to start.
func ensureSingleInstance() error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	executableName := filepath.Base(executable)

	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() == executableName {
			return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, process.Pid())
		}
	}

	return nil
}
