package installer

import (
	"context"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/harehare/mq-task/internal/logger"
)

// warnIfRunning logs a warning when the tool being installed is currently
// running. Advisory only: an installer must not kill user processes, and a
// running binary does not block placement (go-update renames the old file).
func (i *Installer) warnIfRunning(ctx context.Context) {
	processes, err := ps.Processes()
	if err != nil {
		logger.Debugf(ctx, "Process scan failed: %v", err)
		return
	}

	for _, proc := range processes {
		name := strings.TrimSuffix(proc.Executable(), ".exe")
		if name == i.cfg.CommandName {
			logger.Warnf(ctx, "%s is currently running (pid %d); restart it after the install completes", i.cfg.CommandName, proc.Pid())
			return
		}
	}
}
