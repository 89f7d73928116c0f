package app

import (
	"context"

	"github.com/ibmi-tools/savelib/internal/domain"
	"github.com/ibmi-tools/savelib/internal/ports"
	"github.com/ibmi-tools/savelib/pkg/log"
)

// ContainerManager issues the create and delete commands for server-side
// save-file containers. It is a thin wrapper over the command session:
// one command per call, commit on success, rollback on failure, no
// retries.
type ContainerManager struct {
	session ports.Session
	logger  log.Logger
}

// NewContainerManager creates a manager over a borrowed session.
func NewContainerManager(session ports.Session, logger log.Logger) *ContainerManager {
	return &ContainerManager{session: session, logger: logger}
}

// Create creates the save-file container name in library lib with the
// given description (defaulted when empty).
func (m *ContainerManager) Create(ctx context.Context, lib, name domain.Identifier, description string) error {
	cmd, err := domain.CreateSaveFileCommand(lib, name, description)
	if err != nil {
		return err
	}
	if err := m.session.Execute(ctx, cmd); err != nil {
		m.rollback(ctx)
		return err
	}
	return m.session.Commit(ctx)
}

// Remove deletes the save-file container name from library lib.
// Removing a container that does not exist surfaces the host's command
// error; it is not treated as success.
func (m *ContainerManager) Remove(ctx context.Context, lib, name domain.Identifier) error {
	if err := m.session.Execute(ctx, domain.DeleteFileCommand(lib, name)); err != nil {
		m.rollback(ctx)
		return err
	}
	return m.session.Commit(ctx)
}

// rollback abandons the connection transaction, logging rather than
// masking the original command error if the rollback itself fails.
func (m *ContainerManager) rollback(ctx context.Context) {
	if err := m.session.Rollback(ctx); err != nil {
		m.logger.Warn("rollback failed", log.Err(err))
	}
}
