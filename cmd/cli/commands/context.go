package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/mgoodall/innkeeper/internal/config"
	"github.com/mgoodall/innkeeper/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}
