package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/mossleaf/homeops/internal/app/api/server"
	"github.com/mossleaf/homeops/internal/app/service/dashboard"
	"github.com/mossleaf/homeops/internal/app/service/document"
	"github.com/mossleaf/homeops/internal/app/service/household"
	"github.com/mossleaf/homeops/internal/app/service/inventory"
	"github.com/mossleaf/homeops/internal/app/service/parcel"
	"github.com/mossleaf/homeops/internal/app/service/track"
	"github.com/mossleaf/homeops/internal/platform/db"
	"github.com/mossleaf/homeops/pkg/config"
	"github.com/mossleaf/homeops/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	household.Module,
	track.Module,
	inventory.Module,
	document.Module,
	dashboard.Module,
	parcel.Module,
)
