package fx

import (
	"league-tracker/internal/config"
	"league-tracker/internal/ddragon"
	"league-tracker/internal/logger"
	"league-tracker/internal/riot"
	"league-tracker/internal/server"
	"league-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// upstream clients
	fx.Provide(riot.NewClient),
	fx.Provide(ddragon.NewCache),
	fx.Provide(
		func(c *riot.Client) service.RiotAPI { return c },
		func(c *ddragon.Cache) service.CatalogSource { return c },
	),
	// svc
	fx.Provide(service.NewReportService),
	fx.Provide(func(s *service.ReportService) server.PlayerReporter { return s }),
	// server
	fx.Provide(server.NewHandler),
)
