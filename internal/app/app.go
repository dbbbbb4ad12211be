package app

import (
	"net/http"

	"gorm.io/gorm"

	"squadtab-go/internal/config"
	"squadtab-go/internal/db"
	drinksdomain "squadtab-go/internal/domain/drinks"
	groupsdomain "squadtab-go/internal/domain/groups"
	objectivesdomain "squadtab-go/internal/domain/objectives"
	statsdomain "squadtab-go/internal/domain/stats"
	userdomain "squadtab-go/internal/domain/user"
	"squadtab-go/internal/remote"
	"squadtab-go/internal/repository/inmemory"
	drinksrepo "squadtab-go/internal/repository/postgres/drinks"
	groupsrepo "squadtab-go/internal/repository/postgres/groups"
	objectivesrepo "squadtab-go/internal/repository/postgres/objectives"
	statsrepo "squadtab-go/internal/repository/postgres/stats"
	userrepo "squadtab-go/internal/repository/postgres/user"
	"squadtab-go/internal/transport/httpserver"
	"squadtab-go/internal/transport/httpserver/handler"
	"squadtab-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	var statsRemote statsdomain.Remote
	var groupsRemote groupsdomain.Remote
	functions := remote.NewFunctions(cfg.Supabase.URL, cfg.Supabase.ServiceKey, cfg.Supabase.FunctionTimeout)
	if functions.Configured() {
		statsRemote = functions
		groupsRemote = functions
	} else {
		log.Info("app: edge functions not configured, using local aggregation only")
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	drinks := drinksdomain.NewService(drinksrepo.NewPostgres(dbConn))
	objectives := objectivesdomain.NewService(objectivesrepo.NewPostgres(dbConn))
	stats := statsdomain.NewService(statsrepo.NewPostgres(dbConn), statsRemote, log)

	groupCache := inmemory.NewGroupDataCache(cfg.Groups.CacheTTL)
	groups := groupsdomain.NewService(groupsrepo.NewPostgres(dbConn), groupsRemote, groupCache, log)

	handlers := handler.New(drinks, groups, objectives, stats, users, log)
	router := httpserver.NewRouter(cfg, handlers, users, log)

	return &App{
		cfg:        cfg,
		httpServer: httpserver.New(cfg, router),
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Env() string {
	return a.cfg.Env
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
