package handler

import (
	drinksdomain "squadtab-go/internal/domain/drinks"
	groupsdomain "squadtab-go/internal/domain/groups"
	objectivesdomain "squadtab-go/internal/domain/objectives"
	statsdomain "squadtab-go/internal/domain/stats"
	userdomain "squadtab-go/internal/domain/user"
	"squadtab-go/pkg/logger"
)

type Handlers struct {
	Drinks     *drinksdomain.Service
	Groups     *groupsdomain.Service
	Objectives *objectivesdomain.Service
	Stats      *statsdomain.Service
	Users      *userdomain.Service

	log logger.Logger
}

func New(drinks *drinksdomain.Service, groups *groupsdomain.Service, objectives *objectivesdomain.Service, stats *statsdomain.Service, users *userdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Drinks:     drinks,
		Groups:     groups,
		Objectives: objectives,
		Stats:      stats,
		Users:      users,
		log:        log,
	}
}
