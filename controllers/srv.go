package controllers

import (
	"school_equipment_lending/app"
	"school_equipment_lending/db"
	"school_equipment_lending/session"
)

// Srv bundles the dependencies every controller needs.
type Srv struct {
	Repo   *db.Repo
	Tokens *session.TokenStore
	Cfg    app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:   db.NewRepo(a.DB),
		Tokens: a.Tokens,
		Cfg:    a.Config,
	}
}
