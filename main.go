package main

import (
	"context"
	"log"
	"os"

	"school_equipment_lending/app"
	"school_equipment_lending/controllers"
	"school_equipment_lending/routes"
)

func main() {
	app.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	// Seed the first admin account on a fresh database.
	srv := controllers.GetSrv(application)
	app.BootstrapFirstAdmin(context.Background(), application.Config, srv.Repo)

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
