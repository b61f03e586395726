package routes

import (
	"time"

	"school_equipment_lending/app"
	"school_equipment_lending/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	userCtl := controllers.NewUserController(s)
	equipCtl := controllers.NewEquipmentController(s)
	borrowCtl := controllers.NewBorrowController(s)

	authMW := app.AuthRequired(a.Tokens, a.Config)
	adminMW := app.AdminOnly()
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// ------------------------------
	// Accounts (public + own session)
	// ------------------------------
	authPub := r.Group("/api/auth")
	{
		authPub.POST("/register", authCtl.Register)
		authPub.POST("/login", authCtl.Login)
	}
	authPriv := r.Group("/api/auth", authMW, seenMW)
	{
		authPriv.POST("/logout", authCtl.Logout)
		authPriv.GET("/me", authCtl.Me)
	}

	// ------------------------------
	// User management (admin only)
	// ------------------------------
	users := r.Group("/api/users", authMW, adminMW)
	{
		users.GET("", userCtl.ListUsers) // ?q=&page=&size=
		users.GET("/:id", userCtl.GetUser)
		users.PUT("/:id/role", userCtl.SetRole)
		users.DELETE("/:id", userCtl.DeleteUser)
	}

	// ------------------------------
	// Equipment ledger
	// ------------------------------
	equipment := r.Group("/api/equipment", authMW, seenMW)
	{
		equipment.GET("", equipCtl.ListEquipment) // ?q=&category=&page=&size=
		equipment.GET("/:id", equipCtl.GetEquipment)
	}
	equipmentAdmin := r.Group("/api/equipment", authMW, adminMW)
	{
		equipmentAdmin.POST("", equipCtl.CreateEquipment)
		equipmentAdmin.PUT("/:id", equipCtl.UpdateEquipment)
		equipmentAdmin.DELETE("/:id", equipCtl.DeleteEquipment)
	}

	// ------------------------------
	// Borrow requests
	// ------------------------------
	requests := r.Group("/api/requests", authMW, seenMW)
	{
		requests.POST("", borrowCtl.CreateRequest)
		requests.GET("/mine", borrowCtl.ListMyRequests) // ?status=&page=&size=
		requests.GET("/:id", borrowCtl.GetRequest)
	}
	requestsAdmin := r.Group("/api/requests", authMW, adminMW)
	{
		requestsAdmin.GET("", borrowCtl.ListRequests) // ?requesterId=&equipmentId=&status=
		requestsAdmin.POST("/:id/approve", borrowCtl.Approve)
		requestsAdmin.POST("/:id/reject", borrowCtl.Reject)
		requestsAdmin.POST("/:id/return", borrowCtl.MarkReturned)
	}

	// Decision audit trail (admin only)
	audit := r.Group("/api/audit", authMW, adminMW)
	{
		audit.GET("", borrowCtl.ListAuditLogs) // ?requestId=&page=&size=
	}
}
