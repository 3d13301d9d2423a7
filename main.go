package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/openprocure/portal-go/config"
	"github.com/openprocure/portal-go/db"
	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/middleware"
	"github.com/openprocure/portal-go/minio"
	"github.com/openprocure/portal-go/routes"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	minio.Init()
	dto.RegisterValidators()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
