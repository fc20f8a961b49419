package main

import (
	"log"
	"strings"

	"api/config"
	"api/database"
	"api/middleware"
	v1 "api/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Enrollment Quota API
// @version 1.0
// @description API for tracking student enrollment into specialty programs with per-program quotas
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
    config.LoadEnv()
    gin.SetMode(config.GinMode)

    database.InitDB()
    database.InitRedis()

    r := gin.Default()

    r.Use(cors.New(cors.Config{
        AllowOrigins:     strings.Split(config.CorsOrigins, ","),
        AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
        AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
        AllowCredentials: true,
    }))

    v1.Register(r)
    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    middleware.UpdateSystemMetrics()

    log.Println("Starting server on port " + config.ServerPort)
    log.Fatal(r.Run(":" + config.ServerPort))
}
