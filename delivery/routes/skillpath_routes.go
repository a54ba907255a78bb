package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillpathservice/delivery/handler"
)

func SkillPathRoutes(router *gin.Engine, skillPathHandler *handler.SkillPathHandler, authMiddleware gin.HandlerFunc) {
	studentRoutes := router.Group("/student")
	{
		studentRoutes.GET("/skill-path", authMiddleware, skillPathHandler.GetSkillPath)
		studentRoutes.POST("/skill-path/refresh", authMiddleware, skillPathHandler.RefreshSkillPath)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
