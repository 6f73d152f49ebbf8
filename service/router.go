package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jiocb86/gridflow/contracts"
)

const apiVersion = "v1"
const subscribePath = "subscribe"

// SetupRouter wires the gin routes, dropping the teacher's
// externalRefWebhook route along with the formula function it served.
func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/" + apiVersion)
	api.POST("/:sheet_id/:cell_id/"+subscribePath, controller.SubscribeAction)
	api.POST("/:sheet_id/:cell_id", controller.SetCellAction)
	api.GET("/:sheet_id/:cell_id", controller.GetCellAction)
	api.GET("/:sheet_id", controller.GetSheetAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
