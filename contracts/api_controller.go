package contracts

import "github.com/gin-gonic/gin"

// ApiController is the gin handler surface. ExternalRefWebhookAction from
// the teacher's version is dropped along with the formula function it
// backed (see DESIGN.md).
type ApiController interface {
	SetCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
