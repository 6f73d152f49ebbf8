package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jiocb86/gridflow/contracts"
)

type cellEndpointParams struct {
	SheetID string `uri:"sheet_id" binding:"required"`
	CellID  string `uri:"cell_id" binding:"required"`
}

type sheetEndpointParams struct {
	SheetID string `uri:"sheet_id" binding:"required"`
}

type setCellRequest struct {
	Value string `json:"value"`
}

type subscribeRequest struct {
	WebhookURL string `json:"webhook_url"`
}

// ApiController is the gin handler layer, grounded in the teacher's
// ApiController.go: bind URI/body, delegate to the service, translate
// sentinel errors to HTTP status.
type ApiController struct {
	sheets     contracts.SheetService
	dispatcher contracts.WebhookDispatcher
}

func NewApiController(sheets contracts.SheetService, dispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{sheets: sheets, dispatcher: dispatcher}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := cellEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := api.sheets.GetCell(params.SheetID, params.CellID)
	switch {
	case errors.Is(err, contracts.ErrCellNotFound), errors.Is(err, contracts.ErrSheetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, contracts.ErrInvalidCellID):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := cellEndpointParams{}
	request := setCellRequest{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := api.sheets.SetCell(params.SheetID, params.CellID, request.Value)
	if err != nil {
		if response == nil {
			response = &contracts.CellResponse{Value: request.Value, Result: err.Error()}
		}
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := sheetEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := api.sheets.GetCellList(params.SheetID)
	switch {
	case errors.Is(err, contracts.ErrSheetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, response)
	}
}

// SubscribeAction registers (or, with an empty webhook_url, clears) a
// webhook for a single cell. The cell id is canonicalized the same way
// SheetService canonicalizes it, so the two stay in lock-step.
func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := cellEndpointParams{}
	request := subscribeRequest{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	canonicalCellID := NewCanonicalizer().Canonicalize(params.CellID)
	if err := api.dispatcher.SetWebhookURL(params.SheetID, canonicalCellID, request.WebhookURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"webhook_url": request.WebhookURL})
}

var _ contracts.ApiController = (*ApiController)(nil)
