package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduquery/eduquery-be/middleware"
	"github.com/eduquery/eduquery-be/service"
	"github.com/eduquery/eduquery-be/types"
)

type AskHandler struct {
	answerService *service.AnswerService
}

func NewAskHandler(answerService *service.AnswerService) *AskHandler {
	return &AskHandler{
		answerService: answerService,
	}
}

// HandleAsk answers a question from the syllabus document matching the
// requester's profile and the requested subject.
func (h *AskHandler) HandleAsk(c *gin.Context) {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Unauthorized",
		})
		return
	}

	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Subject == "" || req.Query == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "subject and query are required",
		})
		return
	}

	result, err := h.answerService.AnswerSubject(c, requester, req.Subject, req.Query)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   result,
	})
}

// HandleAskDocument answers a question from one of the requester's own
// uploaded documents.
func (h *AskHandler) HandleAskDocument(c *gin.Context) {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Unauthorized",
		})
		return
	}

	var req types.AskDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DocumentID == "" || req.Query == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "document_id and query are required",
		})
		return
	}

	result, err := h.answerService.AnswerUserDocument(c, types.AnswerRequest{
		DocumentID: req.DocumentID,
		Question:   req.Query,
		Requester:  requester,
	})
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   result,
	})
}
