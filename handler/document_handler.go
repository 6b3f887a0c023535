package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduquery/eduquery-be/middleware"
	"github.com/eduquery/eduquery-be/repository"
	"github.com/eduquery/eduquery-be/service"
	"github.com/eduquery/eduquery-be/types"
)

type DocumentHandler struct {
	fileService *service.FileService
	documents   repository.DocumentRepo
}

func NewDocumentHandler(fileService *service.FileService, documents repository.DocumentRepo) *DocumentHandler {
	return &DocumentHandler{
		fileService: fileService,
		documents:   documents,
	}
}

const maxUploadSize = 10 << 20

func (h *DocumentHandler) HandleUpload(c *gin.Context) {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Unauthorized",
		})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "No file uploaded",
		})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File too large",
		})
		return
	}

	documentID, err := h.fileService.UploadAndIngest(c, header, requester)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "User document uploaded successfully",
		Data: types.UploadResponse{
			DocumentID: documentID,
			Filename:   header.Filename,
		},
	})
}

func (h *DocumentHandler) HandleListDocuments(c *gin.Context) {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Unauthorized",
		})
		return
	}

	docs, err := h.documents.ListByOwner(c, requester.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   docs,
	})
}
