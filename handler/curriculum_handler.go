package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduquery/eduquery-be/repository"
	"github.com/eduquery/eduquery-be/types"
)

// CurriculumHandler exposes the public catalog lookups: subjects for a
// class, distinct groups, and the subject-to-document resolution.
type CurriculumHandler struct {
	curriculum repository.CurriculumRepo
}

func NewCurriculumHandler(curriculum repository.CurriculumRepo) *CurriculumHandler {
	return &CurriculumHandler{
		curriculum: curriculum,
	}
}

func (h *CurriculumHandler) HandleListSubjects(c *gin.Context) {
	board := c.Query("board")
	class := c.Query("class")
	group := c.Query("group")

	subjects, err := h.curriculum.ListSubjects(c, board, class, group)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrNotFound) {
			status = http.StatusBadRequest
		}
		c.JSON(status, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   subjects,
	})
}

func (h *CurriculumHandler) HandleListGroups(c *gin.Context) {
	board := c.Query("board")
	class := c.Query("class")

	groups, err := h.curriculum.ListGroups(c, board, class)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrNotFound) {
			status = http.StatusBadRequest
		}
		c.JSON(status, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   groups,
	})
}

func (h *CurriculumHandler) HandleSubjectDocument(c *gin.Context) {
	board := c.Query("board")
	class := c.Query("class")
	subject := c.Query("subject")
	group := c.Query("group")

	documentID, err := h.curriculum.FindDocumentID(c, board, class, subject, group)
	if errors.Is(err, types.ErrNotFound) {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "Document not found",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   gin.H{"document_id": documentID},
	})
}
