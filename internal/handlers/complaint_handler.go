package handlers

import (
	"mime/multipart"

	"trackify_backend/internal/services"
	"trackify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	*BaseHandler
	complaintService services.ComplaintService
}

func NewComplaintHandler(base *BaseHandler, complaintService services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		BaseHandler:      base,
		complaintService: complaintService,
	}
}

// Create accepts either a JSON body or a multipart form with an
// "attachments" file field.
func (h *ComplaintHandler) Create(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateComplaintRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["attachments"]
	}

	complaint, err := h.complaintService.Create(c.Request.Context(), h.GetDB(c), actor, &req, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, complaint)
}

func (h *ComplaintHandler) List(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var query dto.ListComplaintsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	complaints, err := h.complaintService.List(c.Request.Context(), h.GetDB(c), actor, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, complaints)
}

func (h *ComplaintHandler) Get(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	complaint, err := h.complaintService.Get(c.Request.Context(), h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, complaint)
}

func (h *ComplaintHandler) Update(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateComplaintRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	complaint, err := h.complaintService.Update(c.Request.Context(), h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, complaint)
}

func (h *ComplaintHandler) Stats(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	counts, err := h.complaintService.Stats(c.Request.Context(), h.GetDB(c), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, counts)
}

func (h *ComplaintHandler) UpdateProgress(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.ProgressUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	complaint, err := h.complaintService.UpdateProgress(c.Request.Context(), h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, complaint)
}
