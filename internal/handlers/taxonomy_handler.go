package handlers

import (
	"trackify_backend/internal/services"
	"trackify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	*BaseHandler
	taxonomyService services.TaxonomyService
}

func NewTaxonomyHandler(base *BaseHandler, taxonomyService services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{
		BaseHandler:     base,
		taxonomyService: taxonomyService,
	}
}

func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.taxonomyService.CreateCategory(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, category)
}

func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.taxonomyService.ListCategories(h.GetDB(c), c.Query("type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, categories)
}

func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	if err := h.taxonomyService.DeleteCategory(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Category deleted"})
}

func (h *TaxonomyHandler) CreateRoleDefinition(c *gin.Context) {
	var req dto.CreateRoleDefinitionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	role, err := h.taxonomyService.CreateRoleDefinition(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, role)
}

func (h *TaxonomyHandler) ListRoleDefinitions(c *gin.Context) {
	roles, err := h.taxonomyService.ListRoleDefinitions(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, roles)
}

func (h *TaxonomyHandler) DeleteRoleDefinition(c *gin.Context) {
	if err := h.taxonomyService.DeleteRoleDefinition(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Role deleted"})
}
