package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moyan78641/memoria/internal/repository"
	"github.com/moyan78641/memoria/internal/service"
)

// MemorialHandler serves memorial CRUD.
type MemorialHandler struct {
	memorials *service.MemorialService
}

func NewMemorialHandler(memorials *service.MemorialService) *MemorialHandler {
	return &MemorialHandler{memorials: memorials}
}

func (h *MemorialHandler) List(c *gin.Context) {
	filter := repository.MemorialFilter{
		Keyword:      c.Query("keyword"),
		MemorialType: c.Query("memorial_type"),
		Group:        c.Query("group"),
	}
	list, err := h.memorials.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MemorialHandler) Groups(c *gin.Context) {
	groups, err := h.memorials.Groups(c.Request.Context())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *MemorialHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	m, err := h.memorials.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "纪念日不存在")
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MemorialHandler) Create(c *gin.Context) {
	var input service.MemorialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	m, err := h.memorials.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *MemorialHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var input service.MemorialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	m, err := h.memorials.Update(c.Request.Context(), id, input)
	if err != nil {
		fail(c, err, "纪念日不存在")
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MemorialHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.memorials.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "纪念日不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
