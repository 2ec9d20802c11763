package handler

import (
	"net/http"
	"strconv"

	"Echo_Board/internal/middleware"
	"Echo_Board/internal/pkg"
	"Echo_Board/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminReplyHandler struct {
	svc *service.AdminReplyService
}

type CreateReplyReq struct {
	Content string `json:"content"`
	PostID  uint64 `json:"postId"`
}

func NewAdminReplyHandler(db *gorm.DB, producer *pkg.KafkaProducer) *AdminReplyHandler {
	return &AdminReplyHandler{
		svc: service.NewAdminReplyService(db, producer),
	}
}

// CreateReply 发布官方回复，路由层已限定管理员
func (h *AdminReplyHandler) CreateReply(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateReplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	reply, err := h.svc.CreateReply(user, req.PostID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "admin reply created successfully",
		"adminReply": reply,
	})
}

// ListByPost 某帖子的官方回复
func (h *AdminReplyHandler) ListByPost(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	replies, err := h.svc.ListByPost(postID, page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"adminReplies": replies})
}

// DeleteReply 发布者或任一管理员可删
func (h *AdminReplyHandler) DeleteReply(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteReply(id, user); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "admin reply deleted successfully"})
}
