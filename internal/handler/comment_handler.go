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

type CommentHandler struct {
	svc *service.CommentService
}

type CreateCommentReq struct {
	Content string `json:"content"`
	PostID  uint64 `json:"postId"`
}

func NewCommentHandler(db *gorm.DB, producer *pkg.KafkaProducer) *CommentHandler {
	return &CommentHandler{
		svc: service.NewCommentService(db, producer),
	}
}

// CreateComment 发表评论
func (h *CommentHandler) CreateComment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	comment, err := h.svc.CreateComment(user, req.PostID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "comment created successfully",
		"comment": comment,
	})
}

// ListByPost 某帖子的评论，帖子不存在返回空列表
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	comments, err := h.svc.ListByPost(postID, page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// DeleteComment 作者或管理员可删
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(id, user); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted successfully"})
}
