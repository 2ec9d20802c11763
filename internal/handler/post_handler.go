package handler

import (
	"net/http"
	"strconv"
	"strings"

	"Echo_Board/internal/middleware"
	"Echo_Board/internal/pkg"
	"Echo_Board/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	svc       *service.PostService
	uploadDir string
	baseURL   string
}

type UpdatePostReq struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Image   *string `json:"image"` // 区分"不改"和"清空"
}

func NewPostHandler(db *gorm.DB, producer *pkg.KafkaProducer, uploadDir, baseURL string) *PostHandler {
	return &PostHandler{
		svc:       service.NewPostService(db, producer),
		uploadDir: uploadDir,
		baseURL:   baseURL,
	}
}

// CreatePost 创建帖子，支持 multipart 上传图片或 JSON 传图片URL
func (h *PostHandler) CreatePost(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var title, content, image string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		title = c.PostForm("title")
		content = c.PostForm("content")
		image = c.PostForm("image")

		if file, err := c.FormFile("image"); err == nil && file != nil {
			url, err := pkg.SavePostImage(c, file, h.uploadDir, h.baseURL)
			if err != nil {
				writeError(c, err)
				return
			}
			image = url
		}
	} else {
		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
			Image   string `json:"image"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
			return
		}
		title, content, image = req.Title, req.Content, req.Image
	}

	post, err := h.svc.CreatePost(user, title, content, image)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "post created successfully",
		"post":    post,
	})
}

// ListPosts 全量列表（最多返回前100条，page/size 可选）
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	posts, err := h.svc.ListPosts(page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost 帖子详情，带评论和官方回复
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, comments, replies, err := h.svc.GetPost(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":         post,
		"comments":     comments,
		"adminReplies": replies,
	})
}

// UpdatePost 仅作者可改
func (h *PostHandler) UpdatePost(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	post, err := h.svc.UpdatePost(c.Request.Context(), id, user, req.Title, req.Content, req.Image)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "post updated successfully",
		"post":    post,
	})
}

// DeletePost 作者或管理员可删，级联删除
func (h *PostHandler) DeletePost(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeletePost(c.Request.Context(), id, user); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

// ToggleLike 点赞/取消点赞
func (h *PostHandler) ToggleLike(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, liked, err := h.svc.ToggleLike(c.Request.Context(), id, user)
	if err != nil {
		writeError(c, err)
		return
	}

	msg := "post unliked"
	if liked {
		msg = "post liked"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": msg,
		"post":    post,
	})
}

// parseID 路径参数解析失败时直接写 400
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}
