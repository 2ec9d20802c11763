package pkg

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 帖子图片的子目录，静态路由 /uploads 对应 UploadDir
const postUploadSubdir = "posts"

// SavePostImage 落盘上传图片并返回可访问的URL
func SavePostImage(c *gin.Context, file *multipart.FileHeader, uploadDir, baseURL string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext
	dst := filepath.Join(uploadDir, postUploadSubdir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/uploads/%s/%s", strings.TrimRight(baseURL, "/"), postUploadSubdir, name), nil
}
