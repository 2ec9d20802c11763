package router

import (
	"Echo_Board/internal/config"
	"Echo_Board/internal/handler"
	"Echo_Board/internal/middleware"
	"Echo_Board/internal/pkg"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, cfg *config.Config, producer *pkg.KafkaProducer) *gin.Engine {
	r := gin.Default()

	mailCfg := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	user := handler.NewUserHandler(db, mailCfg)
	post := handler.NewPostHandler(db, producer, cfg.UploadDir, cfg.BaseURL)
	comment := handler.NewCommentHandler(db, producer)
	reply := handler.NewAdminReplyHandler(db, producer)

	auth := middleware.AuthMiddleware(db)
	admin := middleware.AdminMiddleware()

	// 上传的图片直接静态回源
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")

	api.GET("/health", handler.Health)

	// 认证相关接口
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", user.Register)
		authGroup.POST("/login", user.Login)
		authGroup.GET("/profile", auth, user.Profile)
	}

	// 帖子相关接口
	postGroup := api.Group("/posts")
	{
		postGroup.GET("", post.ListPosts)
		postGroup.POST("", auth, post.CreatePost)
		postGroup.GET("/:id", post.GetPost)
		postGroup.PUT("/:id", auth, post.UpdatePost)
		postGroup.DELETE("/:id", auth, post.DeletePost)
		postGroup.POST("/:id/like", auth, post.ToggleLike)
	}

	// 评论相关接口
	commentGroup := api.Group("/comments")
	{
		commentGroup.POST("", auth, comment.CreateComment)
		commentGroup.GET("/post/:postId", comment.ListByPost)
		commentGroup.DELETE("/:id", auth, comment.DeleteComment)
	}

	// 官方回复相关接口
	replyGroup := api.Group("/admin-replies")
	{
		replyGroup.POST("", auth, admin, reply.CreateReply)
		replyGroup.GET("/post/:postId", reply.ListByPost)
		replyGroup.DELETE("/:id", auth, admin, reply.DeleteReply)
	}

	return r
}
