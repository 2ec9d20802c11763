package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"Echo_Board/internal/config"
	"Echo_Board/internal/model"
	"Echo_Board/internal/pkg"
	"Echo_Board/internal/repository/mysql"
	"Echo_Board/internal/repository/redis"
	"Echo_Board/internal/router"

	"github.com/op/go-logging"
)

func main() {
	cfg := config.Load()

	pkg.InitLogger(logging.INFO)
	pkg.ConfigureToken(cfg.TokenSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	// redis 未配置时点赞计数直接走库
	if cfg.RedisAddr != "" {
		if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			panic(err)
		}
		defer redis.Close()
	}

	// kafka 未配置时事件上报关闭
	var producer *pkg.KafkaProducer
	if cfg.KafkaBrokers != "" {
		p, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: strings.Split(cfg.KafkaBrokers, ","),
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			panic(err)
		}
		producer = p
		defer producer.Close()
	}

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.AdminReply{},
		&model.PostLike{},
	)

	if err := os.MkdirAll(filepath.Join(cfg.UploadDir, "posts"), 0o755); err != nil {
		panic(err)
	}

	r := router.InitRouter(mysql.DB, cfg, producer)
	pkg.Logger.Infof("listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		pkg.Logger.Errorf("server stopped: %v", err)
	}
}
