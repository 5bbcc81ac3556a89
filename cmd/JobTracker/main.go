package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	https_server "JobTracker/api/http"
	"JobTracker/internal/config"
	"JobTracker/internal/initial"
	"JobTracker/internal/modules/reminder/interface/scheduler"
	"JobTracker/pkg/redis"
	"JobTracker/pkg/zlog"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置和日志
	conf := config.GetConfig()
	zlog.Init(zlog.Options{
		LogPath:    conf.LogConfig.LogPath,
		Level:      conf.LogConfig.Level,
		MaxSizeMB:  conf.LogConfig.MaxSizeMB,
		MaxBackups: conf.LogConfig.MaxBackups,
		MaxAgeDays: conf.LogConfig.MaxAgeDays,
	})
	defer zlog.Sync()
	if conf.JwtConfig.Key == "" {
		zlog.Fatal("jwt key 未配置，请设置 jwtConfig.key 或 JWT_KEY")
	}

	// 2. 基础设施
	db, err := initial.InitGorm(conf.DatabaseConfig)
	if err != nil {
		zlog.Fatal("数据库初始化失败", zap.Error(err))
	}
	initial.InitRedis(conf.RedisConfig)
	publisher := initial.InitKafka(conf.KafkaConfig)

	server := https_server.NewServer(conf, db, publisher)

	// 3. 提醒定时任务
	var sched *scheduler.SchedulerManager
	if conf.ReminderConfig.Enabled {
		loc, err := time.LoadLocation(conf.ReminderConfig.TimeZone)
		if err != nil {
			zlog.Warn("时区无效，使用本地时区", zap.String("timeZone", conf.ReminderConfig.TimeZone), zap.Error(err))
			loc = time.Local
		}
		sched = scheduler.NewSchedulerManager(server.Reminders, conf.ReminderConfig.CronExpr, loc,
			time.Duration(conf.ReminderConfig.LockTTLSeconds)*time.Second)
		if err := sched.Start(); err != nil {
			zlog.Fatal("提醒定时任务启动失败", zap.Error(err))
		}
	}

	// 4. 启动 HTTP 服务
	addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
	srv := &http.Server{Addr: addr, Handler: server.Engine, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		zlog.Info(fmt.Sprintf("服务器正在启动，监听地址: %s", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("服务器启动失败: " + err.Error())
		}
	}()

	// 5. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 等待退出信号
	<-quit

	zlog.Info("正在关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("HTTP 服务关闭失败", zap.Error(err))
	}
	if sched != nil {
		sched.Stop()
	}
	if publisher != nil {
		_ = publisher.Close()
	}
	_ = redis.Close()
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	zlog.Info("服务器已关闭")
}
