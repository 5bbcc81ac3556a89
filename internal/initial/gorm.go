package initial

import (
	"fmt"
	"time"

	"JobTracker/internal/config"
	applicationEntity "JobTracker/internal/modules/application/domain/entity"
	notificationEntity "JobTracker/internal/modules/notification/domain/entity"
	userEntity "JobTracker/internal/modules/user/domain/entity"
	"JobTracker/pkg/zlog"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormWriter 把 gorm 的慢查询和错误日志转到 zlog
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	zlog.Warn(fmt.Sprintf(format, args...))
}

func dialector(conf config.DatabaseConfig) (gorm.Dialector, error) {
	switch conf.Driver {
	case "mysql":
		dsn := conf.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				conf.User, conf.Password, conf.Host, conf.Port, conf.DatabaseName)
		}
		return mysql.Open(dsn), nil
	case "postgres", "postgresql":
		dsn := conf.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
				conf.Host, conf.User, conf.Password, conf.DatabaseName, conf.Port)
		}
		return postgres.Open(dsn), nil
	case "sqlite":
		dsn := conf.DSN
		if dsn == "" {
			dsn = conf.DatabaseName + ".db"
		}
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
}

// InitGorm 打开数据库并自动迁移，如果没有建表会自动创建对应的表
func InitGorm(conf config.DatabaseConfig) (*gorm.DB, error) {
	d, err := dialector(conf)
	if err != nil {
		return nil, err
	}
	gormLogger := logger.New(gormWriter{}, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
	// TranslateError 让唯一索引冲突统一成 gorm.ErrDuplicatedKey
	db, err := gorm.Open(d, &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.AutoMigrate(
		&userEntity.User{},
		&applicationEntity.Application{},
		&applicationEntity.Interview{},
		&notificationEntity.Notification{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
