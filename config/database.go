package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for c.DBDriver. DB_URL is a server-level
// connection string and DB_NAME selects the database on that server.
func (c *Config) Dialector() (gorm.Dialector, error) {
	switch c.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s/%s?charset=utf8mb4&parseTime=True&loc=UTC", c.DBURL, c.DBName)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn, err := c.postgresDSN()
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	case "sqlite", "":
		return sqlite.Open(c.DBName), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

// postgresDSN accepts DB_URL either as a postgres:// URL, whose path is
// replaced by DB_NAME, or as a key=value connection string.
func (c *Config) postgresDSN() (string, error) {
	if strings.HasPrefix(c.DBURL, "postgres://") || strings.HasPrefix(c.DBURL, "postgresql://") {
		u, err := url.Parse(c.DBURL)
		if err != nil {
			return "", fmt.Errorf("invalid DB_URL: %w", err)
		}
		u.Path = "/" + c.DBName
		return u.String(), nil
	}
	return strings.TrimSpace(fmt.Sprintf("%s dbname=%s", c.DBURL, c.DBName)), nil
}

func InitDB(c *Config) (*gorm.DB, error) {
	dialector, err := c.Dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
