package config

import (
	"fmt"

	"restaurant-bot/store"
	"restaurant-bot/store/gormstore"
	"restaurant-bot/store/mongostore"

	"gorm.io/gorm/logger"
)

// OpenStore connects to the backend selected by database.driver
func (c *Config) OpenStore() (store.Store, error) {
	switch c.Database.Driver {
	case DriverSQLite:
		return gormstore.Open(c.Database.Path, logger.Warn)
	case DriverMongo:
		return mongostore.Open(mongostore.Config{
			URI:      c.Database.MongoURI,
			Database: c.Database.MongoDatabase,
			Timeout:  c.Database.Timeout,
		})
	default:
		return nil, fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
}
