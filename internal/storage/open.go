package storage

import (
	"context"
	"fmt"

	intconfig "luxride/internal/config"
)

// Open builds the Store selected by STORAGE_DRIVER.
func Open(ctx context.Context, env intconfig.Env) (Store, error) {
	switch env.StorageDriver {
	case "", "file":
		return NewFileStore(env.DataDir)
	case "redis":
		return NewRedisStore(RedisConfig{
			Addr:     env.RedisAddr,
			Password: env.RedisPassword,
			DB:       env.RedisDB,
			Prefix:   env.RedisPrefix,
		})
	case "mysql":
		conn, err := intconfig.OpenMySQL(env.MySQLDSN)
		if err != nil {
			return nil, err
		}
		store, err := NewMySQLStore(ctx, conn)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", env.StorageDriver)
	}
}
