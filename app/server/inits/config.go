package inits

import (
	"fmt"
	"os"
	"strings"

	"minimalist-art-gallery/app/server/config"
)

func Config() (*config.Config, error) {
	cfg := &config.Config{}

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // default listen address
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	// optional: without Redis the sessions live in process memory
	if redisconn, exist := os.LookupEnv("REDIS_CONN"); exist {
		cfg.System.RedisConnectionString = redisconn
	}

	if uploadDir, exist := os.LookupEnv("UPLOAD_DIR"); !exist {
		cfg.System.UploadDir = "uploads"
	} else {
		cfg.System.UploadDir = uploadDir
	}

	return cfg, nil
}
