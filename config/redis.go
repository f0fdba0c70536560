package config

import (
	"Gamestore/services/redis"

	"github.com/sirupsen/logrus"
)

// ConnectRedis connects to Redis. Returns nil, nil when no REDIS_URL is set
func ConnectRedis(cfg RedisConfig) (*redis.RedisClient, error) {
	if cfg.URL == "" {
		logrus.Info("REDIS_URL not set, running without catalog cache and checkout lock")
		return nil, nil
	}
	redisClient, err := redis.InitRedis(cfg.URL, cfg.DB)
	if err != nil {
		return nil, err
	}
	logrus.Info("Redis connection established")
	return redisClient, nil
}
