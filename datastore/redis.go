package datastore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/obadiaha/safe-trade-scout-v2/config"
	"github.com/obadiaha/safe-trade-scout-v2/model"
)

var redisInstance *RedisInstance

type RedisInstance struct {
	initializer func() any
	instance    any
	once        sync.Once
}

// Instance gets the singleton instance
func (i *RedisInstance) Instance() any {
	i.once.Do(func() {
		i.instance = i.initializer()
	})
	return i.instance
}

func initRedisClient() any {
	return redis.NewClient(&redis.Options{
		Addr:         config.Conf.Redis.Addr,
		Password:     config.Conf.Redis.Password,
		DB:           config.Conf.Redis.Database,
		MaxIdleConns: config.Conf.Redis.MaxIdleConns,
	})
}

func Redis() *redis.Client {
	return redisInstance.Instance().(*redis.Client)
}

func init() {
	redisInstance = &RedisInstance{initializer: initRedisClient}
}

const redisCheckKeyPrefix = "check:"

// RedisCache shares check results across instances. TTL is enforced via key
// expiry, capacity bounding is delegated to Redis's own memory policy.
type RedisCache struct {
	ttl time.Duration
}

func NewRedisCache(ttl time.Duration) *RedisCache {
	return &RedisCache{ttl: ttl}
}

func (rc *RedisCache) Get(chain, token string) (*model.CheckResult, bool) {
	value, err := Redis().Get(context.Background(), redisCheckKeyPrefix+CacheKey(chain, token)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.Errorf("get check result for %s from redis is err: %v", CacheKey(chain, token), err)
		}
		return nil, false
	}

	result := model.CheckResult{}
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		logrus.Errorf("unmarshal cached check result for %s is err: %v", CacheKey(chain, token), err)
		return nil, false
	}
	return &result, true
}

func (rc *RedisCache) Set(chain, token string, result *model.CheckResult) {
	value, err := json.Marshal(result)
	if err != nil {
		logrus.Errorf("marshal check result for %s is err: %v", CacheKey(chain, token), err)
		return
	}
	if err := Redis().Set(context.Background(), redisCheckKeyPrefix+CacheKey(chain, token), value, rc.ttl).Err(); err != nil {
		logrus.Errorf("set check result for %s to redis is err: %v", CacheKey(chain, token), err)
	}
}

func (rc *RedisCache) Size() int {
	keys, err := Redis().Keys(context.Background(), redisCheckKeyPrefix+"*").Result()
	if err != nil {
		logrus.Errorf("count cached check results from redis is err: %v", err)
		return 0
	}
	return len(keys)
}
