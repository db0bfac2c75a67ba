package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/taskwise/backend/pkg/holiday"
)

type holidayCache struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewHolidayCache creates a Redis-backed holiday.YearCache so that remotely
// fetched holiday years are shared across instances and restarts.
func NewHolidayCache(client *redislib.Client, ttl time.Duration) holiday.YearCache {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &holidayCache{
		client: client,
		prefix: "holidays:",
		ttl:    ttl,
	}
}

func (c *holidayCache) GetYear(year int) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := c.client.Get(ctx, c.key(year)).Result()
	if err != nil {
		return nil, false
	}

	var holidays map[string]string
	if err := json.Unmarshal([]byte(result), &holidays); err != nil {
		return nil, false
	}
	return holidays, true
}

func (c *holidayCache) PutYear(year int, holidays map[string]string) error {
	payload, err := json.Marshal(holidays)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return c.client.Set(ctx, c.key(year), payload, c.ttl).Err()
}

func (c *holidayCache) key(year int) string {
	return fmt.Sprintf("%s%d", c.prefix, year)
}
