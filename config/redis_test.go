package config

import "testing"

func TestInitRedis_Unconfigured(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_ADDR", "")
	InitRedis()
	if RedisClient != nil {
		t.Fatal("client built without configuration")
	}
	if got := PingRedis(); got != "Redis not configured, second-level cache disabled." {
		t.Errorf("PingRedis = %q", got)
	}
}

func TestInitRedis_URL(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://:pw@cache.internal:6380/2")
	InitRedis()
	defer func() { RedisClient = nil }()
	if RedisClient == nil {
		t.Fatal("client not built from REDIS_URL")
	}
	opts := RedisClient.Options()
	if opts.Addr != "cache.internal:6380" || opts.DB != 2 || opts.Password != "pw" {
		t.Errorf("options = %+v", opts)
	}
}

func TestInitRedis_Addr(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	InitRedis()
	defer func() { RedisClient = nil }()
	if RedisClient == nil || RedisClient.Options().DB != 3 {
		t.Fatalf("client = %v", RedisClient)
	}
}

