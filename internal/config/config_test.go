package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/godbound-api/internal/config"
	"github.com/KirkDiggler/godbound-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	missing string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.missing = filepath.Join(s.T().TempDir(), "missing.env")
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(s.missing)
	s.Require().NoError(err)

	s.Assert().Equal(50051, cfg.GRPCPort)
	s.Assert().Equal(9090, cfg.MetricsPort)
	s.Assert().Equal("localhost:6379", cfg.Redis.Addr)
	s.Assert().Equal(10, cfg.Redis.PoolSize)
	s.Assert().Equal(24*time.Hour, cfg.ChatLogTTL)
	s.Assert().Equal(0, cfg.AdjustmentFloor)
	s.Assert().Empty(cfg.RulesetPath)
	s.Assert().Equal(slog.LevelInfo, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("GODBOUND_GRPC_PORT", "6000")
	s.T().Setenv("GODBOUND_REDIS_ADDR", "redis:6380")
	s.T().Setenv("GODBOUND_REDIS_DB", "2")
	s.T().Setenv("GODBOUND_LOG_LEVEL", "debug")
	s.T().Setenv("GODBOUND_ADJUSTMENT_FLOOR", "-1")

	cfg, err := config.Load(s.missing)
	s.Require().NoError(err)

	s.Assert().Equal(6000, cfg.GRPCPort)
	s.Assert().Equal("redis:6380", cfg.Redis.Addr)
	s.Assert().Equal(2, cfg.Redis.DB)
	s.Assert().Equal(-1, cfg.AdjustmentFloor)
	s.Assert().Equal(slog.LevelDebug, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestDotEnvFile() {
	path := filepath.Join(s.T().TempDir(), "test.env")
	s.Require().NoError(os.WriteFile(path, []byte("GODBOUND_CHAT_LOG_TTL=2h\n"), 0o600))
	s.T().Cleanup(func() { _ = os.Unsetenv("GODBOUND_CHAT_LOG_TTL") })

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Assert().Equal(2*time.Hour, cfg.ChatLogTTL)
}

func (s *ConfigTestSuite) TestUnparseableValue() {
	s.T().Setenv("GODBOUND_GRPC_PORT", "not-a-port")

	_, err := config.Load(s.missing)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	s.T().Setenv("GODBOUND_GRPC_PORT", "70000")
	s.T().Setenv("GODBOUND_LOG_LEVEL", "loud")
	s.T().Setenv("GODBOUND_REDIS_POOL_SIZE", "0")

	_, err := config.Load(s.missing)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "grpc_port")
	s.Assert().Contains(err.Error(), "log_level")
	s.Assert().Contains(err.Error(), "redis.pool_size")
}
