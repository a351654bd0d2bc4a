package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunilmaharaj1991-max/BlinkLean/config"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
)

func TestInitializeServices(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	t.Run("thresholds come from engine config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Engine.NearThreshold = 0.001
		cfg.Engine.AddressNearThreshold = 0.03

		svc := InitializeServices(cat, cfg.Engine, cfg.Cache)
		t.Cleanup(svc.Close)

		assert.Equal(t, 0.001, svc.Resolver.NearThreshold())
		assert.Equal(t, 0.03, svc.AddressResolver.NearThreshold())

		// 0.005 degrees outside Vijayanagar: near at 0.02, far at 0.001.
		result := svc.Resolver.Resolve(model.NewGeoPoint(12.965, 77.550))
		assert.Equal(t, model.ProximityFar, result.Proximity)
	})

	t.Run("fluctuation range bounds quotes", func(t *testing.T) {
		cfg := testConfig()
		cfg.Engine.FluctuationMin, cfg.Engine.FluctuationMax = 1.0, 1.0

		svc := InitializeServices(cat, cfg.Engine, cfg.Cache)
		t.Cleanup(svc.Close)

		prediction, err := svc.Pricer.Predict([]model.ScrapItem{{Material: "copper", WeightKg: 2}})
		require.NoError(t, err)
		assert.Equal(t, 800.0, prediction.TotalEstimatedValue)
	})

	t.Run("fraud threshold from config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Engine.FraudThresholdKg = 50

		svc := InitializeServices(cat, cfg.Engine, cfg.Cache)
		t.Cleanup(svc.Close)

		prediction, err := svc.Pricer.Predict([]model.ScrapItem{{Material: "iron", WeightKg: 60}})
		require.NoError(t, err)
		assert.True(t, prediction.FraudFlag)
	})

	t.Run("cache disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Cache = config.CacheConfig{}

		svc := InitializeServices(cat, cfg.Engine, cfg.Cache)
		t.Cleanup(svc.Close)

		assert.Nil(t, svc.ResultCache)
		assert.NotNil(t, svc.Availability)
	})
}

func TestInitializeRouter(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	svc := InitializeServices(cat, testConfig().Engine, testConfig().Cache)
	t.Cleanup(svc.Close)

	t.Run("rate limiter created when enabled", func(t *testing.T) {
		rc := InitializeRouter(svc, cat, testConfig().Server)
		t.Cleanup(rc.RateLimiter.Stop)
		t.Cleanup(rc.Idempotency.Stop)

		assert.NotNil(t, rc.Handler)
		assert.NotNil(t, rc.HealthHandler)
		assert.Same(t, rc.RateLimiter, rc.Config.RateLimiter)
		assert.True(t, rc.Config.EnableIdempotency)
		require.NotNil(t, rc.Idempotency)
		assert.Same(t, rc.Idempotency, rc.Config.Idempotency)
	})

	t.Run("no replay cache when idempotency disabled", func(t *testing.T) {
		serverCfg := testConfig().Server
		serverCfg.RateLimit = 0
		serverCfg.EnableIdempotency = false

		rc := InitializeRouter(svc, cat, serverCfg)
		assert.Nil(t, rc.Idempotency)
		assert.Nil(t, rc.Config.Idempotency)
	})

	t.Run("no limiter when disabled", func(t *testing.T) {
		serverCfg := testConfig().Server
		serverCfg.RateLimit = 0

		rc := InitializeRouter(svc, cat, serverCfg)
		t.Cleanup(rc.Idempotency.Stop)
		assert.Nil(t, rc.RateLimiter)
	})
}
