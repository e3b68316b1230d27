// Package redis connects to an optional Redis server used as the shared
// rate-limit store when the site runs as more than one instance.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		...
//		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
//	}
//
// Connect retries the initial ping according to Config and returns the
// go-redis client; Healthcheck adapts it to a readiness probe.
package redis
