// Package health serves liveness and readiness probes.
//
// [LivenessHandler] answers OK as long as the process is up.
// [ReadinessHandler] runs a set of named [Checks] concurrently and answers
// 503 if any of them fails, so a load balancer stops routing login traffic
// to an instance whose replay store (Redis) is unreachable.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "redis": redis.Healthcheck(client),
//	}, health.WithTimeout(3*time.Second), health.WithLogger(log)))
//
// Responses are plain text by default. Send Accept: application/json or
// ?format=json for the detailed report:
//
//	{"status":"unhealthy","checks":{"redis":{"status":"unhealthy","error":"..."}}}
//
// Failed checks are reported wrapped in [ErrCheckFailed] or [ErrCheckTimeout].
package health
