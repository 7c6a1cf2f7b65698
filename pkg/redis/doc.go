// Package redis connects to the Redis instance used as the shared throttle
// counter store in multi-instance deployments.
package redis
