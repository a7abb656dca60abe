/*
Package observability turns task selection decisions into Prometheus metrics.

Metrics.Hooks returns domain.FillHooks that count events and tracks by outcome
(accepted or rejected). Register the collectors on the registry served at
/metrics.
*/
package observability
