// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics and debug introspection for replay memories.
//
// Provides:
//   - Config with defaults, validation, flag binding and logger construction
//   - MetricsRegistry snapshots of memory occupancy
//   - DebugProbes for named state probes
package control
