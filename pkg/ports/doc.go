/*
Package ports defines the driven ports (interfaces) of the analysis host.

These interfaces decouple the task and the runner from concrete event formats
and storage backends.

# Key Interfaces

  - Task: the init/process capability a host drives.
  - EventSource: yields collisions one at a time (JSON lines, memory).
  - RunStore: persists finished runs and their histograms (memory, Redis).
  - DistributedLocker: keeps two hosts from writing the same run ID.
*/
package ports
