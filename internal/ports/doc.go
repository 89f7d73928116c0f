// Package ports defines the interfaces (ports) that connect the backup
// orchestrator to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the orchestrator needs from the host without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [CommandRunner]: Executes CL command text on the host
//   - [Session]: A CommandRunner with advisory transaction bookkeeping
//   - [Downloader]: Moves exactly one file off-host over SFTP
//   - [ReportStore]: Persists the outcome of a backup run locally
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with
// concrete implementations (ODBC, SSH/SFTP, file system).
//
// This separation enables testing the orchestration and compensation
// logic with fakes, without a host on the network.
package ports
