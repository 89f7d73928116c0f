// Package domain contains the core domain entities and value objects for savelib.
//
// This package represents the innermost layer of the architecture. It has
// no dependencies on infrastructure concerns (ODBC, SSH, logging) and
// contains only the rules of the backup workflow itself.
//
// # Entities
//
//   - [Identifier]: A host object name (library, save file), validated and
//     normalized before it may appear in command text
//   - [ArchiveSpec]: What to save and where the save file lives
//   - [TransferSpec]: Whether and how to move the save file off-host
//
// # Command construction
//
// All CL command text sent to the host is produced by the builders in
// command.go. No caller-supplied string reaches the command channel
// without passing identifier validation or description quoting first.
package domain
