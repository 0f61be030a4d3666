// Package session records play-throughs for Doors of Perception.
//
// The session package implements:
//   - Thread-safe run storage and retrieval
//   - Unique run ID generation
//   - Run lifecycle: opened at begin, closed at game over
//   - Best-score lookup across finished runs
//
// Core Types:
//
// Manager is the in-memory run ledger. Run represents one play-through
// with its layout name, start and finish times, end reason and final
// score.
//
// Run Identifiers:
//
// Runs use 8-character hex IDs generated with cryptographic randomness;
// the manager guarantees uniqueness within the ledger.
//
// Concurrency:
//
// The manager is thread-safe. Multiple goroutines can safely open,
// finish and list runs simultaneously; internal locking ensures
// consistency.
//
// Usage:
//
//	ledger := session.NewManager()
//
//	// Open a run when a session begins
//	run := ledger.Start("classic")
//
//	// Close it out at game over
//	err := ledger.Finish(run.ID, reason, score)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Best finished run of this sitting, if any
//	best := ledger.Best()
//
// Runs are held in memory only and vanish with the process; there is no
// high-score file.
package session
