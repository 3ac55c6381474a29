// Package models defines the persistent entities of the sync history.
//
// [SyncRun] is the single database-backed model: one row per playlist per
// sync invocation, recording entry and file counters plus the outcome. Rows
// are created when a playlist sync starts and finalized when it ends, so an
// interrupted process leaves a visible "running" row behind.
package models
