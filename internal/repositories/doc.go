// package repositories provides the persistence layer for sync history.
//
// [RunRepository] handles inserts and queries against the sync_runs table
// created by the embedded migrations in internal/shared.
package repositories
