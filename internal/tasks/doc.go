// package tasks implements the per-playlist sync pipeline.
//
// The core abstraction is [Engine], which sequences the four stages for each
// playlist: ensure the local folder, snapshot and import the remote listing,
// fetch new media, reconcile file metadata. Stages run strictly in order with
// no retries; operations emit progress updates via channels for non-blocking
// status reporting to CLI/UI layers.
package tasks
