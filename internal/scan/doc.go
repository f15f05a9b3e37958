// Package scan implements the duplicate-detection pipeline: group candidate
// files by size, narrow each size group by a short byte-prefix comparison,
// then confirm duplicates with a full-content digest.
//
// The stages run strictly forward (size -> prefix -> digest) and each one is
// an exported function so it can be exercised on its own:
//
//   - BuildSizeIndex walks the roots and buckets regular files by byte size.
//   - FilterByPrefix sub-groups each size bucket by the first N bytes.
//   - VerifyByDigest streams surviving candidates through MD5 and emits the
//     confirmed DuplicateSets.
//
// Run wires the three stages together for one configuration. Per-file
// failures are warned and the file is dropped from the run; only context
// cancellation aborts a stage.
package scan
