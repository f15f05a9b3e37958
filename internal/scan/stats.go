package scan

// Stats tracks aggregate counters across one pipeline run.
type Stats struct {
	FilesScanned int // regular files statted during the walk
	Candidates   int // files left after the size prune
	Hashed       int // files whose full content was digested
	Errors       int // per-file failures (skipped roots, stat/read errors)
}
