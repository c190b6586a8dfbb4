package shared

// WriteResult reports the outcome of a repository write. It keeps the
// success/failure contract of the storage layer while carrying the
// underlying cause and affected-row count, so callers can tell
// "nothing to do" apart from "store rejected the write".
type WriteResult struct {
	Succeeded    bool
	RowsAffected int64
	Cause        error
}

func WriteOK(rows int64) WriteResult {
	return WriteResult{Succeeded: true, RowsAffected: rows}
}

func WriteFailed(cause error) WriteResult {
	return WriteResult{Succeeded: false, Cause: cause}
}
