package model

// StagedUpload is a file written to storage that is not yet referenced by any
// listing row. The request that staged it either commits it (by inserting a
// row carrying its URL) or rolls it back by deleting the file. No other code
// path deletes staged files.
type StagedUpload struct {
	Filename     string // assigned unique name, e.g. "550e8400-...jpg"
	OriginalName string
	StoragePath  string
	Size         int64
	MimeType     string
}
