package models

// File is one uploaded file's index entry. Path is the relative storage
// location ("files/<userId>/<YYYY-MM-DD>/<name>"), Date the upload timestamp
// in ISO-8601. Date is recorded when the index entry is written and may
// differ from the date embedded in Path, since both are taken from separate
// clock reads.
type File struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Date string `json:"date"`
}
