package models

// DocumentUpload is a file chosen for upload together with the metadata the
// user entered for it.
type DocumentUpload struct {
	// FileName is the original file name. It becomes the record name when
	// Name is empty, without its extension.
	FileName string
	MIMEType string
	Data     []byte

	Name     string
	Category string
	Doctor   string
	Hospital string
	// Date is the document date as YYYY-MM-DD; today when empty.
	Date string
}

// Document is a decrypted record.
type Document struct {
	Record   Record
	MIMEType string
	Data     []byte
}
