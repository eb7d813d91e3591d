package finance

import (
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/google/uuid"
)

// Attachment is an opaque file reference carried by a document.
// StorageKey is set when the object lives in the configured bucket; URL is used as-is otherwise.
type Attachment struct {
	ID         uuid.UUID `json:"id"`
	UID        string    `json:"uid"`
	FileName   string    `json:"file_name"`
	URL        string    `json:"url"`
	StorageKey string    `json:"storage_key"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
}

// Validate checks the attachment carries a name and a location
func (a Attachment) Validate(index int) []shared.FieldError {
	var errs []shared.FieldError
	if a.FileName == "" {
		errs = append(errs, shared.FieldError{Field: fieldAt("files", index, "fileName"), Message: "is required"})
	}
	if a.URL == "" && a.StorageKey == "" {
		errs = append(errs, shared.FieldError{Field: fieldAt("files", index, "url"), Message: "url or storageKey is required"})
	}
	if a.FileSize < 0 {
		errs = append(errs, shared.FieldError{Field: fieldAt("files", index, "fileSize"), Message: "must be >= 0"})
	}
	return errs
}

// sameObject reports whether both attachments point to the same file
func (a Attachment) sameObject(other Attachment) bool {
	if a.StorageKey != "" || other.StorageKey != "" {
		return a.StorageKey == other.StorageKey
	}
	return a.URL == other.URL
}

// removedAttachments returns the entries of before that are not referenced by after
func removedAttachments(before, after []Attachment) []Attachment {
	removed := make([]Attachment, 0)
	for _, old := range before {
		kept := false
		for _, cur := range after {
			if old.sameObject(cur) {
				kept = true
				break
			}
		}
		if !kept {
			removed = append(removed, old)
		}
	}
	return removed
}
