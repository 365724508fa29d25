package onboarding

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/rentflow/backend/internal/domain/shared"
)

// Document is a file uploaded during onboarding. Body must be seekable:
// the policy sniffs its first bytes and rewinds it before storage.
type Document struct {
	OwnerID     string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// StoredDocument is the location of a stored document
type StoredDocument struct {
	Key string
	URL string
}

// DocumentStorage stores uploaded documents and returns where they live
type DocumentStorage interface {
	Store(ctx context.Context, doc Document) (*StoredDocument, error)
	Delete(ctx context.Context, key string) error
}

// UploadPolicy constrains uploaded documents. AllowedTypes entries are
// media types, optionally with a "type/*" wildcard.
type UploadPolicy struct {
	MaxSize      int64
	AllowedTypes []string
}

// Check validates the document against the policy. Both the declared
// content type and the type sniffed from the body must be allowed.
func (p UploadPolicy) Check(doc Document) error {
	if doc.Body == nil || doc.Size == 0 {
		return shared.NewFieldError(shared.CodeValidation, FieldProofOfRegistrationURL, "Please select a file to upload.")
	}
	if p.MaxSize > 0 && doc.Size > p.MaxSize {
		return shared.NewFieldError(shared.CodeValidation, FieldProofOfRegistrationURL,
			fmt.Sprintf("File is too large (max %d MB).", p.MaxSize>>20))
	}
	if !p.allows(doc.ContentType) {
		return shared.NewFieldError(shared.CodeValidation, FieldProofOfRegistrationURL, "Only images and PDF files are accepted.")
	}
	detected, err := sniff(doc.Body)
	if err != nil {
		return shared.NewFieldError(shared.CodeValidation, FieldProofOfRegistrationURL, "Unable to read the uploaded file.")
	}
	if !p.allows(detected) {
		return shared.NewFieldError(shared.CodeValidation, FieldProofOfRegistrationURL, "Only images and PDF files are accepted.")
	}
	return nil
}

// sniff detects the media type from the body's leading bytes and rewinds it
func sniff(body io.Reader) (string, error) {
	rs, ok := body.(io.ReadSeeker)
	if !ok {
		return "", fmt.Errorf("upload body is not seekable")
	}
	mt, err := mimetype.DetectReader(rs)
	if err != nil {
		return "", err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mt.String(), nil
}

func (p UploadPolicy) allows(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	for _, allowed := range p.AllowedTypes {
		if prefix, ok := strings.CutSuffix(allowed, "/*"); ok {
			if strings.HasPrefix(mediaType, prefix+"/") {
				return true
			}
			continue
		}
		if mediaType == allowed {
			return true
		}
	}
	return false
}
