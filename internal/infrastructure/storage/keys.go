package storage

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// documentKey returns a unique object key for an owner's document,
// keeping the original file extension.
func documentKey(ownerID, fileName string) string {
	ext := strings.ToLower(path.Ext(path.Base(fileName)))
	if len(ext) > 10 {
		ext = ""
	}
	return "proofs/" + ownerID + "/" + uuid.NewString() + ext
}
