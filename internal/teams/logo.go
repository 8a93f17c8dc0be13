package teams

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// MaxLogoSize bounds uploaded logo images.
const MaxLogoSize = 8 << 20 // 8MB

var allowedLogoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// DetectLogoType sniffs the content type of logo bytes and reports whether
// it is an accepted image format.
func DetectLogoType(logo []byte) (string, bool) {
	contentType := http.DetectContentType(logo)
	return contentType, allowedLogoTypes[contentType]
}

// LogoDataURI transcodes raw logo bytes into an inline data URI for
// display. The stored form is always the raw bytes; this conversion exists
// only at the presentation boundary.
func LogoDataURI(logo []byte) string {
	if len(logo) == 0 {
		return ""
	}
	contentType, _ := DetectLogoType(logo)
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(logo))
}

// DecodeLogoDataURI reverses LogoDataURI, returning the original bytes.
func DecodeLogoDataURI(uri string) ([]byte, error) {
	_, encoded, ok := strings.Cut(uri, ";base64,")
	if !ok {
		return nil, fmt.Errorf("not a base64 data URI")
	}
	return base64.StdEncoding.DecodeString(encoded)
}
