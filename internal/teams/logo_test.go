package teams

import (
	"bytes"
	"strings"
	"testing"
)

// Minimal valid PNG header followed by padding, enough for content sniffing
var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)

func TestDetectLogoType(t *testing.T) {
	contentType, ok := DetectLogoType(pngBytes)
	if !ok {
		t.Fatalf("png rejected, detected %s", contentType)
	}
	if contentType != "image/png" {
		t.Errorf("detected %s, want image/png", contentType)
	}

	if _, ok := DetectLogoType([]byte("just some text")); ok {
		t.Error("plain text accepted as logo")
	}
}

func TestLogoDataURIRoundTrip(t *testing.T) {
	uri := LogoDataURI(pngBytes)
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("unexpected data URI prefix: %s", uri[:min(len(uri), 40)])
	}

	decoded, err := DecodeLogoDataURI(uri)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(decoded, pngBytes) {
		t.Error("decoded bytes differ from original")
	}
}

func TestLogoDataURIEmpty(t *testing.T) {
	if uri := LogoDataURI(nil); uri != "" {
		t.Errorf("expected empty URI for no logo, got %q", uri)
	}
}

func TestDecodeLogoDataURIRejectsGarbage(t *testing.T) {
	if _, err := DecodeLogoDataURI("not a data uri"); err == nil {
		t.Error("expected error for malformed URI")
	}
}
