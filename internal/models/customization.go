package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CustomizationVersion is the only document version the API accepts.
const CustomizationVersion = 1

// CustomizationDoc is the versioned per-wedding customization document.
// It replaces the free-form blob the clients used to send: unknown fields
// and unknown versions are rejected on write so tenants cannot drift apart.
type CustomizationDoc struct {
	Version        int               `json:"version"`
	Theme          string            `json:"theme,omitempty"`
	PrimaryColor   string            `json:"primaryColor,omitempty"`
	SecondaryColor string            `json:"secondaryColor,omitempty"`
	FontFamily     string            `json:"fontFamily,omitempty"`
	CoupleNames    string            `json:"coupleNames,omitempty"`
	WeddingDate    string            `json:"weddingDate,omitempty"`
	WelcomeMessage string            `json:"welcomeMessage,omitempty"`
	GalleryLayout  string            `json:"galleryLayout,omitempty"`
	Extras         map[string]string `json:"extras,omitempty"`
}

// ValidateCustomization checks a raw customization payload. Empty input
// is fine; templates without customization are the common case.
func ValidateCustomization(raw []byte) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var doc CustomizationDoc

	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("invalid customization document: %w", err)
	}

	if doc.Version != CustomizationVersion {
		return fmt.Errorf("unsupported customization version %d", doc.Version)
	}

	return nil
}

// ValidateCustomSettings only requires a JSON object; per-tenant custom
// settings have no fixed schema yet.
func ValidateCustomSettings(raw []byte) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var obj map[string]json.RawMessage

	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("custom settings must be a JSON object: %w", err)
	}

	return nil
}
