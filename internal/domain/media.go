package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// MediaTypeImage is the only media type the gallery currently renders.
const MediaTypeImage = "image"

// StringArray is a custom type for storing string arrays as JSON in the database.
type StringArray []string

// Value implements the driver.Valuer interface for database serialization.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan StringArray")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, a)
}

// Contains reports whether label is an exact member of the array.
func (a StringArray) Contains(label string) bool {
	for _, l := range a {
		if l == label {
			return true
		}
	}
	return false
}

// Attribution credits the author of a media item.
type Attribution struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// MediaItem is a single asset exposed to the gallery UI.
// The JSON tags define the exact projection the UI consumes; Labels and
// CreatedAt are internal and never serialized in responses.
type MediaItem struct {
	ID                string       `json:"id"`
	Type              string       `json:"type"`
	Alt               string       `json:"alt"`
	Caption           string       `json:"caption"`
	Title             string       `json:"title"`
	Href              string       `json:"href"`
	Hotlink           bool         `json:"hotlink"`
	Attribution       *Attribution `json:"attribution"`
	NotifyDownloadURL string       `json:"notify_download_url"`

	Labels    StringArray `json:"-"`
	CreatedAt time.Time   `json:"-"`
}

// AttributionLabel returns the attribution label, or "" when the item has none.
func (m *MediaItem) AttributionLabel() string {
	if m.Attribution == nil {
		return ""
	}
	return m.Attribution.Label
}

// Folder is a static grouping offered to the gallery UI.
type Folder struct {
	ID   string `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
}
