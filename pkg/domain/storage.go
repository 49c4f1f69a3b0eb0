package domain

// StorageEvent identifies one uploaded object in the read-side bucket.
// Only Key is required; Bucket and EventName are informational.
type StorageEvent struct {
	Key       string `json:"key" mapstructure:"key"`
	Bucket    string `json:"bucket,omitempty" mapstructure:"bucket"`
	EventName string `json:"event_name,omitempty" mapstructure:"event_name"`
}
