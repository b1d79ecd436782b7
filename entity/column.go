package entity

// Column is the persisted state of one grid column.
// Header is informational and never drives behavior.
type Column struct {
	Id      string `yaml:"id" json:"id"`
	Visible bool   `yaml:"visible" json:"visible"`
	Width   string `yaml:"width,omitempty" json:"width,omitempty"`
	Header  string `yaml:"header,omitempty" json:"header,omitempty"`
}
