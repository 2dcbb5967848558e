package types

const (
	// TypeDirectory restricts matches to directories.
	TypeDirectory = "d"
	// TypeFile restricts matches to anything that is not a directory.
	TypeFile = "f"
)

type (
	// FilterConfig contains the active predicates for a walk.
	// Zero values mean "no constraint".
	FilterConfig struct {
		Type  string `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
		Name  string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
		IName string `json:"iname,omitempty" yaml:"iname,omitempty" mapstructure:"iname"`
	}

	// FindParams contains parameters for a sandboxed find.
	FindParams struct {
		Root   string       `json:"root"`
		Filter FilterConfig `json:"filter"`
		Limit  int          `json:"limit,omitempty"`
		Offset int          `json:"offset,omitempty"`
	}

	// FindResult contains the result of a sandboxed find.
	FindResult struct {
		Paths   []string `json:"paths"`
		Total   int      `json:"total"`
		HasMore bool     `json:"hasMore,omitempty"`
		Skipped int      `json:"skipped,omitempty"`
	}
)

// Merge returns c with every non-empty field of override applied on top.
func (c FilterConfig) Merge(override FilterConfig) FilterConfig {
	if override.Type != "" {
		c.Type = override.Type
	}
	if override.Name != "" {
		c.Name = override.Name
	}
	if override.IName != "" {
		c.IName = override.IName
	}
	return c
}
