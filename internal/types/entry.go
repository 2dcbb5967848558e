package types

// Kind classifies a visited filesystem entry.
type Kind int

const (
	// KindFile is a regular file.
	KindFile Kind = iota
	// KindDirectory is a directory. Only directories are descended into.
	KindDirectory
	// KindOther is anything else: symlinks, sockets, devices, pipes.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsDir reports whether k is KindDirectory.
func (k Kind) IsDir() bool {
	return k == KindDirectory
}

// Entry is a single node visited during a walk.
type Entry struct {
	Path string `json:"path"`
	Name string `json:"name"` // base name, used for pattern matching
	Kind Kind   `json:"kind"`
}
