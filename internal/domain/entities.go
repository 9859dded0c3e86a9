package domain

import "time"

type FileEntry struct {
	Path    string
	RelPath string
	Size    int64
	ModTime time.Time
}

type TreeNode struct {
	Name     string
	IsDir    bool
	Children []*TreeNode
}

type Report struct {
	FilesDumped  int
	BytesWritten int64
	Skipped      int
	Notes        []string
}

type FileState struct {
	RelPath string `json:"rel_path"`
	Hash    string `json:"hash"`
	Size    int64  `json:"size"`
	ModTime int64  `json:"mod_time"`
}

type Diff struct {
	Added     []string
	Modified  []string
	Deleted   []string
	Unchanged int
}

// Empty reports whether the diff carries no changes.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Modified) == 0 && len(d.Deleted) == 0
}
