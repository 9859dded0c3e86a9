package tree

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"overview/internal/domain"
)

// Renderer draws a directory tree from walked file entries.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes a connector-style tree for the given entries. Directories
// are implied by the path segments of the entries, so an empty entry list
// renders just the root line.
func (r *Renderer) Render(w io.Writer, root string, entries []domain.FileEntry) error {
	node := Build(root, entries)
	if _, err := fmt.Fprintln(w, node.Name); err != nil {
		return err
	}
	return renderChildren(w, node, "")
}

// Build assembles the node hierarchy for the walked entries. Children are
// sorted with directories before files, then by name.
func Build(root string, entries []domain.FileEntry) *domain.TreeNode {
	rootNode := &domain.TreeNode{
		Name:  filepath.Base(filepath.Clean(root)),
		IsDir: true,
	}

	for _, e := range entries {
		parts := strings.Split(e.RelPath, "/")
		cur := rootNode
		for i, part := range parts {
			isDir := i < len(parts)-1
			cur = child(cur, part, isDir)
		}
	}

	sortNodes(rootNode)
	return rootNode
}

func child(parent *domain.TreeNode, name string, isDir bool) *domain.TreeNode {
	for _, c := range parent.Children {
		if c.Name == name && c.IsDir == isDir {
			return c
		}
	}
	node := &domain.TreeNode{Name: name, IsDir: isDir}
	parent.Children = append(parent.Children, node)
	return node
}

func sortNodes(node *domain.TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, c := range node.Children {
		sortNodes(c)
	}
}

func renderChildren(w io.Writer, node *domain.TreeNode, prefix string) error {
	for i, c := range node.Children {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(node.Children)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		name := c.Name
		if c.IsDir {
			name += "/"
		}
		if _, err := fmt.Fprintln(w, prefix+connector+name); err != nil {
			return err
		}

		if c.IsDir {
			if err := renderChildren(w, c, childPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}
