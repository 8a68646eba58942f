package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"labkit/internal/layout"
)

var (
	treeRootStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	treeDirStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	treeMissingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the project layout as a tree",
	Long: `Display the directory layout under the project root. Directories
that do not exist yet are marked as missing.

Example:
  labkit-cli tree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := layout.Validate(rootPath)
		if err != nil {
			return err
		}

		root := newTreeNode("")
		for _, name := range reg.Names() {
			dir, err := reg.Get(name)
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(reg.Root(), dir)
			if err != nil {
				return err
			}
			root.insert(strings.Split(rel, string(filepath.Separator)))
		}

		fmt.Println(treeRootStyle.Render(reg.Root()))
		printTree(root, reg.Root(), 0)
		return nil
	},
}

type treeNode struct {
	name     string
	children []*treeNode
}

func newTreeNode(name string) *treeNode {
	return &treeNode{name: name}
}

func (n *treeNode) insert(segs []string) {
	if len(segs) == 0 {
		return
	}
	for _, child := range n.children {
		if child.name == segs[0] {
			child.insert(segs[1:])
			return
		}
	}
	child := newTreeNode(segs[0])
	n.children = append(n.children, child)
	child.insert(segs[1:])
}

func printTree(n *treeNode, path string, depth int) {
	for _, child := range n.children {
		childPath := filepath.Join(path, child.name)
		indent := strings.Repeat("  ", depth)

		label := treeDirStyle.Render(child.name)
		if info, err := os.Stat(childPath); err != nil || !info.IsDir() {
			label = treeMissingStyle.Render(child.name + " (missing)")
		}
		fmt.Printf("%s%s\n", indent, label)

		printTree(child, childPath, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
