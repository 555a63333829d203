package main

import (
	"fmt"
	"strings"

	"github.com/tasknest/tasknest/task"
	"github.com/tasknest/tasknest/view"
)

type taskTreeNode struct {
	row      view.Row
	children []*taskTreeNode
}

// buildTaskTree nests view rows under their nearest listed ancestor. Rows
// keep their listing order; a row whose parent is filtered out attaches to
// the closest shallower row before it.
func buildTaskTree(rows []view.Row) []*taskTreeNode {
	var roots []*taskTreeNode
	var stack []*taskTreeNode
	var depths []int

	for _, row := range rows {
		node := &taskTreeNode{row: row}

		for len(stack) > 0 && depths[len(depths)-1] >= row.Depth {
			stack = stack[:len(stack)-1]
			depths = depths[:len(depths)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, node)
		}

		stack = append(stack, node)
		depths = append(depths, row.Depth)
	}

	return roots
}

// printTaskTree prints view rows as a tree with ASCII art.
func printTaskTree(rows []view.Row) {
	if len(rows) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTree(rows))
}

func formatTaskTree(rows []view.Row) string {
	var builder strings.Builder
	for _, root := range buildTaskTree(rows) {
		writeTaskTreeRoot(&builder, root)
	}
	return builder.String()
}

func writeTaskTreeRoot(builder *strings.Builder, node *taskTreeNode) {
	fmt.Fprintf(builder, "%s %s (%d)\n", statusIcon(node.row.Status), node.row.Description, node.row.ID)
	writeTaskTreeChildren(builder, node, "")
}

func writeTaskTreeNode(builder *strings.Builder, node *taskTreeNode, prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}

	fmt.Fprintf(builder, "%s%s%s %s (%d)\n",
		prefix, connector, statusIcon(node.row.Status), node.row.Description, node.row.ID)

	childPrefix := prefix
	if isLast {
		childPrefix += "    "
	} else {
		childPrefix += "│   "
	}
	writeTaskTreeChildren(builder, node, childPrefix)
}

func writeTaskTreeChildren(builder *strings.Builder, node *taskTreeNode, prefix string) {
	for i, child := range node.children {
		writeTaskTreeNode(builder, child, prefix, i == len(node.children)-1)
	}
}

// statusIcon returns an icon for the status.
func statusIcon(s task.Status) string {
	switch s {
	case task.StatusActive:
		return "[ ]"
	case task.StatusCompleted:
		return "[x]"
	case task.StatusAbandoned:
		return "[-]"
	case task.StatusClear:
		return "[.]"
	default:
		return "[?]"
	}
}
