package task

// orderForest arranges tasks in depth-first order: each task directly
// after its parent, siblings in their input order. Tasks whose parent is
// missing from the input are treated as roots. Input order is preserved
// among roots and among the children of each parent.
func orderForest(tasks []Task) []Task {
	known := make(map[int64]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}

	var roots []Task
	children := make(map[int64][]Task)
	for _, t := range tasks {
		if t.ParentID == nil || !known[*t.ParentID] {
			roots = append(roots, t)
			continue
		}
		children[*t.ParentID] = append(children[*t.ParentID], t)
	}

	ordered := make([]Task, 0, len(tasks))
	var visit func(t Task)
	visit = func(t Task) {
		ordered = append(ordered, t)
		for _, child := range children[t.ID] {
			visit(child)
		}
	}
	for _, root := range roots {
		visit(root)
	}
	return ordered
}
