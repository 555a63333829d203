package task

import "testing"

func TestOrderForest(t *testing.T) {
	mk := func(id int64, parent *int64) Task {
		return Task{ID: id, ParentID: parent}
	}

	tests := []struct {
		name  string
		tasks []Task
		want  []int64
	}{
		{
			name:  "empty",
			tasks: nil,
			want:  []int64{},
		},
		{
			name:  "flat roots keep input order",
			tasks: []Task{mk(1, nil), mk(2, nil), mk(3, nil)},
			want:  []int64{1, 2, 3},
		},
		{
			name: "children follow their parent",
			tasks: []Task{
				mk(1, nil),
				mk(2, nil),
				mk(3, IDPtr(1)),
				mk(4, IDPtr(1)),
				mk(5, IDPtr(3)),
			},
			want: []int64{1, 3, 5, 4, 2},
		},
		{
			name: "missing parent treated as root",
			tasks: []Task{
				mk(2, IDPtr(1)),
				mk(3, nil),
			},
			want: []int64{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordered := orderForest(tt.tasks)
			if len(ordered) != len(tt.want) {
				t.Fatalf("expected %d tasks, got %d", len(tt.want), len(ordered))
			}
			for i, want := range tt.want {
				if ordered[i].ID != want {
					t.Fatalf("expected order %v, got task %d at position %d", tt.want, ordered[i].ID, i)
				}
			}
		})
	}
}
