// file: internals/features/academics/groups/service/assigner_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
)

func mkStudents(semester, n int) []planStudent {
	out := make([]planStudent, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, planStudent{ID: uuid.New(), Semester: semester})
	}
	return out
}

func countByGroup(assignments []plannedAssignment) map[uuid.UUID]int {
	counts := map[uuid.UUID]int{}
	for _, a := range assignments {
		counts[a.GroupID]++
	}
	return counts
}

func TestPlanRoundRobinFairness(t *testing.T) {
	g1, g2, g3 := uuid.New(), uuid.New(), uuid.New()
	groups := map[int][]planGroup{
		1: {
			{ID: g1, Remaining: 10},
			{ID: g2, Remaining: 10},
			{ID: g3, Remaining: 10},
		},
	}

	assignments, skipped := planRoundRobin(mkStudents(1, 10), groups)
	if len(skipped) != 0 {
		t.Fatalf("skipped = %d, want 0", len(skipped))
	}
	if len(assignments) != 10 {
		t.Fatalf("assigned = %d, want 10", len(assignments))
	}

	// 10 student, 3 group → distribusi 4/3/3: selisih maksimal 1.
	counts := countByGroup(assignments)
	min, max := 10, 0
	for _, g := range []uuid.UUID{g1, g2, g3} {
		c := counts[g]
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	if max-min > 1 {
		t.Errorf("distribusi tidak merata: %v", counts)
	}
}

func TestPlanRoundRobinSkipsFullGroups(t *testing.T) {
	full, open := uuid.New(), uuid.New()
	groups := map[int][]planGroup{
		2: {
			{ID: full, Remaining: 0},
			{ID: open, Remaining: 2},
		},
	}

	assignments, skipped := planRoundRobin(mkStudents(2, 3), groups)
	if len(assignments) != 2 {
		t.Fatalf("assigned = %d, want 2 (kapasitas open group)", len(assignments))
	}
	for _, a := range assignments {
		if a.GroupID == full {
			t.Error("student masuk ke group penuh")
		}
	}
	if len(skipped) != 1 {
		t.Fatalf("skipped = %d, want 1", len(skipped))
	}
	if skipped[0].Reason != reasonNoSpace {
		t.Errorf("Reason = %q, want %q", skipped[0].Reason, reasonNoSpace)
	}
}

func TestPlanRoundRobinNoGroupsForSemester(t *testing.T) {
	groups := map[int][]planGroup{
		1: {{ID: uuid.New(), Remaining: 5}},
	}

	// Student semester 3: tidak ada group semester 3 sama sekali.
	assignments, skipped := planRoundRobin(mkStudents(3, 2), groups)
	if len(assignments) != 0 {
		t.Errorf("assigned = %d, want 0", len(assignments))
	}
	if len(skipped) != 2 {
		t.Fatalf("skipped = %d, want 2", len(skipped))
	}
	for _, sk := range skipped {
		if sk.Reason != reasonNoSpace {
			t.Errorf("Reason = %q, want %q", sk.Reason, reasonNoSpace)
		}
	}
}

func TestPlanRoundRobinCapacityAndSingleMembership(t *testing.T) {
	g1, g2 := uuid.New(), uuid.New()
	groups := map[int][]planGroup{
		1: {
			{ID: g1, Remaining: 2},
			{ID: g2, Remaining: 3},
		},
	}

	// 9 student, total kapasitas hanya 5.
	students := mkStudents(1, 9)
	assignments, skipped := planRoundRobin(students, groups)

	if len(assignments) != 5 {
		t.Fatalf("assigned = %d, want 5 (total kapasitas)", len(assignments))
	}
	if len(assignments)+len(skipped) != len(students) {
		t.Errorf("assigned+skipped = %d, want %d (setiap student terhitung tepat sekali)",
			len(assignments)+len(skipped), len(students))
	}

	counts := countByGroup(assignments)
	if counts[g1] > 2 || counts[g2] > 3 {
		t.Errorf("kapasitas tertembus: %v", counts)
	}

	seen := map[uuid.UUID]bool{}
	for _, a := range assignments {
		if seen[a.StudentID] {
			t.Errorf("student %s dapat lebih dari satu group", a.StudentID)
		}
		seen[a.StudentID] = true
	}
}

func TestPlanRoundRobinPerSemesterIsolation(t *testing.T) {
	g1, g2 := uuid.New(), uuid.New()
	groups := map[int][]planGroup{
		1: {{ID: g1, Remaining: 5}},
		2: {{ID: g2, Remaining: 5}},
	}

	students := append(mkStudents(1, 2), mkStudents(2, 2)...)
	assignments, skipped := planRoundRobin(students, groups)
	if len(skipped) != 0 {
		t.Fatalf("skipped = %d, want 0", len(skipped))
	}

	counts := countByGroup(assignments)
	if counts[g1] != 2 || counts[g2] != 2 {
		t.Errorf("distribusi lintas semester salah: %v", counts)
	}
}
