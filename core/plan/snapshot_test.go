package plan_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
	"github.com/trezcool/courseplan/tests"
)

func TestSnapshot(t *testing.T) {
	state := testutil.DemoState()
	state.Completed = []course.Code{"CSI 1200"} // MTH 1553 missing
	ledger, _, _ := testutil.NewLedger(t, state, testutil.DemoCourses()...)

	snap, err := ledger.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, []course.Code{"CSI 2300", "MTH 1554", "PHY 1510", "WRT 1060", "BIO 1200"}, snap.Catalog)
	assert.Equal(t, 16, snap.Credits())

	var enrolled []course.Code
	for _, c := range snap.EnrolledCourses() {
		enrolled = append(enrolled, c.Code)
	}
	assert.Equal(t, state.Enrolled, enrolled)

	t.Run("warnings", func(t *testing.T) {
		want := []plan.Warning{{Course: "MTH 1554", Missing: []course.Code{"MTH 1553"}}}
		if diff := cmp.Diff(want, snap.Warnings()); diff != "" {
			t.Errorf("Warnings() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("search", func(t *testing.T) {
		tests := []struct {
			q    string
			want []course.Code
		}{
			{q: "", want: []course.Code{"CSI 2300", "MTH 1554", "PHY 1510", "WRT 1060"}},
			{q: "  CALCULUS ", want: []course.Code{"MTH 1554"}},
			{q: "dr.", want: []course.Code{"CSI 2300", "PHY 1510"}},
			{q: "o'dowd", want: []course.Code{"WRT 1060"}},
			{q: "biology", want: nil}, // not enrolled
		}
		for _, tt := range tests {
			t.Run(tt.q, func(t *testing.T) {
				var got []course.Code
				for _, c := range snap.Search(tt.q) {
					got = append(got, c.Code)
				}
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("isolated from the ledger", func(t *testing.T) {
		_, err := ledger.DropCourse("WRT 1060")
		require.NoError(t, err)
		assert.True(t, snap.IsEnrolled("WRT 1060"))
		assert.Equal(t, 3, snap.Courses["WRT 1060"].Seats)
	})
}
