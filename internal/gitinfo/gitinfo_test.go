package gitinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_FormatShort_RendersCountsInOrder_When_FieldsAreSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{name: "clean tree renders empty", status: Status{}, want: ""},
		{name: "staged only", status: Status{Staged: 3}, want: "●3"},
		{name: "modified only", status: Status{Modified: 2}, want: "✚2"},
		{name: "untracked only", status: Status{Untracked: 7}, want: "…7"},
		{
			name:   "staged and modified",
			status: Status{Staged: 1, Modified: 2},
			want:   "●1 ✚2",
		},
		{
			name: "all fields",
			status: Status{
				Staged:     1,
				Modified:   2,
				Added:      3,
				Deleted:    4,
				Renamed:    5,
				Untracked:  6,
				Conflicted: 7,
			},
			want: "●1 ✚2 +3 -4 ➜5 …6 ✖7",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.status.FormatShort())
		})
	}
}

func TestStatus_IsDirty_ReportsTrue_When_AnyBucketIsNonZero(t *testing.T) {
	t.Parallel()

	assert.False(t, (&Status{Branch: "main"}).IsDirty())

	dirty := []Status{
		{Staged: 1},
		{Modified: 1},
		{Added: 1},
		{Deleted: 1},
		{Renamed: 1},
		{Untracked: 1},
		{Conflicted: 1},
	}
	for _, status := range dirty {
		assert.True(t, status.IsDirty())
	}
}

func TestStatus_ContextValues_ReportsDefaults_When_Nil(t *testing.T) {
	t.Parallel()

	var status *Status

	values := status.ContextValues()

	assert.Equal(t, "", values["git_branch"])
	assert.Equal(t, 0, values["git_staged"])
	assert.Equal(t, 0, values["git_conflicted"])
	assert.Len(t, values, 8)
}

func TestStatus_ContextValues_CarriesEveryBucket_When_Populated(t *testing.T) {
	t.Parallel()

	status := &Status{
		Branch:     "main",
		Staged:     1,
		Modified:   2,
		Added:      3,
		Deleted:    4,
		Renamed:    5,
		Untracked:  6,
		Conflicted: 7,
	}

	values := status.ContextValues()

	assert.Equal(t, "main", values["git_branch"])
	assert.Equal(t, 1, values["git_staged"])
	assert.Equal(t, 2, values["git_modified"])
	assert.Equal(t, 3, values["git_added"])
	assert.Equal(t, 4, values["git_deleted"])
	assert.Equal(t, 5, values["git_renamed"])
	assert.Equal(t, 6, values["git_untracked"])
	assert.Equal(t, 7, values["git_conflicted"])
}
