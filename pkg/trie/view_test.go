package trie

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestViewRoundTrip verifies that exporting a trie and rebuilding it from the
// export reproduces the trie exactly.
func TestViewRoundTrip(t *testing.T) {
	tr := buildTrie(t, "ant", "auto", "automobile", "trie")

	rebuilt, err := FromView(tr.View())
	require.NoError(t, err, "An exported view should always rebuild")

	assert.Equal(t, tr.Words(), rebuilt.Words(), "The rebuilt trie should hold the same words")
	assert.Equal(t, tr.View(), rebuilt.View(), "The rebuilt trie should have the same structure")
}

// TestFromViewNil verifies that the absence of a view means an empty trie.
func TestFromViewNil(t *testing.T) {
	tr, err := FromView(nil)

	require.NoError(t, err, "A nil view should not be an error")
	assert.Empty(t, tr.Words(), "A nil view should yield an empty trie")
	require.NoError(t, tr.Insert("auto"), "The empty trie should be usable")
}

// TestFromViewMatchesInserts verifies that building from a view and building
// through Insert produce identical tries.
func TestFromViewMatchesInserts(t *testing.T) {
	fromFixture := loadFixture(t, "commonFirstLetter")
	fromInserts := buildTrie(t, "ant", "auto")

	assert.Equal(t, fromInserts.View(), fromFixture.View(), "Both construction paths should agree on the structure")
	assert.Equal(t, fromInserts.Words(), fromFixture.Words(), "Both construction paths should agree on the words")
}

// TestFromViewRejectsInvalidShapes verifies that views describing states the
// trie can never reach are refused.
func TestFromViewRejectsInvalidShapes(t *testing.T) {
	cases := []struct {
		name string
		view *NodeView
		want string
	}{
		{
			name: "root with a real letter",
			view: &NodeView{Letter: "x"},
			want: "root letter",
		},
		{
			name: "root marked as word end",
			view: &NodeView{Letter: " ", IsWordEnd: true},
			want: "root cannot be a word end",
		},
		{
			name: "uppercase child letter",
			view: &NodeView{Children: []*NodeView{{Letter: "A", IsWordEnd: true}}},
			want: "single letter a-z",
		},
		{
			name: "multi-rune child letter",
			view: &NodeView{Children: []*NodeView{{Letter: "ab", IsWordEnd: true}}},
			want: "single letter a-z",
		},
		{
			name: "digit child letter",
			view: &NodeView{Children: []*NodeView{{Letter: "1", IsWordEnd: true}}},
			want: "single letter a-z",
		},
		{
			name: "empty child letter",
			view: &NodeView{Children: []*NodeView{{Letter: "", IsWordEnd: true}}},
			want: "single letter a-z",
		},
		{
			name: "letter outside the alphabet",
			view: &NodeView{Children: []*NodeView{{Letter: "ñ", IsWordEnd: true}}},
			want: "single letter a-z",
		},
		{
			name: "duplicate sibling letters",
			view: &NodeView{Children: []*NodeView{
				{Letter: "a", IsWordEnd: true},
				{Letter: "a", IsWordEnd: true},
			}},
			want: "duplicate child letter",
		},
		{
			name: "dead leaf",
			view: &NodeView{Children: []*NodeView{{Letter: "a"}}},
			want: "dead",
		},
		{
			name: "dead node deep in the tree",
			view: &NodeView{Children: []*NodeView{
				{Letter: "a", IsWordEnd: true, Children: []*NodeView{
					{Letter: "b", Children: []*NodeView{
						{Letter: "c"},
					}},
				}},
			}},
			want: "dead",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := FromView(tc.view)
			assert.Nil(t, tr, "An invalid view must not yield a trie")
			assert.ErrorContains(t, err, tc.want, "The error should name the violation")
		})
	}
}

// TestFixturesDescribeExpectedWords verifies the contents of every shape in
// testdata/trie.json.
func TestFixturesDescribeExpectedWords(t *testing.T) {
	cases := []struct {
		id    string
		words []string
	}{
		{"commonFirstLetter", []string{"ant", "auto"}},
		{"commonPrefix", []string{"auto", "automobile"}},
		{"differentBranches", []string{"auto", "trie"}},
		{"singleValue", []string{"trie"}},
	}

	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			tr := loadFixture(t, tc.id)
			assert.Equal(t, tc.words, tr.Words(), "Fixture %q should hold its documented words", tc.id)
		})
	}
}

// TestRemoveFromFixtures verifies removal against pre-built shapes instead of
// insert-built ones, for both removal strategies.
func TestRemoveFromFixtures(t *testing.T) {
	cases := []struct {
		id         string
		remove     string
		want       []string
		gonePrefix string
	}{
		{"commonFirstLetter", "ant", []string{"auto"}, "an"},
		{"commonFirstLetter", "auto", []string{"ant"}, "au"},
		{"commonPrefix", "automobile", []string{"auto"}, "autom"},
		{"differentBranches", "trie", []string{"auto"}, "t"},
		{"singleValue", "trie", nil, "t"},
	}

	for _, rm := range removers {
		for _, tc := range cases {
			t.Run(rm.name+"/"+tc.id+"/"+tc.remove, func(t *testing.T) {
				tr := loadFixture(t, tc.id)

				require.NoError(t, rm.remove(tr, tc.remove), "Removal of a stored word should not fail")

				assert.Equal(t, tc.want, tr.Words(), "Only the removed word should be gone")
				onPath, err := tr.ContainsPrefix(tc.gonePrefix)
				require.NoError(t, err)
				assert.False(t, onPath, "The pruned branch should no longer be reachable")
			})
		}
	}

	// Removing a word that prefixes another keeps every node alive.
	for _, rm := range removers {
		t.Run(rm.name+"/commonPrefix/auto", func(t *testing.T) {
			tr := loadFixture(t, "commonPrefix")

			require.NoError(t, rm.remove(tr, "auto"))

			assert.Equal(t, []string{"automobile"}, tr.Words(), "The longer word must survive")
			onPath, err := tr.ContainsPrefix("auto")
			require.NoError(t, err)
			assert.True(t, onPath, "The shared path must stay intact")
		})
	}
}

// TestViewSurvivesJSON verifies that a view serializes to JSON and back without
// losing structure, the format testdata/trie.json is written in.
func TestViewSurvivesJSON(t *testing.T) {
	tr := buildTrie(t, "ant", "auto")

	raw, err := json.Marshal(tr.View())
	require.NoError(t, err, "A view should always marshal")

	var view NodeView
	require.NoError(t, json.Unmarshal(raw, &view), "A marshalled view should unmarshal")

	rebuilt, err := FromView(&view)
	require.NoError(t, err, "The decoded view should rebuild")
	assert.Equal(t, tr.View(), rebuilt.View(), "JSON round-tripping should preserve the structure")
}

type fixture struct {
	ID   string    `json:"id"`
	Root *NodeView `json:"root"`
}

// loadFixture builds a fresh trie from one of the shapes in testdata/trie.json.
func loadFixture(t *testing.T, id string) *Trie {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "trie.json"))
	require.NoError(t, err, "The fixture file should be readable")

	var fixtures []fixture
	require.NoError(t, json.Unmarshal(raw, &fixtures), "The fixture file should hold valid JSON")

	for _, f := range fixtures {
		if f.ID == id {
			tr, err := FromView(f.Root)
			require.NoError(t, err, "Fixture %q should describe a valid trie", id)
			return tr
		}
	}
	t.Fatalf("no fixture with id %q", id)
	return nil
}
