package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/geometry"
	"github.com/katalvlaran/cubiq/lattice"
	"github.com/katalvlaran/cubiq/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const catalog = `{
    "_meta": {"version": "1"},
    "1.1": {"text": "Edge\nof the cube", "task_type": "2D_to_3D", "pudorys": [], "narys": [], "bokorys": [],
            "data3d": [[[[0, 0, 0], [2, 0, 0], 0]]]},
    "2.1": {"text": "Views", "task_type": "3D_to_2D", "pudorys": [[[0, 0], [2, 0], 0]], "narys": [], "bokorys": [],
            "data3d": [[]]}
}`

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func exec(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out, zaptest.NewLogger(t))
	return out.String(), err
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	cat := write(t, dir, "tasks.json", catalog)

	out, err := exec(t, "", "list", "-catalog", cat)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "catalog 1, 2 tasks", lines[0])
	assert.Equal(t, "0 Tutorial", lines[1])
	assert.Equal(t, "1 Segments", lines[2])
	assert.Equal(t, []string{"1.1", "2D_to_3D", "Edge"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"2.1", "3D_to_2D", "Views"}, strings.Fields(lines[5]))
	assert.Equal(t, "3 Polyhedra", lines[6])
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	cat := write(t, dir, "tasks.json", catalog)

	good := write(t, dir, "good.json", `{"solid": [[[1,0,0],[0,0,0]], [[1,0,0],[2,0,0],0]]}`)
	out, err := exec(t, "", "check", "-catalog", cat, "-task", "1.1", good)
	require.NoError(t, err)
	assert.Equal(t, "1.1: solved\n", out)

	bad := write(t, dir, "bad.json", `{"solid": [[[0,0,0],[2,0,0],1]]}`)
	out, err = exec(t, "", "check", "-catalog", cat, "-task", "1.1", bad)
	assert.ErrorIs(t, err, errNotSolved)
	assert.Equal(t, "1.1: not solved\n", out)

	views := write(t, dir, "views.json", `{"plan": [[[0,0],[1,0],0], [[2,0],[1,0],0]]}`)
	out, err = exec(t, "", "check", "-catalog", cat, "-task", "2.1", views)
	require.NoError(t, err)
	assert.Equal(t, "2.1: solved\n", out)
}

func TestCheck_Errors(t *testing.T) {
	dir := t.TempDir()
	cat := write(t, dir, "tasks.json", catalog)
	ans := write(t, dir, "a.json", `{}`)

	_, err := exec(t, "", "check", "-catalog", cat, ans)
	assert.Error(t, err, "missing -task")
	_, err = exec(t, "", "check", "-catalog", cat, "-task", "7.7", ans)
	assert.Error(t, err)
	_, err = exec(t, "", "check", "-catalog", cat, "-task", "1.1")
	assert.Error(t, err, "missing answer file")
	_, err = exec(t, "", "check", "-catalog", filepath.Join(dir, "none.json"), "-task", "1.1", ans)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"2D merge", `[[[0,0],[1,0],0],[[1,0],[2,0],0]]`, "[[[0,0],[2,0],0]]\n"},
		{"3D split", `[[[0,0,0],[2,0,0],0],[[0,0,0],[1,0,0],1]]`, "[[[0,0,0],[1,0,0],1],[[1,0,0],[2,0,0],0]]\n"},
		{"empty", `[]`, "[]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := exec(t, tc.in, "normalize")
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}

	_, err := exec(t, `[[[0,0],[1,0,0]]]`, "normalize")
	assert.ErrorIs(t, err, geometry.ErrDimensionMismatch)
}

func TestReplay(t *testing.T) {
	dir := t.TempDir()
	cat := write(t, dir, "tasks.json", catalog)
	// Default layout: the solid origin sits at (400,400), 60 units apart.
	presses := write(t, dir, "presses.json", `[
		{"x": 400, "y": 400}, {"x": 460, "y": 400},
		{"x": 460, "y": 400}, {"x": 520, "y": 400}
	]`)
	saved := filepath.Join(dir, "answer.json")

	out, err := exec(t, "", "replay", "-catalog", cat, "-task", "1.1", "-save", saved, presses)
	require.NoError(t, err)
	assert.Equal(t, "0 selected solid\n1 connected solid\n2 selected solid\n3 connected solid\n1.1: solved\n", out)

	out, err = exec(t, "", "check", "-catalog", cat, "-task", "1.1", saved)
	require.NoError(t, err)
	assert.Equal(t, "1.1: solved\n", out)
}

func TestReplay_DoubleClickDelete(t *testing.T) {
	dir := t.TempDir()
	cat := write(t, dir, "tasks.json", catalog)
	presses := write(t, dir, "presses.json", `[
		{"x": 400, "y": 400}, {"x": 520, "y": 400},
		{"x": 490, "y": 403, "at_ms": 1000}, {"x": 490, "y": 403, "at_ms": 1200}
	]`)

	out, err := exec(t, "", "replay", "-catalog", cat, "-task", "1.1", presses)
	assert.ErrorIs(t, err, errNotSolved)
	assert.Equal(t, "0 selected solid\n1 connected solid\n2 ignored\n3 deleted solid\n1.1: not solved\n", out)
}

func TestReplay_BadButton(t *testing.T) {
	dir := t.TempDir()
	cat := write(t, dir, "tasks.json", catalog)
	presses := write(t, dir, "presses.json", `[{"x": 1, "y": 1, "button": "middle"}]`)

	_, err := exec(t, "", "replay", "-catalog", cat, "-task", "1.1", presses)
	assert.ErrorContains(t, err, "middle")
}

func TestRun_Usage(t *testing.T) {
	_, err := exec(t, "")
	assert.ErrorIs(t, err, flag.ErrHelp)
	_, err = exec(t, "", "draw")
	assert.ErrorContains(t, err, "unknown command")
}

func TestAuthor(t *testing.T) {
	dir := t.TempDir()
	cat := write(t, dir, "tasks.json", catalog)
	// Editor layout: the solid origin sits at (190,490), the plan corner at
	// (430,430), 60 units apart.
	presses := write(t, dir, "presses.json", `[
		{"x": 190, "y": 490}, {"x": 310, "y": 490},
		{"x": 430, "y": 430}, {"x": 550, "y": 430}
	]`)

	out, err := exec(t, "", "author", "-catalog", cat, "-task", "1.3", "-kind", "2D_to_3D", "-text", "New", presses)
	require.NoError(t, err)
	assert.Equal(t, "0 selected solid\n1 connected solid\n2 selected plan\n3 connected plan\n1.3: saved as 2D_to_3D\n", out)

	f, err := os.Open(cat)
	require.NoError(t, err)
	defer f.Close()
	c, err := task.ReadCatalog(f)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	tk, err := c.Get(task.ID{Chapter: 1, Index: 3})
	require.NoError(t, err)
	assert.Equal(t, task.SolidFromPlanes, tk.Kind)
	assert.Equal(t, "New", tk.Text)
	require.Len(t, tk.Solids, 1)
	assert.True(t, tk.Solids[0].Equal(connection.Set[lattice.Point3]{
		connection.New(lattice.P3(0, 0, 0), lattice.P3(2, 0, 0), false),
	}))
	assert.True(t, tk.Planes.Plan.Equal(connection.Set[lattice.Point2]{
		connection.New(lattice.P2(0, 0), lattice.P2(2, 0), false),
	}))

	ans := write(t, dir, "answer.json", `{"solid": [[[0,0,0],[2,0,0],0]]}`)
	out, err = exec(t, "", "check", "-catalog", cat, "-task", "1.3", ans)
	require.NoError(t, err)
	assert.Equal(t, "1.3: solved\n", out)

	out, err = exec(t, "", "author", "-catalog", cat, "-task", "1.3", "-delete")
	require.NoError(t, err)
	assert.Equal(t, "1.3: deleted\n", out)
	_, err = exec(t, "", "check", "-catalog", cat, "-task", "1.3", ans)
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestAuthor_EditKeepsKindAndText(t *testing.T) {
	dir := t.TempDir()
	cat := write(t, dir, "tasks.json", catalog)
	none := write(t, dir, "none.json", `[]`)

	out, err := exec(t, "", "author", "-catalog", cat, "-task", "2.1", none)
	require.NoError(t, err)
	assert.Equal(t, "2.1: saved as 3D_to_2D\n", out)

	out, err = exec(t, "", "list", "-catalog", cat)
	require.NoError(t, err)
	assert.Contains(t, out, "Views")
}

func TestAuthor_NewCatalogTutorial(t *testing.T) {
	dir := t.TempDir()
	cat := filepath.Join(dir, "new.json")
	none := write(t, dir, "none.json", `[]`)

	out, err := exec(t, "", "author", "-catalog", cat, "-task", "0.1", "-kind", "2D_to_3D", "-text", "Hello", none)
	require.NoError(t, err)
	assert.Equal(t, "0.1: saved as tutorial\n", out)

	_, err = exec(t, "", "author", "-catalog", cat, "-task", "0.9", "-delete")
	assert.ErrorIs(t, err, task.ErrNotFound)
}
