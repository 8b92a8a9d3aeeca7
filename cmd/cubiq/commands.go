// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/geometry"
	"github.com/katalvlaran/cubiq/interact"
	"github.com/katalvlaran/cubiq/lattice"
	"github.com/katalvlaran/cubiq/merge"
	"github.com/katalvlaran/cubiq/task"
	"github.com/katalvlaran/cubiq/verify"
)

// answer is the on-disk shape of a user's drawing.
type answer struct {
	Solid connection.Set[lattice.Point3] `json:"solid,omitempty"`
	Plan  connection.Set[lattice.Point2] `json:"plan,omitempty"`
	Front connection.Set[lattice.Point2] `json:"front,omitempty"`
	Side  connection.Set[lattice.Point2] `json:"side,omitempty"`
}

func (a answer) attempt() verify.Attempt {
	return verify.Attempt{
		Solid:  a.Solid,
		Planes: task.Planes{Plan: a.Plan, Front: a.Front, Side: a.Side},
	}
}

func answerOf(c *interact.Controller) answer {
	ps := c.Planes()
	return answer{Solid: c.Solid(), Plan: ps.Plan, Front: ps.Front, Side: ps.Side}
}

// pressRecord is one entry of a replay file.
type pressRecord struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Button string  `json:"button"` // "primary" (default) or "secondary"
	Dashed bool    `json:"dashed"`
	Mark   bool    `json:"mark"`
	AtMS   int64   `json:"at_ms"`
}

var replayEpoch = time.Unix(0, 0)

func (r pressRecord) press() (interact.Press, error) {
	ev := interact.Press{
		Pos: geometry.Vec2{X: r.X, Y: r.Y},
		At:  replayEpoch.Add(time.Duration(r.AtMS) * time.Millisecond),
	}
	switch r.Button {
	case "", "primary":
		ev.Button = interact.Primary
	case "secondary":
		ev.Button = interact.Secondary
	default:
		return ev, fmt.Errorf("unknown button %q", r.Button)
	}
	if r.Dashed {
		ev.Mods |= interact.ModDashed
	}
	if r.Mark {
		ev.Mods |= interact.ModMark
	}
	return ev, nil
}

func loadCatalog(path string, log *zap.Logger) (*task.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := task.ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("catalog loaded", zap.String("path", path), zap.String("version", c.Version), zap.Int("tasks", c.Len()))
	return c, nil
}

func loadTask(path, id string, log *zap.Logger) (*task.Task, error) {
	if id == "" {
		return nil, errors.New("-task is required")
	}
	tid, err := task.ParseID(id)
	if err != nil {
		return nil, err
	}
	c, err := loadCatalog(path, log)
	if err != nil {
		return nil, err
	}
	return c.Get(tid)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func oneFile(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s: expected one file argument, got %d", fs.Name(), fs.NArg())
	}
	return fs.Arg(0), nil
}

func cmdList(args []string, out io.Writer, log *zap.Logger) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	path := fs.String("catalog", "tasks.json", "task catalog")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := loadCatalog(*path, log)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "catalog %s, %d tasks\n", c.Version, c.Len())
	for _, ch := range c.Chapters(nil) {
		fmt.Fprintf(out, "%d %s\n", ch.Number, ch.Title)
		for _, id := range ch.IDs {
			tk, _ := c.Get(id)
			text, _, _ := strings.Cut(tk.Text, "\n")
			fmt.Fprintf(out, "  %-6s %-9s %s\n", id, tk.Kind, text)
		}
	}
	return nil
}

func cmdCheck(args []string, out io.Writer, log *zap.Logger) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	path := fs.String("catalog", "tasks.json", "task catalog")
	id := fs.String("task", "", "task id, chapter.index")
	if err := fs.Parse(args); err != nil {
		return err
	}
	file, err := oneFile(fs)
	if err != nil {
		return err
	}
	tk, err := loadTask(*path, *id, log)
	if err != nil {
		return err
	}
	var a answer
	if err := readJSON(file, &a); err != nil {
		return err
	}
	return report(out, tk, verify.Task(tk, a.attempt()), log)
}

func report(out io.Writer, tk *task.Task, solved bool, log *zap.Logger) error {
	log.Info("verified", zap.Stringer("task", tk.ID), zap.Bool("solved", solved))
	if !solved {
		fmt.Fprintf(out, "%s: not solved\n", tk.ID)
		return errNotSolved
	}
	fmt.Fprintf(out, "%s: solved\n", tk.ID)
	return nil
}

// cmdNormalize reads a list of lines, 3D or 2D, and prints its normalized
// form. Without a file argument it reads stdin.
func cmdNormalize(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	switch fs.NArg() {
	case 0:
		data, err = io.ReadAll(in)
	case 1:
		data, err = os.ReadFile(fs.Arg(0))
	default:
		return fmt.Errorf("normalize: expected at most one file argument, got %d", fs.NArg())
	}
	if err != nil {
		return err
	}

	var normalized interface{}
	var s3 connection.Set[lattice.Point3]
	err = json.Unmarshal(data, &s3)
	switch {
	case err == nil:
		normalized = nonNil(merge.Normalize(s3))
	case errors.Is(err, geometry.ErrDimensionMismatch):
		var s2 connection.Set[lattice.Point2]
		if err := json.Unmarshal(data, &s2); err != nil {
			return err
		}
		normalized = nonNil(merge.Normalize(s2))
	default:
		return err
	}
	enc := json.NewEncoder(out)
	return enc.Encode(normalized)
}

func nonNil[P lattice.Coord[P]](s connection.Set[P]) connection.Set[P] {
	if s == nil {
		return connection.Set[P]{}
	}
	return s
}

func cmdReplay(args []string, out io.Writer, log *zap.Logger) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	path := fs.String("catalog", "tasks.json", "task catalog")
	id := fs.String("task", "", "task id, chapter.index")
	save := fs.String("save", "", "write the final drawing as an answer file")
	cx := fs.Float64("x", 400, "screen x of the layout centre")
	cy := fs.Float64("y", 400, "screen y of the layout centre")
	spacing := fs.Float64("spacing", 60, "screen distance between lattice points")
	tol := fs.Float64("tolerance", interact.DefaultTolerance, "connection hit-test tolerance")
	if err := fs.Parse(args); err != nil {
		return err
	}
	file, err := oneFile(fs)
	if err != nil {
		return err
	}
	if *tol <= 0 || *spacing <= 0 {
		return errors.New("replay: -tolerance and -spacing must be positive")
	}
	tk, err := loadTask(*path, *id, log)
	if err != nil {
		return err
	}
	var records []pressRecord
	if err := readJSON(file, &records); err != nil {
		return err
	}

	c, err := interact.ForTask(tk, geometry.Vec2{X: *cx, Y: *cy}, *spacing,
		interact.WithTolerance(*tol), interact.WithLogger(log))
	if err != nil {
		return err
	}
	if err := play(c, records, file, out); err != nil {
		return err
	}

	if *save != "" {
		data, err := json.Marshal(answerOf(c))
		if err != nil {
			return err
		}
		if err := os.WriteFile(*save, append(data, '\n'), 0o644); err != nil {
			return err
		}
	}
	return report(out, tk, c.Solved(tk), log)
}

// play feeds records to c and prints one outcome line per press.
func play(c *interact.Controller, records []pressRecord, file string, out io.Writer) error {
	for i, r := range records {
		ev, err := r.press()
		if err != nil {
			return fmt.Errorf("%s: press %d: %w", file, i, err)
		}
		res := c.HandlePress(ev)
		if res.Surface == "" {
			fmt.Fprintf(out, "%d %s\n", i, res.Outcome)
			continue
		}
		fmt.Fprintf(out, "%d %s %s\n", i, res.Outcome, res.Surface)
	}
	return nil
}

// cmdAuthor draws a task in the editor and stores it in the catalog. An
// existing task is loaded into the editor first, so presses edit it. A
// missing catalog file is created.
func cmdAuthor(args []string, out io.Writer, log *zap.Logger) error {
	fs := flag.NewFlagSet("author", flag.ContinueOnError)
	path := fs.String("catalog", "tasks.json", "task catalog")
	id := fs.String("task", "", "task id, chapter.index")
	kind := fs.String("kind", "", "2D_to_3D or 3D_to_2D; empty keeps the stored kind, else 3D_to_2D; chapter 0 is always tutorial")
	text := fs.String("text", "", "task text; empty keeps the stored text")
	remove := fs.Bool("delete", false, "delete the task instead of drawing it")
	cx := fs.Float64("x", 400, "screen x of the layout centre")
	cy := fs.Float64("y", 400, "screen y of the layout centre")
	spacing := fs.Float64("spacing", 60, "screen distance between lattice points")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-task is required")
	}
	tid, err := task.ParseID(*id)
	if err != nil {
		return err
	}
	if *spacing <= 0 {
		return errors.New("author: -spacing must be positive")
	}

	cat, err := loadCatalog(*path, log)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cat = task.NewCatalog("1")
	case err != nil:
		return err
	}

	if *remove {
		if err := cat.Delete(tid); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: deleted\n", tid)
		return saveCatalog(*path, cat)
	}

	file, err := oneFile(fs)
	if err != nil {
		return err
	}
	var records []pressRecord
	if err := readJSON(file, &records); err != nil {
		return err
	}
	c, err := interact.ForEditor(geometry.Vec2{X: *cx, Y: *cy}, *spacing, interact.WithLogger(log))
	if err != nil {
		return err
	}
	if old, err := cat.Get(tid); err == nil {
		c.Load(old)
		if *text == "" {
			*text = old.Text
		}
		if *kind == "" {
			*kind = string(old.Kind)
		}
	}
	if *kind == "" {
		*kind = string(task.PlanesFromSolid)
	}
	if err := play(c, records, file, out); err != nil {
		return err
	}
	tk, err := c.Compose(tid, *text, task.Kind(*kind))
	if err != nil {
		return err
	}
	cat.Put(tk)
	fmt.Fprintf(out, "%s: saved as %s\n", tk.ID, tk.Kind)
	return saveCatalog(*path, cat)
}

func saveCatalog(path string, cat *task.Catalog) error {
	var buf bytes.Buffer
	if err := cat.Encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
