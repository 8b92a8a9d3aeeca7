// SPDX-License-Identifier: MIT

package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/lattice"
	"golang.org/x/exp/maps"
)

const (
	metaKey = "_meta"
	indent  = "    "
)

// DefaultTitles are the chapter titles used when none are configured.
var DefaultTitles = []string{"Tutorial", "Segments", "Polygons", "Polyhedra"}

// record is the persisted shape of one task.
type record struct {
	Text   string                           `json:"text"`
	Kind   Kind                             `json:"task_type"`
	Plan   connection.Set[lattice.Point2]   `json:"pudorys"`
	Front  connection.Set[lattice.Point2]   `json:"narys"`
	Side   connection.Set[lattice.Point2]   `json:"bokorys"`
	Solids []connection.Set[lattice.Point3] `json:"data3d"`
}

// entry is one top-level member of the encoded document.
type entry struct {
	key string
	val interface{}
}

type meta struct {
	Version string `json:"version"`
}

// Catalog is an in-memory collection of tasks.
type Catalog struct {
	Version string
	tasks   map[ID]*Task
}

// Chapter is a group of tasks sharing the chapter part of their ids.
type Chapter struct {
	Number int
	Title  string
	IDs    []ID
}

// NewCatalog returns an empty catalog.
func NewCatalog(version string) *Catalog {
	return &Catalog{Version: version, tasks: make(map[ID]*Task)}
}

// ReadCatalog decodes a catalog document. A missing _meta entry yields the
// version "unknown".
//
// Errors:
//   - ErrBadID for keys that are not task ids.
//   - ErrUnknownKind for unsupported task types.
//   - connection.ErrBadWire (wrapped) for malformed lines.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("task: decode catalog: %w", err)
	}
	c := NewCatalog("unknown")
	if raw, ok := doc[metaKey]; ok {
		var m meta
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("task: decode %s: %w", metaKey, err)
		}
		c.Version = m.Version
		delete(doc, metaKey)
	}
	for key, raw := range doc {
		id, err := ParseID(key)
		if err != nil {
			return nil, err
		}
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("task %s: %w", id, err)
		}
		if rec.Kind == "" {
			rec.Kind = PlanesFromSolid
		}
		if !rec.Kind.Valid() {
			return nil, fmt.Errorf("task %s: %q: %w", id, rec.Kind, ErrUnknownKind)
		}
		c.tasks[id] = &Task{
			ID:     id,
			Text:   rec.Text,
			Kind:   rec.Kind,
			Planes: Planes{Plan: rec.Plan, Front: rec.Front, Side: rec.Side},
			Solids: rec.Solids,
		}
	}
	return c, nil
}

// Encode writes the catalog as an indented JSON document: _meta first, then
// tasks in id order. Empty sets are written as [] rather than null.
func (c *Catalog) Encode(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	entries := []entry{{metaKey, meta{Version: c.Version}}}
	for _, id := range c.IDs() {
		entries = append(entries, entry{id.String(), toRecord(c.tasks[id])})
	}

	for i, e := range entries {
		body, err := marshalIndent(e.val)
		if err != nil {
			return fmt.Errorf("task: encode %s: %w", e.key, err)
		}
		key, _ := json.Marshal(e.key)
		buf.WriteString(indent)
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(body)
		if i < len(entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func toRecord(t *Task) record {
	solids := make([]connection.Set[lattice.Point3], len(t.Solids))
	for i, s := range t.Solids {
		solids[i] = nonNil(s)
	}
	return record{
		Text:   t.Text,
		Kind:   t.Kind,
		Plan:   nonNil(t.Planes.Plan),
		Front:  nonNil(t.Planes.Front),
		Side:   nonNil(t.Planes.Side),
		Solids: solids,
	}
}

func nonNil[P lattice.Coord[P]](s connection.Set[P]) connection.Set[P] {
	if s == nil {
		return connection.Set[P]{}
	}
	return s
}

// marshalIndent encodes v one level deep without HTML escaping.
func marshalIndent(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(indent, indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Len returns the number of tasks.
func (c *Catalog) Len() int { return len(c.tasks) }

// Get returns the task with the given id.
func (c *Catalog) Get(id ID) (*Task, error) {
	t, ok := c.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return t, nil
}

// Put inserts or replaces t under t.ID.
func (c *Catalog) Put(t *Task) {
	c.tasks[t.ID] = t
}

// Delete removes the task with the given id.
func (c *Catalog) Delete(id ID) error {
	if _, ok := c.tasks[id]; !ok {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	delete(c.tasks, id)
	return nil
}

// IDs returns all task ids in numeric order.
func (c *Catalog) IDs() []ID {
	ids := maps.Keys(c.tasks)
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}

// Chapters groups the tasks by chapter number. There is one Chapter for
// every number from 0 up to the highest used chapter or the number of titles,
// whichever is larger; chapters past the titles are called "Chapter N".
// A nil titles slice selects DefaultTitles.
func (c *Catalog) Chapters(titles []string) []Chapter {
	if titles == nil {
		titles = DefaultTitles
	}
	n := len(titles)
	byChapter := make(map[int][]ID)
	for _, id := range c.IDs() {
		byChapter[id.Chapter] = append(byChapter[id.Chapter], id)
		if id.Chapter+1 > n {
			n = id.Chapter + 1
		}
	}
	out := make([]Chapter, n)
	for i := range out {
		title := fmt.Sprintf("Chapter %d", i)
		if i < len(titles) {
			title = titles[i]
		}
		out[i] = Chapter{Number: i, Title: title, IDs: byChapter[i]}
	}
	return out
}
