// Package task holds puzzle task data as the core consumes it: the prompt,
// the task kind, one target connection set per projection plane and one or
// more alternative target sets for the solid.
//
// Tasks are identified by "chapter.index" ids (e.g. "1.4"). A Catalog groups
// tasks and reads/writes the persisted JSON document:
//
//	{
//	    "_meta": {"version": "1.2"},
//	    "1.4": {
//	        "text": "...",
//	        "task_type": "2D_to_3D",
//	        "pudorys": [[[0,0],[2,0],0]],
//	        "narys":   [...],
//	        "bokorys": [...],
//	        "data3d":  [[[[0,0,0],[2,0,0],0]], ...]
//	    }
//	}
//
// pudorys, narys and bokorys are the plan, front and side views. Every
// connection uses the wire triple of package connection. The catalog works on
// io.Reader / io.Writer only; file handling is the caller's business.
package task
