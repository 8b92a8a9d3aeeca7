// SPDX-License-Identifier: MIT

package task

import "errors"

var (
	// ErrBadID indicates an id that is not of the form "chapter.index".
	ErrBadID = errors.New("task: id must be chapter.index")
	// ErrUnknownKind indicates an unsupported task_type.
	ErrUnknownKind = errors.New("task: unknown task type")
	// ErrNotFound indicates a task id missing from the catalog.
	ErrNotFound = errors.New("task: not found")
)
