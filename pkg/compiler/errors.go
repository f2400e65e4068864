package compiler

import "fmt"

// SchemaError reports a source record missing a required field. It carries
// the file and record index so the author can find the offending entry.
type SchemaError struct {
	File  string
	Kind  string // "entity" or "relationship"
	Index int
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid %s record %d in %s: %v", e.Kind, e.Index, e.File, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// DuplicateIDError reports two entities sharing an id. The build is
// rejected; last-write-wins would silently drop authored data.
type DuplicateIDError struct {
	ID        string
	File      string
	FirstFile string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate entity id %q in %s (first declared in %s)", e.ID, e.File, e.FirstFile)
}

// DanglingRefError reports a relationship endpoint that does not resolve to
// any entity in the merged set.
type DanglingRefError struct {
	File    string
	Index   int
	From    string
	To      string
	Missing string
}

func (e *DanglingRefError) Error() string {
	return fmt.Sprintf("relationship %d in %s (%s -> %s) references unknown entity id %q",
		e.Index, e.File, e.From, e.To, e.Missing)
}
