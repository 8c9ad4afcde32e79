package state

import (
	"github.com/cristianoliveira/noshow/internal/domain"
	"github.com/cristianoliveira/noshow/internal/export"
)

// recordAddedMsg is sent when a justification was stored.
type recordAddedMsg struct {
	Record domain.Record
}

// exportedMsg is sent when the records were written to a file.
type exportedMsg struct {
	Path      string
	Requested export.Format
	Used      export.Format
}

// resetMsg is sent when every record was dropped.
type resetMsg struct {
	Dropped int
}

// errorMsg carries a failed background operation.
type errorMsg struct {
	Err error
}
