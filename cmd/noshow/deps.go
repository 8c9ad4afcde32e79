package main

import (
	"github.com/cristianoliveira/noshow/internal/core"
	"github.com/cristianoliveira/noshow/internal/tui/app"
)

// coreClient backs every command. Its record store opens on first use, so
// commands that only read the catalog never create the database.
var coreClient, startupErr = newCoreClient()

var tuiClient = app.NewDefaultClient(coreClient, nil, nil)

// newCoreClient builds the configured core. On failure it still returns a
// usable core over the built-in catalog so that help and version keep working;
// main reports startupErr before running any other command.
func newCoreClient() (*core.Core, error) {
	c, err := core.NewFromConfig()
	if err != nil {
		return core.New(core.Options{}), err
	}
	return c, nil
}
