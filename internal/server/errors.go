package server

import "errors"

// errNoServersAreCreated means the handlers carry no HTTP router or no
// listen address is configured.
var errNoServersAreCreated = errors.New("no http server to run: handler or address missing")
