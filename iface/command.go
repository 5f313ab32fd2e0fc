package iface

import "strings"

// Command bundles a command name and its ordered arguments together
// for dispatch to the remote Redis server. A Command is treated as
// immutable once constructed and is safe to share between concurrent
// calls.
type Command struct {
	Name string
	Args []interface{}
}

// The commands that place a connection into subscription mode. Note
// that PUBLISH is absent; publishing is an ordinary one-shot command.
var pubSubCommands = map[string]struct{}{
	"SUBSCRIBE":    {},
	"UNSUBSCRIBE":  {},
	"PSUBSCRIBE":   {},
	"PUNSUBSCRIBE": {},
	"SSUBSCRIBE":   {},
	"SUNSUBSCRIBE": {},
}

// IsPubSub reports whether this command belongs to the publish/subscribe
// family. Such commands put a connection into a long-lived stateful mode
// and are rejected on the one-shot client paths; they must be issued on
// a dedicated connection obtained from Client.Connect.
func (c Command) IsPubSub() bool {
	_, ok := pubSubCommands[strings.ToUpper(c.Name)]
	return ok
}
