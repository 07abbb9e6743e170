// Package cli provides the interactive puisi command-line client.
//
// It wires configuration, the local session file and the API client, then
// runs a REPL. A login saved by an earlier run is restored on start, and a
// background watcher checks the services so the prompt shows whether they
// are reachable.
//
// Commands:
//   - register, login, logout
//   - feed, mine, show <id>
//   - post, edit <id>, delete <id>
//   - like <id>, unlike <id>
//   - comment <id>, comments <id>, editcomment <id>, delcomment <id>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
