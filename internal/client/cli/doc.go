// Package cli provides the interactive HBnB command-line client.
//
// The browser pages of the HBnB front-end become named pages here
// (login.html, index.html, place.html, add_review.html) registered in a
// Router. A page prints itself to the terminal and may ask the router to
// move on to another page, which is how redirects work. The REPL maps short
// commands onto router targets.
//
// Commands:
//   - help, login, logout
//   - places, filter [max], place <id>, review <id>
//   - open <page>, e.g. "open place.html?id=42"
//   - exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
