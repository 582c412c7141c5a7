// Package core contains the plumbing the async helpers run on: channel
// helpers, configuration carried on a context, and the detached dispatcher
// behind fire-and-forget calls. It holds no functional logic of its own;
// packages fn and list build on it.
package core
