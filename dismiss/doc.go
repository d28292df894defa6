// Package dismiss coordinates which channels may dismiss an open modal
// dialog: programmatic close, the Escape key, or a click on the backdrop.
//
// Allowed here:
// - policy resolution from a dialog's declared closedby value
// - the Escape stack shared by all tracked dialogs
// - per-dialog listener records and their attach/detach lifecycle
// - tree observation that keeps tracking aligned with structural changes
//
// Not allowed here:
// - dialog element state transitions (open/close belong to the host)
// - method decoration of host operations (see the host package)
// - rendering of dialog surfaces or backdrops
package dismiss
