// Package host provides an in-memory element tree implementing the dialog,
// node, and root surfaces the dismiss package consumes, together with the
// install entry point that decorates the tree's open, close, and
// shadow-attachment operations.
//
// The dismiss core stays free of host-mutation concerns; everything that
// intercepts or decorates a host operation lives here.
package host
