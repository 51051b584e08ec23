// Package order contains the Order aggregate and its lifecycle rules:
// creation defaults (status forced to Pending, creation instant stamped),
// store-assigned immutable identifiers, and wholesale replacement of the
// mutable fields on update.
package order
