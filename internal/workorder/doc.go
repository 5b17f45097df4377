// Package workorder models the print/mail job form and renders it into the
// plain-text work order summary.
//
// FormState values are immutable: every mutation returns a new value, so a
// snapshot handed to Compose can never change underneath it.
package workorder
