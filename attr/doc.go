// Package attr stores per-node attributes — binary, categorical,
// continuous, and set-valued — with a first-class NA sentinel for every
// type, and a name-keyed registry the effect library binds attribute
// references against.
package attr
