// Package format renders ranked branches as aligned text lines.
//
// Each line has four columns:
//
//	<marker> <name>  <age>  <summary>
//
// The marker is "*" for the checked-out branch and a space otherwise. The
// name column is as wide as the longest name, but never narrower than
// [MinNameWidth]. The age column is always [AgeWidth] cells, right aligned.
// The summary is appended verbatim.
//
// # Ages
//
// [Duration] buckets elapsed time into whole days ("3d ago"), whole hours
// ("5h ago") or "now" for anything under an hour. Values are truncated, not
// rounded.
package format
