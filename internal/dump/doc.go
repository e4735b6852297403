// Package dump runs the single-pass pipeline: collect the change-set from a
// [gitctx.Query], compose it with an [output.Composer], render it, and write
// it to the output path. Any failure before the write leaves the previous
// output file untouched.
package dump
