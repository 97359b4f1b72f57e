// Package core defines the shared types used across bridgelog.
//
// It provides the Level type for threshold filtering, the Source type
// that tags where a record came from (native Go code or the embedded
// script runtime), and the Record type that every sink receives.
//
// Record is a plain value. Sinks get their own copy, so a record can
// never change after the policy built it. Absent optional fields are
// left at their zero value: a zero Time, an empty File, a Line of 0.
// Formatters treat zero values as "not present" and omit them.
//
// SanitizeMessage bounds message size and repairs invalid UTF-8 before
// a record is built, so that every sink observes the same message.
package core
