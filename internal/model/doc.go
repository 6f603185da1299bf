package model

// Package model defines domain data structures used across the app: capture
// records and their storage provenance. Records are built once at startup and
// treated as immutable values afterwards.
