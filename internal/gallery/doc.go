package gallery

// Package gallery runs the per-frame render pass over the capture list. It
// has no toolkit dependency: the host passes in a Surface for pointer and text
// queries and draws the returned Frame. Side effects leave the pass as intents.
