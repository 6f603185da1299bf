package layout

// Package layout holds the pure geometry used by the gallery: sizes,
// rectangles and the aspect-preserving fit of an image inside a box.
