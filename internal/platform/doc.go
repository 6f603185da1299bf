package platform

// Package platform contains OS integration and file glue: decoding capture
// images from disk, locating the captures directory, and asking the OS to
// open or reveal a capture file.
