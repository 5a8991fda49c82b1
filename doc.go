package framebuf

// Package framebuf exposes a fixed-capacity byte buffer that keeps a configurable
// trailing window of bytes alive across consume operations. It gives stream-reading
// loops a place to accumulate input and discard what they have processed without
// losing a partial token that spans two reads.
