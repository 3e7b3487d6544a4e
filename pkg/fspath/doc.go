// Package fspath provides the validated file-system naming types the
// runtime builds its on-disk resources from: FileName for single path
// segments and suffixes, Path for directories, and FilePath for fully
// qualified file locations.
//
// Values are constructed through fallible factories (NewFileName, NewPath,
// NewFilePath) and are valid for their entire lifetime; nothing in this
// package re-checks a value after construction. The accepted input is
// preserved byte for byte, so rendering a value always reproduces exactly
// what the factory accepted. Validation also runs at every text-decoding
// boundary via encoding.TextUnmarshaler, which keeps externally populated
// configuration honest.
//
// The character rules target the union of Linux, macOS, and Windows
// restrictions, since the runtime's storage directories must be sharable
// across all supported platforms.
package fspath
