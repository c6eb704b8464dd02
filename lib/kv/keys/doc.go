// Package keys implements key validation and key-to-file-name mapping for
// the key-value store engines.
//
// Validation rejects structurally unsafe keys (blank, longer than 256
// characters, or containing "..") before they reach any engine. Mapping
// derives a fixed-width, filesystem-safe identifier from an arbitrary key by
// hashing it with SHA-256 and hex-encoding the digest. The two concerns are
// deliberately separate: validation defends the caller contract, mapping
// defends the filesystem.
package keys
