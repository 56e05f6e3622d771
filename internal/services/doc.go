// Package services holds the caller policy around the derivation engine:
// which salts are remembered, whether a checksum is kept and verified, and
// how user-defined schemes are persisted and overlaid onto the registry.
//
// The engine itself never touches storage. SaltService and SchemeService are
// the only writers of the local database; Importer and Exporter translate
// between it and the legacy JSON settings file.
package services
