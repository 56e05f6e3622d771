// Package schemes persists user-defined hash and word schemes. Parameters
// are stored as JSON text and come back as the generic values encoding/json
// produces (numbers as float64).
package schemes
