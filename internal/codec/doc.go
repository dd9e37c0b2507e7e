// Package codec turns typed Go values into text and back.
//
// A Codec must round-trip: decoding the output of Marshal into a value of the
// original type yields an equal value. The store keeps the encoded text
// verbatim, so the codec used to write a value must also be the one used to
// read it.
//
//   - JSON  encoding/json, the default
//   - YAML  gopkg.in/yaml.v3
package codec
