// Package itunes holds the pieces shared by the catalog clients: the enumerated
// parameter values accepted by the Search and Lookup endpoints, the tables that
// say which of them may be combined, the error kinds every request builder
// returns, and the result model both endpoints answer with.
//
// # Parameter tables
//
// Every enumerated parameter is a string-backed type whose value is the code
// sent on the wire:
//
//	media := itunes.MediaPodcast
//	media.String()                                // "podcast"
//	media.SupportsEntity(itunes.EntityPodcast)    // true
//	media.SupportsAttribute(itunes.AttributeMovieTerm) // false
//
// Codes coming from user input go through the Parse functions, which reject
// anything that is not in the table with an *InputError.
//
// # Errors
//
// Three kinds of failure are distinguished:
//
//   - ErrInvalidInput: a parameter is out of range or does not combine with another one
//   - ErrInvalidState: a request was built without a mandatory field
//   - ErrParse: the response body is not the JSON document that was expected
//
// Network failures are reported by the transport package. All of them can be
// matched with errors.Is and inspected with errors.As.
//
// # Results
//
// ParseResponse decodes a Search or Lookup body. Unknown fields are ignored and
// multi-valued fields are always non-nil slices.
package itunes
