// Package lookup builds and executes identifier queries against the catalog
// Lookup endpoint.
//
// # Usage
//
//	l, err := lookup.New(
//		lookup.WithIDs("909253", "284910350"),
//		lookup.WithEntity(itunes.EntityAlbum),
//		lookup.WithLimit(5),
//	)
//	if err != nil {
//		return err
//	}
//	resp, err := l.Execute(ctx, transport.Default)
//
// Identifiers are kept per kind as sets: adding the same value twice keeps one
// copy and blank values are dropped. Each non-empty set becomes one parameter
// whose value is the sorted, comma-joined members.
//
// Lookup does not require an identifier locally. The remote endpoint answers
// an empty query with zero results.
package lookup
