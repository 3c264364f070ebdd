// Package listing turns a media collection into a single page of results.
//
// A listing runs four pure stages in a fixed order:
//
//	items -> Search -> Filter -> Sort -> Paginate -> page
//
// Search ranks items by fuzzy similarity against title, caption and
// attribution label. Filter keeps items matching exact criteria. Sort imposes
// a caption or creation-time order. Paginate slices the final sequence using
// stateless offset cursors.
//
// Cursors are base64-encoded decimal offsets into the final sequence. They
// are only meaningful for the sequence that produced them.
package listing
