// Package dataset reads the cranial nerve study guide from CSV.
//
// Header names are matched loosely: case, spaces and a leading byte-order
// mark are ignored, and a couple of known spellings are corrected, so that
// "\ufeffName", " Fuction " and "role_in_swallowing" all resolve to the
// logical columns name, function and roleinswallowing. Any malformed row
// aborts the whole load.
package dataset
