// Package stain provides the stain-treatment request aggregate. Customers
// file a request against a garment, staff review it, and it resolves as
// treated or declined with a recorded note.
package stain
