// Package directory holds the employee directory domain: the ordered record
// store, the sort/paginate/filter view projection, the record form, the delete
// confirmation guard, and the Session that owns all of them for one viewer.
//
// Nothing in this package performs I/O directly. Remote persistence is reached
// through the Gateway contract, which transports implement.
package directory
