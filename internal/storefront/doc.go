// Package storefront holds the QKART shopping workflow that sits between
// the REST API and a user interface: merging the cart with the catalog,
// quantity changes, the address book and the checkout guards.
//
// Every operation takes the session explicitly and reports user-facing
// outcomes through a Notifier in addition to its error return.
package storefront
