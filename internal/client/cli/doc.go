// Package cli implements the interactive storefront client: a REPL over the
// catalog pipeline and the session/cart/notification/theme stores.
package cli
