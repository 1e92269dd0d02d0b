// Package models defines the wire shapes exchanged with the remote
// document-processing and RAG services.
//
// Every type here is a transient request- or response-scoped value: the
// clients never cache or mutate server-side state locally, and all
// identifiers are opaque strings minted by the remote service.
package models
