// Package http implements the inbound peer-message surface of a replica.
//
// Every device in the mesh serves the same small REST API: one POST route per
// message kind, each carrying a [models.Envelope]. Handlers decode the
// envelope and hand it to the service layer; all replication and unlock
// semantics live there, the handlers stay thin.
package http
