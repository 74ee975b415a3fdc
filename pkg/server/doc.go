// Package server provides the HTTP host for the EczemaHub API.
//
// The store itself opens no sockets and parses no wire formats; this
// package is the external collaborator that does. It uses gorilla/mux
// for routing and gorilla/handlers for request logging.
//
// # Server Setup
//
//	srv := server.NewServer(resources, tokenKey, cfg)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// Shutdown stops accepting connections and drains in-flight requests;
// the server command snapshots the store after Shutdown returns, so a
// snapshot never races a mutation.
package server
