// Package main implements eczemactl, the EczemaHub command line.
//
// EczemaHub is a record-keeping service for eczema-awareness
// resources: short informational entries that can be created, read,
// updated, deleted, filtered by category, searched by text, and
// marked verified by the admin caller.
//
// # Quick Start
//
//	# Generate a caller-token signing key
//	export ECZEMAHUB_TOKEN_KEY=$(head -c 32 /dev/urandom | base64)
//
//	# Start the server; it restores the snapshot if one exists and
//	# writes one on shutdown
//	eczemactl server
//
//	# Mint a caller token
//	eczemactl token alice
//
// # Environment Variables
//
//   - ECZEMAHUB_TOKEN_KEY: base64 caller-token signing key
//   - ECZEMAHUB_SNAPSHOT_PATH: store snapshot location
//   - ECZEMAHUB_CONFIG_PATH: directory holding eczemahub.yml
//   - ECZEMAHUB_BIND_ADDRESS / ECZEMAHUB_PORT: listen address
//   - ECZEMAHUB_AUDIT_ENABLED: set to false to silence audit events
package main
