// Package config provides configuration management for EczemaHub.
//
// # Configuration Sources
//
// Values are resolved in order: built-in defaults, then the optional
// configuration file, then environment variables. Each attribute
// remembers which source supplied it; `eczemactl configuration show`
// prints the resolved table.
//
// # Key Configuration Options
//
//   - ECZEMAHUB_CONFIG_PATH: directory holding eczemahub.yml
//   - ECZEMAHUB_BIND_ADDRESS / ECZEMAHUB_PORT: server listen address
//   - ECZEMAHUB_SNAPSHOT_PATH: where the store snapshot is saved and
//     restored from
//   - ECZEMAHUB_SNAPSHOT_TRIGGER_PATH: optional file watched for
//     on-demand snapshot requests
//   - ECZEMAHUB_TOKEN_KEY: base64 caller-token signing key
//     (environment only, never read from file)
//   - ECZEMAHUB_TOKEN_TTL: caller token lifetime in minutes
package config
