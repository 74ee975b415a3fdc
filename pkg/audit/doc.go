// Package audit emits audit events for mutating and privileged
// operations in RFC5424 syslog format.
//
// Handlers emit events after the store reports the outcome; the store
// itself never logs. Auditing is on by default and can be disabled
// with ECZEMAHUB_AUDIT_ENABLED=false.
package audit
