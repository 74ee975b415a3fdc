package audit

import (
	"fmt"
	"strconv"
)

// ResourceEvent represents a create, update or delete of a resource.
type ResourceEvent struct {
	Operation    string // "create", "update" or "delete"
	ResourceID   uint64
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e ResourceEvent) MessageID() string {
	return e.Operation
}

func (e ResourceEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("resource %d %sd", e.ResourceID, e.Operation)
	}
	msg := fmt.Sprintf("failed to %s resource %d", e.Operation, e.ResourceID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ResourceEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ResourceEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ResourceEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"resource": strconv.FormatUint(e.ResourceID, 10),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// VerifyEvent represents an admin verification attempt on a resource.
type VerifyEvent struct {
	Caller       string
	ResourceID   uint64
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e VerifyEvent) MessageID() string {
	return "verify"
}

func (e VerifyEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s verified resource %d", e.Caller, e.ResourceID)
	}
	msg := fmt.Sprintf("%s tried to verify resource %d", e.Caller, e.ResourceID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e VerifyEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e VerifyEvent) Facility() int {
	return FacilityAuthPriv
}

func (e VerifyEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.Caller,
		},
		SDIDSubject: {
			"resource": strconv.FormatUint(e.ResourceID, 10),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "verify",
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// AdminEvent represents an admin identity overwrite. The operation
// requires no token, so every call is audited at notice severity.
type AdminEvent struct {
	NewAdmin      string
	PreviousAdmin string
	ClientIP      string
}

func (e AdminEvent) MessageID() string {
	return "admin"
}

func (e AdminEvent) Message() string {
	if e.PreviousAdmin == "" {
		return fmt.Sprintf("admin set to %s", e.NewAdmin)
	}
	return fmt.Sprintf("admin changed from %s to %s", e.PreviousAdmin, e.NewAdmin)
}

func (e AdminEvent) Severity() Severity {
	return SeverityNotice
}

func (e AdminEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AdminEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"admin": e.NewAdmin,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "set-admin",
		},
	}
	if e.PreviousAdmin != "" {
		sd[SDIDAuth]["previous"] = e.PreviousAdmin
	}
	return sd
}
