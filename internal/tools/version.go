package tools

import (
    "strings"
)

// RuleKind selects how a version token is pulled from command output.
type RuleKind int

const (
    // RuleAfterMarker takes the first whitespace-separated token following Marker.
    RuleAfterMarker RuleKind = iota
    // RuleLastField takes the last whitespace-separated token of the output.
    RuleLastField
)

// VersionRule is the per-tool parsing rule for version command output.
type VersionRule struct {
    Kind   RuleKind
    Marker string
}

// Extract applies the rule to out. ok is false when the marker is missing or
// no token follows it.
func (r VersionRule) Extract(out string) (string, bool) {
    switch r.Kind {
    case RuleAfterMarker:
        i := strings.Index(out, r.Marker)
        if r.Marker == "" || i < 0 {
            return "", false
        }
        fields := strings.Fields(out[i+len(r.Marker):])
        if len(fields) == 0 {
            return "", false
        }
        return fields[0], true
    case RuleLastField:
        fields := strings.Fields(out)
        if len(fields) == 0 {
            return "", false
        }
        return fields[len(fields)-1], true
    }
    return "", false
}

// SameVersion reports whether two version tokens are equal. Comparison is
// plain string equality after trimming; there is no ordering.
func SameVersion(a, b string) bool {
    return strings.TrimSpace(a) == strings.TrimSpace(b)
}
