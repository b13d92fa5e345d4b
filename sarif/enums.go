package sarif

import (
	"fmt"
	"slices"
	"strings"
)

// Level is the severity of a result or notification.
type Level int

const (
	LevelUnset Level = iota
	LevelNone
	LevelNote
	LevelWarning
	LevelError
)

var levelNames = []string{"", "none", "note", "warning", "error"}

func (l Level) String() string { return enumString(levelNames, l) }
func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }
func (l *Level) UnmarshalText(d []byte) error { return enumParse(levelNames, "level", d, l) }

// ResultKind says whether a result is a failure or some other outcome.
type ResultKind int

const (
	ResultKindUnset ResultKind = iota
	ResultKindNotApplicable
	ResultKindPass
	ResultKindFail
	ResultKindReview
	ResultKindOpen
	ResultKindInformational
)

var resultKindNames = []string{"", "notApplicable", "pass", "fail", "review", "open", "informational"}

func (k ResultKind) String() string { return enumString(resultKindNames, k) }
func (k ResultKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
func (k *ResultKind) UnmarshalText(d []byte) error { return enumParse(resultKindNames, "result kind", d, k) }

// BaselineState relates a result to a previous run.
type BaselineState int

const (
	BaselineUnset BaselineState = iota
	BaselineNew
	BaselineUnchanged
	BaselineUpdated
	BaselineAbsent
)

var baselineStateNames = []string{"", "new", "unchanged", "updated", "absent"}

func (s BaselineState) String() string { return enumString(baselineStateNames, s) }
func (s BaselineState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *BaselineState) UnmarshalText(d []byte) error { return enumParse(baselineStateNames, "baseline state", d, s) }

// Importance of a thread flow location.
type Importance int

const (
	ImportanceUnset Importance = iota
	ImportanceImportant
	ImportanceEssential
	ImportanceUnimportant
)

var importanceNames = []string{"", "important", "essential", "unimportant"}

func (i Importance) String() string { return enumString(importanceNames, i) }
func (i Importance) MarshalText() ([]byte, error) { return []byte(i.String()), nil }
func (i *Importance) UnmarshalText(d []byte) error { return enumParse(importanceNames, "importance", d, i) }

// ArtifactRoles is a set of flags. It compares by its integral value.
type ArtifactRoles uint32

const (
	RoleAnalysisTarget ArtifactRoles = 1 << iota
	RoleAttachment
	RoleResponseFile
	RoleResultFile
	RoleStandardStream
	RoleTracedFile
	RoleUnmodified
	RoleModified
	RoleAdded
	RoleDeleted
	RoleRenamed
	RoleUncontrolled
)

var roleNames = []string{
	"analysisTarget", "attachment", "responseFile", "resultFile", "standardStream", "tracedFile",
	"unmodified", "modified", "added", "deleted", "renamed", "uncontrolled",
}

// Names returns the names of the roles set, lowest bit first.
func (r ArtifactRoles) Names() []string {
	var res []string
	for i, name := range roleNames {
		if r&(1<<i) != 0 {
			res = append(res, name)
		}
	}
	return res
}

func (r ArtifactRoles) String() string {
	return strings.Join(r.Names(), ",")
}

func (r ArtifactRoles) MarshalJSON() ([]byte, error) {
	names := r.Names()
	if names == nil {
		names = []string{}
	}
	return marshalStrings(names)
}

func (r *ArtifactRoles) UnmarshalJSON(d []byte) error {
	names, err := unmarshalStrings(d)
	if err != nil {
		return err
	}
	var res ArtifactRoles
	for _, name := range names {
		i := slices.Index(roleNames, name)
		if i == -1 {
			return fmt.Errorf("unrecognized artifact role %q", name)
		}
		res |= 1 << i
	}
	*r = res
	return nil
}

func enumString[E ~int](names []string, e E) string {
	if e < 0 || int(e) >= len(names) {
		return fmt.Sprintf("<%d>", int(e))
	}
	return names[e]
}

func enumParse[E ~int](names []string, what string, d []byte, e *E) error {
	i := slices.Index(names, string(d))
	if i == -1 {
		return fmt.Errorf("unrecognized %s %q", what, d)
	}
	*e = E(i)
	return nil
}
