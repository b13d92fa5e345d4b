package sarif

import "strconv"

// Kind is the discriminator of a node type.
type Kind int

const (
	KindNone Kind = iota
	KindLog
	KindRun
	KindTool
	KindToolComponent
	KindReportingDescriptor
	KindInvocation
	KindNotification
	KindExceptionData
	KindArtifact
	KindArtifactLocation
	KindResult
	KindMessage
	KindLocation
	KindPhysicalLocation
	KindRegion
	KindLogicalLocation
	KindCodeFlow
	KindThreadFlow
	KindThreadFlowLocation
	KindStack
	KindStackFrame

	// KindUser is the first Kind available to node types registered outside
	// this package.
	KindUser Kind = 1000
)

func (k Kind) String() string {
	if ops, ok := registry[k]; ok {
		return ops.name
	}
	if k == KindNone {
		return "none"
	}
	return "<kind " + strconv.Itoa(int(k)) + ">"
}
