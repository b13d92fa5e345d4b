package sarif

import (
	"time"

	"github.com/resultdoc/go-sarif/derive"
)

// CodeFlow is a set of thread flows which together describe a pattern of
// execution relevant to a result.
type CodeFlow struct {
	Message     *Message      `json:"message,omitempty"`
	ThreadFlows []*ThreadFlow `json:"threadFlows,omitzero"`
	Properties  PropertyBag   `json:"properties,omitzero"`
}

var CodeFlowType = derive.New[CodeFlow]("codeFlow",
	derive.Nested("message", func(c *CodeFlow) **Message { return &c.Message }, MessageType),
	derive.Seq("threadFlows", func(c *CodeFlow) *[]*ThreadFlow { return &c.ThreadFlows }, ThreadFlowType),
	properties(func(c *CodeFlow) *PropertyBag { return &c.Properties }),
)

func (*CodeFlow) Kind() Kind { return KindCodeFlow }

func (c *CodeFlow) DeepClone() (*CodeFlow, error) { return CodeFlowType.DeepClone(c) }

// ThreadFlow is a sequence of locations visited by one thread.
type ThreadFlow struct {
	ID         string                `json:"id,omitempty"`
	Message    *Message              `json:"message,omitempty"`
	Locations  []*ThreadFlowLocation `json:"locations,omitzero"`
	Properties PropertyBag           `json:"properties,omitzero"`
}

var ThreadFlowType = derive.New[ThreadFlow]("threadFlow",
	derive.String("id", func(t *ThreadFlow) *string { return &t.ID }),
	derive.Nested("message", func(t *ThreadFlow) **Message { return &t.Message }, MessageType),
	derive.Seq("locations", func(t *ThreadFlow) *[]*ThreadFlowLocation { return &t.Locations }, ThreadFlowLocationType),
	properties(func(t *ThreadFlow) *PropertyBag { return &t.Properties }),
)

func (*ThreadFlow) Kind() Kind { return KindThreadFlow }

func (t *ThreadFlow) DeepClone() (*ThreadFlow, error) { return ThreadFlowType.DeepClone(t) }

// ThreadFlowLocation is one step of a thread flow.
type ThreadFlowLocation struct {
	ExecutionOrder int         `json:"executionOrder,omitempty"`
	Location       *Location   `json:"location,omitempty"`
	Stack          *Stack      `json:"stack,omitempty"`
	Kinds          []string    `json:"kinds,omitzero"`
	NestingLevel   int         `json:"nestingLevel,omitempty"`
	Importance     Importance  `json:"importance,omitempty"`
	ExecutionTime  time.Time   `json:"executionTimeUtc,omitzero"`
	Properties     PropertyBag `json:"properties,omitzero"`
}

var ThreadFlowLocationType = derive.New[ThreadFlowLocation]("threadFlowLocation",
	derive.Int("executionOrder", func(t *ThreadFlowLocation) *int { return &t.ExecutionOrder }),
	derive.Nested("location", func(t *ThreadFlowLocation) **Location { return &t.Location }, LocationType),
	derive.Nested("stack", func(t *ThreadFlowLocation) **Stack { return &t.Stack }, StackType),
	derive.Seq("kinds", func(t *ThreadFlowLocation) *[]string { return &t.Kinds }, derive.Strings),
	derive.Int("nestingLevel", func(t *ThreadFlowLocation) *int { return &t.NestingLevel }),
	derive.Int("importance", func(t *ThreadFlowLocation) *Importance { return &t.Importance }),
	derive.Time("executionTimeUtc", func(t *ThreadFlowLocation) *time.Time { return &t.ExecutionTime }),
	properties(func(t *ThreadFlowLocation) *PropertyBag { return &t.Properties }),
)

func (*ThreadFlowLocation) Kind() Kind { return KindThreadFlowLocation }

func (t *ThreadFlowLocation) DeepClone() (*ThreadFlowLocation, error) {
	return ThreadFlowLocationType.DeepClone(t)
}

// Stack is a call stack, innermost frame first.
type Stack struct {
	Message    *Message      `json:"message,omitempty"`
	Frames     []*StackFrame `json:"frames"`
	Properties PropertyBag   `json:"properties,omitzero"`
}

var StackType = derive.New[Stack]("stack",
	derive.Nested("message", func(s *Stack) **Message { return &s.Message }, MessageType),
	derive.Seq("frames", func(s *Stack) *[]*StackFrame { return &s.Frames }, StackFrameType),
	properties(func(s *Stack) *PropertyBag { return &s.Properties }),
)

func (*Stack) Kind() Kind { return KindStack }

func (s *Stack) DeepClone() (*Stack, error) { return StackType.DeepClone(s) }

// StackFrame is a function call within a stack.
type StackFrame struct {
	Location   *Location   `json:"location,omitempty"`
	Module     string      `json:"module,omitempty"`
	ThreadID   int         `json:"threadId,omitempty"`
	Parameters []string    `json:"parameters,omitzero"`
	Properties PropertyBag `json:"properties,omitzero"`
}

var StackFrameType = derive.New[StackFrame]("stackFrame",
	derive.Nested("location", func(s *StackFrame) **Location { return &s.Location }, LocationType),
	derive.String("module", func(s *StackFrame) *string { return &s.Module }),
	derive.Int("threadId", func(s *StackFrame) *int { return &s.ThreadID }),
	derive.Seq("parameters", func(s *StackFrame) *[]string { return &s.Parameters }, derive.Strings),
	properties(func(s *StackFrame) *PropertyBag { return &s.Properties }),
)

func (*StackFrame) Kind() Kind { return KindStackFrame }

func (s *StackFrame) DeepClone() (*StackFrame, error) { return StackFrameType.DeepClone(s) }
