package sarif

import (
	"time"

	"github.com/resultdoc/go-sarif/derive"
)

// Invocation describes one execution of the tool within a run.
type Invocation struct {
	CommandLine                string            `json:"commandLine,omitempty"`
	Arguments                  []string          `json:"arguments,omitzero"`
	StartTime                  time.Time         `json:"startTimeUtc,omitzero"`
	EndTime                    time.Time         `json:"endTimeUtc,omitzero"`
	ExecutionSuccessful        bool              `json:"executionSuccessful"`
	ExitCode                   *int              `json:"exitCode,omitempty"`
	ToolExecutionNotifications []*Notification   `json:"toolExecutionNotifications,omitzero"`
	WorkingDirectory           *ArtifactLocation `json:"workingDirectory,omitempty"`
	Properties                 PropertyBag       `json:"properties,omitzero"`
}

var InvocationType = derive.New[Invocation]("invocation",
	derive.String("commandLine", func(i *Invocation) *string { return &i.CommandLine }),
	derive.Seq("arguments", func(i *Invocation) *[]string { return &i.Arguments }, derive.Strings),
	derive.Time("startTimeUtc", func(i *Invocation) *time.Time { return &i.StartTime }),
	derive.Time("endTimeUtc", func(i *Invocation) *time.Time { return &i.EndTime }),
	derive.Bool("executionSuccessful", func(i *Invocation) *bool { return &i.ExecutionSuccessful }),
	derive.Optional("exitCode", func(i *Invocation) **int { return &i.ExitCode }, derive.Ints[int]()),
	derive.Seq("toolExecutionNotifications", func(i *Invocation) *[]*Notification { return &i.ToolExecutionNotifications }, NotificationType),
	derive.Nested("workingDirectory", func(i *Invocation) **ArtifactLocation { return &i.WorkingDirectory }, ArtifactLocationType),
	properties(func(i *Invocation) *PropertyBag { return &i.Properties }),
)

func (*Invocation) Kind() Kind { return KindInvocation }

func (i *Invocation) DeepClone() (*Invocation, error) { return InvocationType.DeepClone(i) }

// Notification is a condition encountered while running the tool.
type Notification struct {
	Message    *Message       `json:"message"`
	Level      Level          `json:"level,omitempty"`
	Time       time.Time      `json:"timeUtc,omitzero"`
	Exception  *ExceptionData `json:"exception,omitempty"`
	Properties PropertyBag    `json:"properties,omitzero"`
}

var NotificationType = derive.New[Notification]("notification",
	derive.Nested("message", func(n *Notification) **Message { return &n.Message }, MessageType),
	derive.Int("level", func(n *Notification) *Level { return &n.Level }),
	derive.Time("timeUtc", func(n *Notification) *time.Time { return &n.Time }),
	derive.Nested("exception", func(n *Notification) **ExceptionData { return &n.Exception }, ExceptionDataType),
	properties(func(n *Notification) *PropertyBag { return &n.Properties }),
)

func (*Notification) Kind() Kind { return KindNotification }

func (n *Notification) DeepClone() (*Notification, error) { return NotificationType.DeepClone(n) }

// ExceptionData describes a runtime exception, with the exceptions which
// caused it.
type ExceptionData struct {
	ExceptionKind   string           `json:"kind,omitempty"`
	Message         string           `json:"message,omitempty"`
	Stack           *Stack           `json:"stack,omitempty"`
	InnerExceptions []*ExceptionData `json:"innerExceptions,omitzero"`
	Properties      PropertyBag      `json:"properties,omitzero"`
}

// ExceptionDataType refers to itself through InnerExceptions and so is
// defined in init.
var ExceptionDataType = derive.New[ExceptionData]("exceptionData")

func init() {
	ExceptionDataType.Define(
		derive.String("kind", func(e *ExceptionData) *string { return &e.ExceptionKind }),
		derive.String("message", func(e *ExceptionData) *string { return &e.Message }),
		derive.Nested("stack", func(e *ExceptionData) **Stack { return &e.Stack }, StackType),
		derive.Seq("innerExceptions", func(e *ExceptionData) *[]*ExceptionData { return &e.InnerExceptions }, ExceptionDataType),
		properties(func(e *ExceptionData) *PropertyBag { return &e.Properties }),
	)
}

func (*ExceptionData) Kind() Kind { return KindExceptionData }

func (e *ExceptionData) DeepClone() (*ExceptionData, error) { return ExceptionDataType.DeepClone(e) }
