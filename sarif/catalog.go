package sarif

func init() {
	mustRegister[Log](KindLog, LogType)
	mustRegister[Run](KindRun, RunType)
	mustRegister[Tool](KindTool, ToolType)
	mustRegister[ToolComponent](KindToolComponent, ToolComponentType)
	mustRegister[ReportingDescriptor](KindReportingDescriptor, ReportingDescriptorType)
	mustRegister[Invocation](KindInvocation, InvocationType)
	mustRegister[Notification](KindNotification, NotificationType)
	mustRegister[ExceptionData](KindExceptionData, ExceptionDataType)
	mustRegister[Artifact](KindArtifact, ArtifactType)
	mustRegister[ArtifactLocation](KindArtifactLocation, ArtifactLocationType)
	mustRegister[Result](KindResult, ResultType)
	mustRegister[Message](KindMessage, MessageType)
	mustRegister[Location](KindLocation, LocationType)
	mustRegister[PhysicalLocation](KindPhysicalLocation, PhysicalLocationType)
	mustRegister[Region](KindRegion, RegionType)
	mustRegister[LogicalLocation](KindLogicalLocation, LogicalLocationType)
	mustRegister[CodeFlow](KindCodeFlow, CodeFlowType)
	mustRegister[ThreadFlow](KindThreadFlow, ThreadFlowType)
	mustRegister[ThreadFlowLocation](KindThreadFlowLocation, ThreadFlowLocationType)
	mustRegister[Stack](KindStack, StackType)
	mustRegister[StackFrame](KindStackFrame, StackFrameType)
}
